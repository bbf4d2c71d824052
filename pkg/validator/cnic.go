package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyCNIC indicates the CNIC is empty
	ErrEmptyCNIC = errors.New("cnic cannot be empty")

	// ErrInvalidCNICFormat indicates the CNIC contains invalid characters
	ErrInvalidCNICFormat = errors.New("cnic can only contain digits and dashes")

	// ErrInvalidCNICLength indicates the CNIC is not 13 digits
	ErrInvalidCNICLength = errors.New("cnic must be exactly 13 digits")
)

// cnicRegex matches digits only after sanitization
var cnicRegex = regexp.MustCompile(`^\d+$`)

// CNICValidator validates Pakistani national identity card numbers
type CNICValidator struct{}

// NewCNICValidator creates a new CNIC validator instance
func NewCNICValidator() *CNICValidator {
	return &CNICValidator{}
}

// Validate validates a CNIC number.
// Accepts 3520212345678 or the dashed form 35202-1234567-8.
// Returns the canonical dashed form and an error if invalid.
func (v *CNICValidator) Validate(cnic string) (string, error) {
	if cnic == "" {
		return "", ErrEmptyCNIC
	}

	sanitized := v.Sanitize(cnic)

	if !cnicRegex.MatchString(sanitized) {
		return "", ErrInvalidCNICFormat
	}

	if len(sanitized) != 13 {
		return "", ErrInvalidCNICLength
	}

	return sanitized[:5] + "-" + sanitized[5:12] + "-" + sanitized[12:], nil
}

// Sanitize strips spaces and dashes from a CNIC
func (v *CNICValidator) Sanitize(cnic string) string {
	sanitized := strings.ReplaceAll(cnic, " ", "")
	sanitized = strings.ReplaceAll(sanitized, "-", "")
	return strings.TrimSpace(sanitized)
}
