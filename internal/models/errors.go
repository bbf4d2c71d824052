package models

import "errors"

// Error taxonomy shared by the reservation engine and the HTTP layer.
// Handlers map these to status codes; everything else is a 500.
var (
	// ErrInvalidRequest indicates a malformed or out-of-range request.
	// Validation never mutates state.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrItemNotFound indicates the referenced inventory item does not exist
	ErrItemNotFound = errors.New("item not found")

	// ErrInsufficientInventory indicates not enough units remain. This is a
	// business outcome, not a bug.
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// ErrBookingNotFound indicates the referenced booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAlreadyCancelled indicates the booking was cancelled earlier.
	// Inventory is never restored a second time.
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrBusy indicates the per-item commit lock could not be acquired
	// within the configured wait. Safe to retry.
	ErrBusy = errors.New("item is busy, retry later")

	// ErrConsistency indicates an inventory invariant breach. Writes to the
	// affected item are halted until an operator intervenes.
	ErrConsistency = errors.New("internal consistency violation")

	// ErrUserExists indicates the email or CNIC is already registered
	ErrUserExists = errors.New("user already registered")

	// ErrUserNotFound indicates no user matches the lookup
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login attempt. The message
	// never says whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
