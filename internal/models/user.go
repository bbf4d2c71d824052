package models

import (
	"fmt"
	"strings"
	"time"
)

// User represents a registered traveler
type User struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	CNIC         string    `json:"cnic" db:"cnic"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SignupRequest represents a registration request
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	CNIC      string `json:"cnic" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Validate validates the signup request
func (r *SignupRequest) Validate() error {
	if len(r.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidRequest)
	}
	if !strings.Contains(r.Email, "@") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidRequest)
	}
	return nil
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	UserID      string `json:"user_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}
