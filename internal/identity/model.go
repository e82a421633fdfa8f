package identity

import (
	"errors"
	"time"
)

// User represents a registered guest account keyed by phone number.
type User struct {
	ID           string
	Phone        string
	FullName     string
	FirstName    string
	LastName     string
	PasswordHash []byte
	DateOfBirth  *time.Time
	CreatedAt    time.Time
}

// DisplayName prefers the stored full name and falls back to joining the
// split parts, mirroring what the store may hold for older rows.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	FullName    string
	Phone       string
	Password    string
	DateOfBirth *time.Time
}

// Session is the outcome of a successful register or login.
type Session struct {
	User  User
	Token string
}

var (
	// ErrAlreadyExists reports a registration collision on phone number.
	ErrAlreadyExists = errors.New("identity: phone already registered")
	// ErrInvalidCredentials covers both unknown phone and wrong password so
	// callers cannot probe which phone numbers are registered.
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
	// ErrNotFound reports a missing identity record.
	ErrNotFound = errors.New("identity: user not found")
	// ErrValidation wraps rejected input caught before any store access.
	ErrValidation = errors.New("identity: validation failed")
)
