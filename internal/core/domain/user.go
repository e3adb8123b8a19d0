package domain

import (
	"fmt"
	"strings"
)

// User is a single registry record keyed by ID.
type User struct {
	ID       uint32 `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Email    string `json:"email" yaml:"email"`
	IsActive bool   `json:"is_active" yaml:"is_active"`
}

// Validator is implemented by records that can check their own invariants.
type Validator interface {
	Validate() error
}

var _ Validator = User{}

// NewUser builds an active user. No validation is performed.
func NewUser(id uint32, name, email string) User {
	return User{
		ID:       id,
		Name:     name,
		Email:    email,
		IsActive: true,
	}
}

func (u *User) Activate() {
	u.IsActive = true
}

func (u *User) Deactivate() {
	u.IsActive = false
}

// IsValid reports whether the email passes ValidateEmail and the name is
// non-empty. The name is not trimmed, so "   " is accepted.
func (u User) IsValid() bool {
	return ValidateEmail(u.Email) && u.Name != ""
}

// FormatName returns the display form of the user's name.
func (u User) FormatName() string {
	return FormatUserName(u.Name)
}

// Validate checks the name first, then the email.
func (u User) Validate() error {
	if u.Name == "" {
		return ErrEmptyName
	}
	if !ValidateEmail(u.Email) {
		return ErrInvalidEmailFormat
	}
	return nil
}

// ValidateEmail reports whether email contains both an '@' and a '.'.
// Position and order are not checked.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// FormatUserName trims surrounding whitespace and upper-cases the name.
func FormatUserName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// CreateUser checks the email, formats the name and returns an active user.
// The email is stored as given. An empty name is not rejected here.
func CreateUser(id uint32, name, email string) (User, error) {
	if !ValidateEmail(email) {
		return User{}, fmt.Errorf("%w: %s", ErrInvalidEmail, email)
	}

	return User{
		ID:       id,
		Name:     FormatUserName(name),
		Email:    email,
		IsActive: true,
	}, nil
}
