package domain

import "errors"

var ErrDuplicateID = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidEmail = errors.New("invalid email")
var ErrRegistryFull = errors.New("registry is full")

// Returned by User.Validate.
var ErrEmptyName = errors.New("name cannot be empty")
var ErrInvalidEmailFormat = errors.New("email format is invalid")
