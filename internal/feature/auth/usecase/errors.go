// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a required registration field is
	// missing or malformed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmailAlreadyExists is returned when attempting to register with an
	// email address that is already taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrShopNameAlreadyExists is returned when attempting to register with a
	// coffee-shop name that is already taken.
	ErrShopNameAlreadyExists = errors.New("coffee shop already exists")

	// ErrInvalidCredentials is returned on login failure. Unknown email and
	// wrong password both map here so the caller cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session token is unknown,
	// expired, or revoked.
	ErrSessionNotFound = errors.New("session not found")
)
