// Package usecase implements the business logic for the menu feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when the item name or price is missing or
	// the price is not a positive number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCategory is returned when the category is not in the fixed
	// set of menu categories.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidStyle is returned when the display style is not one of the
	// fixed style variants.
	ErrInvalidStyle = errors.New("invalid style")

	// ErrItemNotFound is returned when removing an item that does not exist
	// for the calling user.
	ErrItemNotFound = errors.New("menu item not found")
)
