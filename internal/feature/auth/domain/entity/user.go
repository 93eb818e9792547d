// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered coffee-shop owner.
// It contains authentication credentials and the shop metadata shown on the
// public menu page.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Email is the owner's email address used for authentication.
	// It is stored lowercase and must be unique across all users.
	Email string `gorm:"column:user_email;uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the owner's password.
	// This must never store a plaintext password.
	Password string `gorm:"column:hash;size:255;not null"`

	// ShopName is the coffee shop's display name. Unique across all users.
	ShopName string `gorm:"column:coffee_shop;uniqueIndex;size:255;not null"`

	// Address is the shop's postal address.
	Address string `gorm:"size:255;not null"`

	// Phone is the shop's contact number in international format.
	Phone string `gorm:"column:phone_number;size:32;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
