// Package entity defines the domain models for the newsletter feature.
package entity

import "time"

// Subscriber is a newsletter signup. Append-only, keyed by email.
type Subscriber struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (Subscriber) TableName() string {
	return "subscribers"
}

// ContactMessage is a message submitted through the contact form.
// Append-only; never read back by this application.
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (ContactMessage) TableName() string {
	return "contact"
}
