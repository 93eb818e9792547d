// Package usecase implements the business logic for the newsletter feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffeeshop_backend/internal/feature/newsletter/domain/entity"
)

var (
	// ErrInvalidInput is returned when the email or message is missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadySubscribed is returned when the email is already on the
	// subscriber list.
	ErrAlreadySubscribed = errors.New("already subscribed")
)

// SubscriberRepository abstracts the persistence layer for subscribers.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SubscriberRepository interface {
	// Create persists a new subscriber. Returns ErrAlreadySubscribed when
	// the email's unique constraint is violated.
	Create(ctx context.Context, s *entity.Subscriber) error
}

// ContactRepository abstracts the persistence layer for contact messages.
type ContactRepository interface {
	Create(ctx context.Context, m *entity.ContactMessage) error
}

// NewsletterUsecase provides the public subscribe and contact operations.
type NewsletterUsecase struct {
	subscribers SubscriberRepository
	contacts    ContactRepository
}

// NewNewsletterUsecase creates a new NewsletterUsecase instance.
func NewNewsletterUsecase(subscribers SubscriberRepository, contacts ContactRepository) *NewsletterUsecase {
	return &NewsletterUsecase{subscribers: subscribers, contacts: contacts}
}

// Subscribe adds an email to the newsletter list. The email is normalized to
// lowercase; duplicates surface as ErrAlreadySubscribed via the unique
// constraint, never a separate existence query.
func (u *NewsletterUsecase) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return u.subscribers.Create(ctx, &entity.Subscriber{Email: email})
}

// SubmitContact stores a contact-form message.
func (u *NewsletterUsecase) SubmitContact(ctx context.Context, email, message string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(message) == "" {
		return fmt.Errorf("%w: email and message are required", ErrInvalidInput)
	}
	return u.contacts.Create(ctx, &entity.ContactMessage{Email: email, Message: message})
}
