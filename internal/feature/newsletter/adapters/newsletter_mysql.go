// Package adapters provides repository implementations for the newsletter feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"coffeeshop_backend/internal/feature/newsletter/domain/entity"
	"coffeeshop_backend/internal/feature/newsletter/usecase"
)

// subscriberMySQL is a MySQL implementation of the SubscriberRepository interface.
type subscriberMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure subscriberMySQL implements SubscriberRepository.
var _ usecase.SubscriberRepository = (*subscriberMySQL)(nil)

// NewSubscriberMySQL creates a new subscriberMySQL instance.
func NewSubscriberMySQL(db *gorm.DB) *subscriberMySQL {
	return &subscriberMySQL{db: db}
}

// Create inserts a subscriber, relying on the unique constraint on email to
// reject duplicates atomically.
func (r *subscriberMySQL) Create(ctx context.Context, s *entity.Subscriber) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrAlreadySubscribed
		}
		return err
	}
	return nil
}

// contactMySQL is a MySQL implementation of the ContactRepository interface.
type contactMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure contactMySQL implements ContactRepository.
var _ usecase.ContactRepository = (*contactMySQL)(nil)

// NewContactMySQL creates a new contactMySQL instance.
func NewContactMySQL(db *gorm.DB) *contactMySQL {
	return &contactMySQL{db: db}
}

// Create inserts a contact message.
func (r *contactMySQL) Create(ctx context.Context, m *entity.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL reports error 1062; SQLite (used by tests) reports
// "UNIQUE constraint failed".
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
