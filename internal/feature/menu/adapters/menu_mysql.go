// Package adapters provides repository implementations for the menu feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"coffeeshop_backend/internal/feature/menu/domain/entity"
	"coffeeshop_backend/internal/feature/menu/usecase"
)

// menuMySQL is a MySQL implementation of the MenuRepository interface.
// All queries filter by the owning user's ID; there is deliberately no way
// to read or delete another owner's rows.
type menuMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure menuMySQL implements MenuRepository.
var _ usecase.MenuRepository = (*menuMySQL)(nil)

// NewMenuMySQL creates a new menuMySQL instance with the given gorm.DB connection.
func NewMenuMySQL(db *gorm.DB) *menuMySQL {
	return &menuMySQL{db: db}
}

// Create persists a new menu item.
func (r *menuMySQL) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// ListByUser returns all menu items owned by userID, oldest first.
func (r *menuMySQL) ListByUser(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByUserAndItem removes the rows matching item name and owner jointly
// and reports how many rows were deleted.
func (r *menuMySQL) DeleteByUserAndItem(ctx context.Context, userID uint, item string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND item = ?", userID, item).
		Delete(&entity.MenuItem{})
	return result.RowsAffected, result.Error
}
