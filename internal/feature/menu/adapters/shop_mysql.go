package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"coffeeshop_backend/internal/feature/menu/usecase"
)

// shopMySQL reads the shop metadata columns of the users table for the
// displayed menu header. It only ever selects by primary key.
type shopMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure shopMySQL implements ShopReader.
var _ usecase.ShopReader = (*shopMySQL)(nil)

// NewShopMySQL creates a new shopMySQL instance with the given gorm.DB connection.
func NewShopMySQL(db *gorm.DB) *shopMySQL {
	return &shopMySQL{db: db}
}

// shopRow is the projection of the users table read here.
type shopRow struct {
	ShopName string `gorm:"column:coffee_shop"`
	Address  string `gorm:"column:address"`
	Phone    string `gorm:"column:phone_number"`
}

// ShopInfo returns the shop name, address and phone number for userID.
func (r *shopMySQL) ShopInfo(ctx context.Context, userID uint) (string, string, string, error) {
	var row shopRow
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("coffee_shop", "address", "phone_number").
		Where("id = ?", userID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", "", errors.New("shop owner not found")
		}
		return "", "", "", err
	}
	return row.ShopName, row.Address, row.Phone, nil
}
