package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"coffeeshop_backend/internal/feature/menu/domain/entity"
)

// MenuRepository abstracts the persistence layer for menu items.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Every method is scoped by the owning user's ID.
type MenuRepository interface {
	// Create persists a new menu item for its owner.
	Create(ctx context.Context, item *entity.MenuItem) error

	// ListByUser returns all menu items owned by userID.
	ListByUser(ctx context.Context, userID uint) ([]entity.MenuItem, error)

	// DeleteByUserAndItem removes the rows matching item name and owner
	// jointly, returning the number of deleted rows.
	DeleteByUserAndItem(ctx context.Context, userID uint, item string) (int64, error)
}

// ShopReader looks up the shop metadata shown on the displayed menu.
// Implemented by the auth feature's user repository.
type ShopReader interface {
	ShopInfo(ctx context.Context, userID uint) (name, address, phone string, err error)
}

// Display is the data handed to the rendering layer for a styled menu page.
type Display struct {
	ShopName   string
	Address    string
	Phone      string
	Style      entity.Style
	Config     entity.StyleConfig
	Categories []string
	Items      []entity.MenuItem
}

// MenuUsecase provides the owner-scoped menu operations.
type MenuUsecase struct {
	repo  MenuRepository
	shops ShopReader
}

// NewMenuUsecase creates a new MenuUsecase with the given repository and
// shop metadata reader.
func NewMenuUsecase(repo MenuRepository, shops ShopReader) *MenuUsecase {
	return &MenuUsecase{repo: repo, shops: shops}
}

// AddItem validates and stores a new menu item for userID, returning its ID.
// The price string is stored as submitted but must parse as a positive
// decimal.
func (u *MenuUsecase) AddItem(ctx context.Context, userID uint, category, item, price string) (uint, error) {
	if !entity.ValidCategory(category) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	item = strings.TrimSpace(item)
	if item == "" {
		return 0, fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}

	price = strings.TrimSpace(price)
	if price == "" {
		return 0, fmt.Errorf("%w: price is required", ErrInvalidInput)
	}
	if v, err := strconv.ParseFloat(price, 64); err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: price must be a positive number", ErrInvalidInput)
	}

	m := &entity.MenuItem{
		UserID:   userID,
		Category: category,
		Item:     item,
		Price:    price,
	}
	if err := u.repo.Create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// ListItems returns all menu items owned by userID.
func (u *MenuUsecase) ListItems(ctx context.Context, userID uint) ([]entity.MenuItem, error) {
	return u.repo.ListByUser(ctx, userID)
}

// RemoveItem deletes the user's menu rows matching the item name.
// Returns ErrItemNotFound when no owned row matches.
func (u *MenuUsecase) RemoveItem(ctx context.Context, userID uint, item string) error {
	item = strings.TrimSpace(item)
	if item == "" {
		return fmt.Errorf("%w: item name is required", ErrInvalidInput)
	}

	deleted, err := u.repo.DeleteByUserAndItem(ctx, userID, item)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DisplayMenu assembles everything the rendering layer needs for the styled
// menu page: the shop metadata, the owner's items, the category list in
// first-appearance order and the resolved style constants.
func (u *MenuUsecase) DisplayMenu(ctx context.Context, userID uint, style entity.Style) (*Display, error) {
	cfg, ok := style.Config()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}

	name, address, phone, err := u.shops.ShopInfo(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Categories in order of first appearance on the menu.
	var cats []string
	seen := map[string]struct{}{}
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		cats = append(cats, it.Category)
	}

	return &Display{
		ShopName:   name,
		Address:    address,
		Phone:      phone,
		Style:      style,
		Config:     cfg,
		Categories: cats,
		Items:      items,
	}, nil
}
