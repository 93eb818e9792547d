package dto

import "coffeeshop_backend/internal/feature/menu/domain/entity"

// MenuItemRes is one menu row as returned to the client.
type MenuItemRes struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Item     string `json:"item"`
	Price    string `json:"price"`
}

// DisplayRes is the payload handed to the rendering layer for the styled
// menu page: shop metadata, the resolved style constants and the items
// grouped by their category order.
type DisplayRes struct {
	Name        string             `json:"name"`
	Address     string             `json:"address"`
	PhoneNumber string             `json:"phone_number"`
	Style       string             `json:"style"`
	Config      entity.StyleConfig `json:"config"`
	Categories  []string           `json:"categories"`
	Items       []MenuItemRes      `json:"items"`
}
