// Package entity defines the domain models for the menu feature.
package entity

// MenuItem represents a single entry on a coffee shop's menu.
// Every item belongs to exactly one owner; reads and deletes must always
// filter by UserID.
type MenuItem struct {
	ID       uint   `gorm:"primaryKey"`
	UserID   uint   `gorm:"index;not null"`
	Category string `gorm:"size:64;not null"`
	Item     string `gorm:"size:255;not null"`
	// Price is kept as the string the owner submitted ("4.50" stays "4.50");
	// it is validated as a positive decimal before storage.
	Price string `gorm:"size:32;not null"`
}

// TableName returns the table name for GORM.
func (MenuItem) TableName() string {
	return "menu"
}

// Menu categories. Items may only be filed under one of these.
const (
	CategoryHotDrinks    = "Hot Drinks"
	CategoryColdDrinks   = "Cold Drinks"
	CategoryFoodSnacks   = "Food & Snacks"
	CategoryEspressoBar  = "Espresso Bar"
	CategoryTeaSelection = "Tea Selection"
	CategoryNonCoffee    = "Non-Coffee Beverages"
	CategoryBreakfast    = "Breakfast & Bakery"
	CategoryLunch        = "Lunch & Savory Items"
	CategoryDesserts     = "Desserts"
)

// categories lists the valid menu categories in display order.
var categories = []string{
	CategoryHotDrinks,
	CategoryColdDrinks,
	CategoryFoodSnacks,
	CategoryEspressoBar,
	CategoryTeaSelection,
	CategoryNonCoffee,
	CategoryBreakfast,
	CategoryLunch,
	CategoryDesserts,
}

// Categories returns the valid menu categories in display order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is one of the fixed menu categories.
func ValidCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
