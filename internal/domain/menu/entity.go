// internal/domain/menu/entity.go
package menu

import (
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// DealsCategory marks promotional items. They are excluded from the regular
// menu listing and surface through the deals endpoint instead.
const DealsCategory = "deals"

// Item represents a menu item record as served by the backend API
type Item struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // In minor currency units
	Category    string `json:"category"`
	Image       string `json:"image"`
	Description string `json:"description"`
	// Discount is a promotional percentage off, set on deal items
	Discount int `json:"discount,omitempty"`
}

// IsDeal reports whether the item is a promotional deal
func (i Item) IsDeal() bool {
	return i.Category == DealsCategory
}

// EffectivePrice returns the unit price after any promotional discount.
// This is the price that reaches the cart; once added, a deal behaves like
// any other line.
func (i Item) EffectivePrice() int64 {
	if i.Discount <= 0 {
		return i.Price
	}
	if i.Discount >= 100 {
		return 0
	}
	return i.Price - i.Price*int64(i.Discount)/100
}

// Snapshot converts the item into the cart's add-time snapshot, with the
// promotional price adjustment already applied
func (i Item) Snapshot() cart.ItemSnapshot {
	return cart.ItemSnapshot{
		ItemID:    i.ID,
		Name:      i.Name,
		UnitPrice: i.EffectivePrice(),
		Image:     i.Image,
		Category:  i.Category,
	}
}
