// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Line represents one distinct menu item held in the cart. Name and price
// are snapshots taken when the item was added; a later price change on the
// backend does not retroactively alter lines already present.
type Line struct {
	ItemID    string    `json:"_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"price"` // In minor currency units
	Quantity  int       `json:"quantity"`
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// LineTotal returns the derived line total. It is always computed from the
// unit price and quantity, never trusted from a caller-supplied field.
func (l Line) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// ItemSnapshot is the menu item data captured at add time
type ItemSnapshot struct {
	ItemID    string `json:"_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	Category  string `json:"category,omitempty"`
}

// Cart is the ordered collection of lines for one browser session.
// Invariant: at most one line per ItemID.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	TotalPrice    int64 `json:"total_price"`
}

// AddItem merges the item into the cart. If a line with the same ItemID
// already exists its quantity is increased by qty; otherwise a new line is
// appended. Returns an InvalidItemError for a malformed item or a
// non-positive quantity; the cart is never partially updated.
func (c *Cart) AddItem(item ItemSnapshot, qty int) error {
	if item.ItemID == "" {
		return &InvalidItemError{Reason: "item id is required"}
	}
	if item.UnitPrice < 0 {
		return &InvalidItemError{Reason: "unit price cannot be negative"}
	}
	if qty < 1 {
		return &InvalidItemError{Reason: "quantity must be at least 1"}
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ItemID {
			c.Lines[i].Quantity += qty
			return nil
		}
	}

	c.Lines = append(c.Lines, Line{
		ItemID:    item.ItemID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  qty,
		Image:     item.Image,
		Category:  item.Category,
		AddedAt:   time.Now().UTC(),
	})
	return nil
}

// RemoveItem removes the line matching itemID entirely, regardless of its
// quantity. Removing an absent item is a no-op, not an error.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// IncreaseQuantity adjusts the matching line's quantity by +1.
// Returns false if the item is not in the cart.
func (c *Cart) IncreaseQuantity(itemID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity++
			return true
		}
	}
	return false
}

// DecreaseQuantity adjusts the matching line's quantity by -1, clamping at 1.
// A line never leaves the cart through decrement; that takes an explicit
// RemoveItem. Returns false if the item is not in the cart.
func (c *Cart) DecreaseQuantity(itemID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			if c.Lines[i].Quantity > 1 {
				c.Lines[i].Quantity--
			}
			return true
		}
	}
	return false
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.Lines = nil
}

// Total returns the derived sum of line totals. Recomputed on every call.
func (c *Cart) Total() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.LineTotal()
	}
	return total
}

// Contains reports whether the cart holds a line for itemID
func (c *Cart) Contains(itemID string) bool {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return true
		}
	}
	return false
}

// Quantity returns the quantity held for itemID, or 0 if absent
func (c *Cart) Quantity(itemID string) int {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// CalculateTotals derives the cart summary from current lines
func (c *Cart) CalculateTotals() Totals {
	totals := Totals{ItemCount: len(c.Lines)}
	for _, line := range c.Lines {
		totals.TotalQuantity += line.Quantity
		totals.TotalPrice += line.LineTotal()
	}
	return totals
}

// Snapshot returns a deep copy of the cart lines, safe to hand to the
// checkout flow while the session keeps mutating the original.
func (c *Cart) Snapshot() []Line {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
