package cart

import (
	"testing"
)

func snap(id string, price int64) ItemSnapshot {
	return ItemSnapshot{ItemID: id, Name: "item " + id, UnitPrice: price}
}

func TestAddItemMergesByItemID(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("burger", 200), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddItem(snap("burger", 200), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(c.Lines))
	}
	if c.Quantity("burger") != 2 {
		t.Fatalf("expected quantity 2, got %d", c.Quantity("burger"))
	}
	if c.Total() != 400 {
		t.Fatalf("expected total 400, got %d", c.Total())
	}
}

func TestAddItemKeepsPriceSnapshot(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("pizza", 550), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A changed backend price does not retroactively alter the line;
	// merging only bumps the quantity.
	if err := c.AddItem(snap("pizza", 999), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(c.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(c.Lines))
	}
	if c.Lines[0].UnitPrice != 550 {
		t.Fatalf("expected snapshot price 550, got %d", c.Lines[0].UnitPrice)
	}
}

func TestAddItemValidation(t *testing.T) {
	t.Parallel()

	c := &Cart{}

	if err := c.AddItem(ItemSnapshot{Name: "nameless", UnitPrice: 100}, 1); !IsInvalidItem(err) {
		t.Fatalf("expected InvalidItemError for missing id, got %v", err)
	}
	if err := c.AddItem(ItemSnapshot{ItemID: "x", UnitPrice: -5}, 1); !IsInvalidItem(err) {
		t.Fatalf("expected InvalidItemError for negative price, got %v", err)
	}
	if err := c.AddItem(snap("x", 100), 0); !IsInvalidItem(err) {
		t.Fatalf("expected InvalidItemError for zero quantity, got %v", err)
	}

	// Rejected adds never leave a partial line behind
	if !c.IsEmpty() {
		t.Fatalf("expected cart to stay empty, got %d lines", len(c.Lines))
	}
}

func TestTotalTracksEveryMutation(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("fries", 350), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddItem(snap("pizza", 550), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Total() != 1450 {
		t.Fatalf("expected total 1450, got %d", c.Total())
	}

	c.IncreaseQuantity("fries")
	if c.Total() != 1800 {
		t.Fatalf("expected total 1800 after increment, got %d", c.Total())
	}

	c.RemoveItem("pizza")
	if c.Total() != 700 {
		t.Fatalf("expected total 700 after removal, got %d", c.Total())
	}

	c.Clear()
	if c.Total() != 0 {
		t.Fatalf("expected total 0 after clear, got %d", c.Total())
	}
}

func TestDecreaseQuantityClampsAtOne(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("soda", 150), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.DecreaseQuantity("soda") {
		t.Fatal("expected decrement to find the line")
	}
	if c.Quantity("soda") != 1 {
		t.Fatalf("expected quantity 1, got %d", c.Quantity("soda"))
	}

	// Further decrements clamp; the line never leaves the cart this way
	if !c.DecreaseQuantity("soda") {
		t.Fatal("expected decrement to find the line")
	}
	if c.Quantity("soda") != 1 {
		t.Fatalf("expected quantity to stay 1, got %d", c.Quantity("soda"))
	}
	if !c.Contains("soda") {
		t.Fatal("expected line to remain after clamped decrement")
	}

	if c.DecreaseQuantity("missing") {
		t.Fatal("expected decrement of absent item to report false")
	}
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("burger", 200), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Removal drops the whole line regardless of quantity
	c.RemoveItem("burger")
	if c.Contains("burger") {
		t.Fatal("expected line to be gone")
	}

	// Removing again, or removing something never added, is a no-op
	c.RemoveItem("burger")
	c.RemoveItem("never-added")
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines))
	}
}

func TestClearEmptiesEverything(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	for _, id := range []string{"a", "b", "c"} {
		if err := c.AddItem(snap(id, 100), 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	c.Clear()
	if !c.IsEmpty() || c.Total() != 0 {
		t.Fatalf("expected empty cart with zero total, got %d lines / total %d", len(c.Lines), c.Total())
	}

	// Clearing an already-empty cart is fine
	c.Clear()
	if !c.IsEmpty() {
		t.Fatal("expected cart to stay empty")
	}
}

func TestCalculateTotals(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("fries", 350), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.AddItem(snap("pizza", 550), 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals := c.CalculateTotals()
	if totals.ItemCount != 2 {
		t.Fatalf("expected 2 distinct lines, got %d", totals.ItemCount)
	}
	if totals.TotalQuantity != 3 {
		t.Fatalf("expected total quantity 3, got %d", totals.TotalQuantity)
	}
	if totals.TotalPrice != 1450 {
		t.Fatalf("expected total price 1450, got %d", totals.TotalPrice)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	t.Parallel()

	c := &Cart{}
	if err := c.AddItem(snap("burger", 200), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := c.Snapshot()
	c.IncreaseQuantity("burger")
	c.Clear()

	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected snapshot to be unaffected by later mutations, got %+v", lines)
	}
}
