package menu

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

var testMenu = []Item{
	{ID: "m1", Name: "Burger", Price: 200, Category: "burgers"},
	{ID: "m2", Name: "Pizza", Price: 550, Category: "pizza"},
	{ID: "m3", Name: "Combo Deal", Price: 700, Category: "deals", Discount: 20},
}

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewService(backend.NewClientWithBaseURL(srv.URL, 5*time.Second))
}

func TestListExcludesDeals(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testMenu)
	}))

	items, err := svc.List(context.Background(), &ListRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected deals filtered out, got %d items", len(items))
	}
	for _, item := range items {
		if item.IsDeal() {
			t.Fatalf("unexpected deal in regular listing: %+v", item)
		}
	}
}

func TestListIncludeDeals(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(testMenu)
	}))

	items, err := svc.List(context.Background(), &ListRequest{IncludeDeals: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected full listing, got %d items", len(items))
	}
}

func TestListPassesQueryThrough(t *testing.T) {
	t.Parallel()

	var gotQuery string
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]Item{})
	}))

	_, err := svc.List(context.Background(), &ListRequest{
		Category: "pizza",
		Query:    "pepperoni",
		Sort:     "price",
		Page:     2,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "category=pizza&limit=10&page=2&q=pepperoni&sort=price"
	if gotQuery != want {
		t.Fatalf("expected query %q, got %q", want, gotQuery)
	}
}

func TestDealsFiltersLocally(t *testing.T) {
	t.Parallel()

	// Simulate a backend that ignores the category filter
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("category") != DealsCategory {
			t.Errorf("expected category=%s, got %q", DealsCategory, r.URL.Query().Get("category"))
		}
		json.NewEncoder(w).Encode(testMenu)
	}))

	deals, err := svc.Deals(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 1 || deals[0].ID != "m3" {
		t.Fatalf("expected the one deal item, got %+v", deals)
	}
}

func TestEffectivePrice(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		item Item
		want int64
	}{
		{"no discount", Item{Price: 200}, 200},
		{"twenty percent off", Item{Price: 700, Discount: 20}, 560},
		{"full discount clamps to zero", Item{Price: 500, Discount: 150}, 0},
		{"negative discount ignored", Item{Price: 300, Discount: -10}, 300},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.EffectivePrice(); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSnapshotAppliesDiscount(t *testing.T) {
	t.Parallel()

	item := Item{ID: "m3", Name: "Combo Deal", Price: 700, Category: "deals", Discount: 20}
	snap := item.Snapshot()

	if snap.UnitPrice != 560 {
		t.Fatalf("expected discounted snapshot price 560, got %d", snap.UnitPrice)
	}
	if snap.ItemID != "m3" {
		t.Fatalf("unexpected item id %q", snap.ItemID)
	}
}
