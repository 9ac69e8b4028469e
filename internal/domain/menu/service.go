// internal/domain/menu/service.go
package menu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// Service fetches menu data from the backend API. The menu is owned by the
// backend; this service only reads it and forwards admin changes.
type Service struct {
	client *backend.Client
}

// NewService creates a new menu service
func NewService(client *backend.Client) *Service {
	return &Service{
		client: client,
	}
}

// ListRequest represents menu list query parameters
type ListRequest struct {
	Category     string `form:"category"`
	Query        string `form:"q"`
	Sort         string `form:"sort"`
	Page         int    `form:"page"`
	Limit        int    `form:"limit"`
	IncludeDeals bool   `form:"include_deals"`
}

// List retrieves menu items, excluding deals unless asked for. Query
// parameters pass through to the backend unchanged.
func (s *Service) List(ctx context.Context, req *ListRequest) ([]Item, error) {
	query := url.Values{}
	if req.Category != "" {
		query.Set("category", req.Category)
	}
	if req.Query != "" {
		query.Set("q", req.Query)
	}
	if req.Sort != "" {
		query.Set("sort", req.Sort)
	}
	if req.Page > 0 {
		query.Set("page", strconv.Itoa(req.Page))
	}
	if req.Limit > 0 {
		query.Set("limit", strconv.Itoa(req.Limit))
	}

	var items []Item
	if err := s.client.Get(ctx, "/api/menu", query, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	if req.IncludeDeals {
		return items, nil
	}

	filtered := items[:0]
	for _, item := range items {
		if !item.IsDeal() {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// Deals retrieves the promotional items only
func (s *Service) Deals(ctx context.Context) ([]Item, error) {
	var items []Item
	query := url.Values{"category": {DealsCategory}}
	if err := s.client.Get(ctx, "/api/menu", query, &items); err != nil {
		return nil, fmt.Errorf("failed to fetch deals: %w", err)
	}

	// Older backends ignore the category filter, so filter locally too
	deals := items[:0]
	for _, item := range items {
		if item.IsDeal() {
			deals = append(deals, item)
		}
	}
	return deals, nil
}

// UpsertRequest represents menu item create/update data
type UpsertRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Discount    int    `json:"discount,omitempty" binding:"omitempty,min=0,max=100"`
}

// Create adds a menu item through the backend API (admin only)
func (s *Service) Create(ctx context.Context, token string, req *UpsertRequest) (*Item, error) {
	var item Item
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodPost,
		Path:   "/api/menu",
		Body:   req,
		Token:  token,
	}, &item)
	if err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &item, nil
}

// Update modifies a menu item through the backend API (admin only)
func (s *Service) Update(ctx context.Context, token, id string, req *UpsertRequest) (*Item, error) {
	var item Item
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodPut,
		Path:   "/api/menu/" + id,
		Body:   req,
		Token:  token,
	}, &item)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return &item, nil
}

// Delete removes a menu item through the backend API (admin only)
func (s *Service) Delete(ctx context.Context, token, id string) error {
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodDelete,
		Path:   "/api/menu/" + id,
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	return nil
}
