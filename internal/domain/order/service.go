// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// Service reads and forwards order data. The order lifecycle is owned by
// the backend API; everything here is a gated pass-through.
type Service struct {
	client *backend.Client
}

// NewService creates a new order service
func NewService(client *backend.Client) *Service {
	return &Service{
		client: client,
	}
}

// ListRequest represents order list query parameters
type ListRequest struct {
	Status string `form:"status"`
	Filter string `form:"filter"` // backend date filter: today, week, month
}

// List retrieves orders visible to the caller. Customers see their own
// orders, admins see all; the backend decides based on the token.
func (s *Service) List(ctx context.Context, token string, req *ListRequest) ([]Order, error) {
	query := url.Values{}
	if req.Status != "" {
		query.Set("status", req.Status)
	}
	if req.Filter != "" {
		query.Set("filter", req.Filter)
	}

	var orders []Order
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodGet,
		Path:   "/api/orders",
		Query:  query,
		Token:  token,
	}, &orders)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus forwards an order status change to the backend (admin only)
func (s *Service) UpdateStatus(ctx context.Context, token, orderID string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("invalid order status: %s", status)
	}

	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodPut,
		Path:   "/api/orders/" + orderID + "/status",
		Body:   map[string]Status{"status": status},
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// Delete removes an order through the backend API (admin only)
func (s *Service) Delete(ctx context.Context, token, orderID string) error {
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodDelete,
		Path:   "/api/orders/" + orderID,
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
