// internal/domain/slides/service.go
package slides

import (
	"context"
	"fmt"
	"net/http"

	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// Service manages hero banner slides through the backend API
type Service struct {
	client *backend.Client
}

// NewService creates a new slides service
func NewService(client *backend.Client) *Service {
	return &Service{
		client: client,
	}
}

// List retrieves all slides
func (s *Service) List(ctx context.Context) ([]Slide, error) {
	var result []Slide
	if err := s.client.Get(ctx, "/api/slides", nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch slides: %w", err)
	}
	return result, nil
}

// CreateRequest represents slide creation data. The image is uploaded to a
// CDN by the admin UI; only its URL travels here.
type CreateRequest struct {
	Text    string `json:"text" binding:"required"`
	Subtext string `json:"subtext"`
	Image   string `json:"image" binding:"required,url"`
}

// Create adds a slide through the backend API (admin only)
func (s *Service) Create(ctx context.Context, token string, req *CreateRequest) (*Slide, error) {
	var slide Slide
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodPost,
		Path:   "/api/slides",
		Body:   req,
		Token:  token,
	}, &slide)
	if err != nil {
		return nil, fmt.Errorf("failed to create slide: %w", err)
	}
	return &slide, nil
}

// Delete removes a slide through the backend API (admin only)
func (s *Service) Delete(ctx context.Context, token, id string) error {
	err := s.client.Do(ctx, &backend.Request{
		Method: http.MethodDelete,
		Path:   "/api/slides/" + id,
		Token:  token,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete slide: %w", err)
	}
	return nil
}
