// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

// State is the submission state for one session
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
)

// Service packages cart contents into order submissions against the
// backend API. Per session it runs the Idle -> Submitting -> {Success,
// Failure} machine: success clears the cart, failure leaves it untouched
// so the user can retry without re-entering items.
type Service struct {
	client       *backend.Client
	cartStore    *cart.Store
	requireLogin bool

	mu       sync.Mutex
	inflight map[string]uuid.UUID // session ID -> current attempt token
}

// NewService creates a new checkout service
func NewService(client *backend.Client, cartStore *cart.Store, cfg *config.Config) *Service {
	return &Service{
		client:       client,
		cartStore:    cartStore,
		requireLogin: cfg.Checkout.RequireLogin,
		inflight:     make(map[string]uuid.UUID),
	}
}

// SubmitRequest represents the checkout form
type SubmitRequest struct {
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod,omitempty"` // cod (default) or card
}

// SubmitResult represents a successful order submission
type SubmitResult struct {
	Message    string `json:"message"`
	TotalPrice int64  `json:"total_price"`
	ItemCount  int    `json:"item_count"`
}

// orderPayload is the wire format of POST /api/orders
type orderPayload struct {
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Address      string      `json:"address"`
	Items        []cart.Line `json:"items"`
	TotalPrice   int64       `json:"totalPrice"`
}

// State returns the submission state for the session
func (s *Service) State(sessionID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inflight[sessionID]; ok {
		return StateSubmitting
	}
	return StateIdle
}

// Submit validates the form, sends the order exactly once, and clears the
// cart only after the backend acknowledged it. sess may be nil for
// anonymous checkout when gating is disabled.
func (s *Service) Submit(ctx context.Context, sessionID string, sess *session.Session, req *SubmitRequest) (*SubmitResult, error) {
	// Default the customer name from the authenticated session
	if req.CustomerName == "" && sess != nil {
		req.CustomerName = sess.Name
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}

	if s.requireLogin && sess == nil {
		return nil, ErrLoginRequired
	}

	// Immutable snapshot at submit time; the session may keep mutating the
	// live cart while the request is in flight.
	lines := s.cartStore.Snapshot(ctx, sessionID)
	if len(lines) == 0 {
		return nil, &ValidationError{Fields: []string{"items"}}
	}

	token, err := s.begin(sessionID)
	if err != nil {
		return nil, err
	}
	defer s.finish(sessionID, token)

	var totalPrice int64
	for _, line := range lines {
		totalPrice += line.LineTotal()
	}

	payload := &orderPayload{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        lines,
		TotalPrice:   totalPrice,
	}

	var resp struct {
		Message string `json:"message"`
	}
	if err := s.client.Post(ctx, "/api/orders", payload, &resp); err != nil {
		// Failure path: the cart is preserved for retry
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	// A success that arrives after the attempt was abandoned (navigation
	// away, timeout) must not clear a cart the user has since repopulated.
	if !s.current(sessionID, token) {
		return nil, fmt.Errorf("order submission superseded")
	}

	if err := s.cartStore.Clear(ctx, sessionID); err != nil {
		// The order is placed; a failed cart delete is operational noise,
		// not a submission failure
		return &SubmitResult{
			Message:    resp.Message,
			TotalPrice: totalPrice,
			ItemCount:  len(lines),
		}, nil
	}

	return &SubmitResult{
		Message:    resp.Message,
		TotalPrice: totalPrice,
		ItemCount:  len(lines),
	}, nil
}

// PaymentSession represents a redirect-based card payment session
type PaymentSession struct {
	URL string `json:"url"`
}

// CreatePaymentSession asks the backend for a card-payment redirect URL.
// A 404 means the feature is not deployed; that is reported as
// PaymentUnavailableError so the flow can fall back to cash on delivery.
func (s *Service) CreatePaymentSession(ctx context.Context, sessionID string) (*PaymentSession, error) {
	lines := s.cartStore.Snapshot(ctx, sessionID)
	if len(lines) == 0 {
		return nil, &ValidationError{Fields: []string{"items"}}
	}

	var totalPrice int64
	for _, line := range lines {
		totalPrice += line.LineTotal()
	}

	payload := map[string]interface{}{
		"items":      lines,
		"totalPrice": totalPrice,
	}

	var sess PaymentSession
	if err := s.client.Post(ctx, "/api/payments/create-checkout-session", payload, &sess); err != nil {
		if backend.IsNotFound(err) {
			return nil, &PaymentUnavailableError{Err: err}
		}
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	if sess.URL == "" {
		return nil, &PaymentUnavailableError{}
	}

	return &sess, nil
}

// Abandon drops the session's in-flight attempt, if any. A response that
// still arrives for it will be ignored.
func (s *Service) Abandon(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inflight, sessionID)
}

func (s *Service) validate(req *SubmitRequest) error {
	var missing []string
	if req.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

func (s *Service) begin(sessionID string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.inflight[sessionID]; ok {
		return uuid.Nil, ErrSubmissionInFlight
	}

	token := uuid.New()
	s.inflight[sessionID] = token
	return token, nil
}

func (s *Service) current(sessionID string, token uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.inflight[sessionID] == token
}

func (s *Service) finish(sessionID string, token uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[sessionID] == token {
		delete(s.inflight, sessionID)
	}
}
