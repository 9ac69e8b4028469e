package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/session"
	"github.com/your-org/storefront-backend/internal/pkg/backend"
)

func newTestService(t *testing.T, handler http.Handler, requireLogin bool) (*Service, *cart.Store, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Checkout: config.CheckoutConfig{RequireLogin: requireLogin},
	}
	cartStore := cart.NewStore(cart.NewMemoryStorage())
	svc := NewService(backend.NewClientWithBaseURL(srv.URL, 5*time.Second), cartStore, cfg)
	return svc, cartStore, srv
}

func fillCart(t *testing.T, store *cart.Store, sessionID string) {
	t.Helper()

	ctx := context.Background()
	if _, err := store.AddItem(ctx, sessionID, cart.ItemSnapshot{ItemID: "burger", Name: "Burger", UnitPrice: 200}, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.AddItem(ctx, sessionID, cart.ItemSnapshot{ItemID: "fries", Name: "Fries", UnitPrice: 350}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		CustomerName: "Ada",
		Phone:        "555-0100",
		Address:      "1 Main St",
	}
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	t.Parallel()

	var got orderPayload
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Order placed successfully"})
	})

	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	result, err := svc.Submit(context.Background(), "sess", nil, validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Order placed successfully" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
	if result.TotalPrice != 750 {
		t.Fatalf("expected total 750, got %d", result.TotalPrice)
	}

	if got.TotalPrice != 750 || len(got.Items) != 2 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if got.CustomerName != "Ada" {
		t.Fatalf("unexpected customer name: %q", got.CustomerName)
	}

	if total := cartStore.Total(context.Background(), "sess"); total != 0 {
		t.Fatalf("expected cart cleared after success, got total %d", total)
	}
}

func TestSubmitFailurePreservesCart(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	if _, err := svc.Submit(context.Background(), "sess", nil, validRequest()); err == nil {
		t.Fatal("expected error for backend failure")
	}

	if total := cartStore.Total(context.Background(), "sess"); total != 750 {
		t.Fatalf("expected cart preserved for retry, got total %d", total)
	}

	if svc.State("sess") != StateIdle {
		t.Fatalf("expected state to return to idle, got %s", svc.State("sess"))
	}
}

func TestSubmitNetworkFailurePreservesCart(t *testing.T) {
	t.Parallel()

	svc, cartStore, srv := newTestService(t, http.NotFoundHandler(), false)
	srv.Close() // connection refused from here on
	fillCart(t, cartStore, "sess")

	_, err := svc.Submit(context.Background(), "sess", nil, validRequest())
	var netErr *backend.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}

	if total := cartStore.Total(context.Background(), "sess"); total != 750 {
		t.Fatalf("expected cart preserved, got total %d", total)
	}
}

func TestSubmitValidatesForm(t *testing.T) {
	t.Parallel()

	svc, cartStore, _ := newTestService(t, http.NotFoundHandler(), false)
	fillCart(t, cartStore, "sess")

	_, err := svc.Submit(context.Background(), "sess", nil, &SubmitRequest{Phone: "555-0100"})
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(vErr.Fields) != 2 {
		t.Fatalf("expected customerName and address to be missing, got %v", vErr.Fields)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, http.NotFoundHandler(), false)

	_, err := svc.Submit(context.Background(), "sess", nil, validRequest())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for empty cart, got %v", err)
	}
}

func TestSubmitLoginGating(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	svc, cartStore, _ := newTestService(t, handler, true)
	fillCart(t, cartStore, "sess")

	if _, err := svc.Submit(context.Background(), "sess", nil, validRequest()); !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected ErrLoginRequired, got %v", err)
	}

	sess := &session.Session{Name: "Ada", Role: session.RoleCustomer}
	if _, err := svc.Submit(context.Background(), "sess", sess, validRequest()); err != nil {
		t.Fatalf("expected logged-in submit to succeed, got %v", err)
	}
}

func TestSubmitDefaultsNameFromSession(t *testing.T) {
	t.Parallel()

	var got orderPayload
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})
	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	req := validRequest()
	req.CustomerName = ""
	sess := &session.Session{Name: "Grace", Role: session.RoleCustomer}

	if _, err := svc.Submit(context.Background(), "sess", sess, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomerName != "Grace" {
		t.Fatalf("expected name from session, got %q", got.CustomerName)
	}
}

func TestSubmitGuardsAgainstDoubleSubmission(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	firstArrived := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(firstArrived)
		<-release
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = svc.Submit(context.Background(), "sess", nil, validRequest())
	}()

	<-firstArrived
	if svc.State("sess") != StateSubmitting {
		t.Fatalf("expected submitting state, got %s", svc.State("sess"))
	}

	// A second click while the first request is in flight is rejected
	if _, err := svc.Submit(context.Background(), "sess", nil, validRequest()); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(release)
	wg.Wait()

	if firstErr != nil {
		t.Fatalf("expected first submission to succeed, got %v", firstErr)
	}
	if total := cartStore.Total(context.Background(), "sess"); total != 0 {
		t.Fatalf("expected cart cleared by the first submission, got total %d", total)
	}
}

func TestSubmitAbandonedAttemptDoesNotClearCart(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	arrived := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	})

	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	var wg sync.WaitGroup
	wg.Add(1)
	var submitErr error
	go func() {
		defer wg.Done()
		_, submitErr = svc.Submit(context.Background(), "sess", nil, validRequest())
	}()

	// The user navigates away while the request is in flight
	<-arrived
	svc.Abandon("sess")
	close(release)
	wg.Wait()

	if submitErr == nil {
		t.Fatal("expected superseded submission to report an error")
	}
	if total := cartStore.Total(context.Background(), "sess"); total != 750 {
		t.Fatalf("expected abandoned attempt to leave the cart alone, got total %d", total)
	}
}

func TestCreatePaymentSession(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/payments/create-checkout-session" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"url": "https://pay.example/session/123"})
	})
	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	ps, err := svc.CreatePaymentSession(context.Background(), "sess")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps.URL != "https://pay.example/session/123" {
		t.Fatalf("unexpected url: %q", ps.URL)
	}
}

func TestCreatePaymentSessionNotDeployed(t *testing.T) {
	t.Parallel()

	// A backend without the payments feature answers 404; the caller is
	// told to fall back to cash on delivery.
	svc, cartStore, _ := newTestService(t, http.NotFoundHandler(), false)
	fillCart(t, cartStore, "sess")

	_, err := svc.CreatePaymentSession(context.Background(), "sess")
	var unavailable *PaymentUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected PaymentUnavailableError, got %v", err)
	}
}

func TestCreatePaymentSessionEmptyURL(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	})
	svc, cartStore, _ := newTestService(t, handler, false)
	fillCart(t, cartStore, "sess")

	_, err := svc.CreatePaymentSession(context.Background(), "sess")
	var unavailable *PaymentUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected PaymentUnavailableError, got %v", err)
	}
}

func TestCreatePaymentSessionEmptyCart(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, http.NotFoundHandler(), false)

	_, err := svc.CreatePaymentSession(context.Background(), "sess")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
