// internal/domain/checkout/errors.go
package checkout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSubmissionInFlight rejects a second submit while one is running for
// the same session. A slow network plus a double-click must not create two
// orders.
var ErrSubmissionInFlight = errors.New("an order submission is already in progress")

// ErrLoginRequired is returned when checkout gating is enabled and no
// session is present
var ErrLoginRequired = errors.New("login is required to place an order")

// ValidationError reports missing checkout fields. It is raised before any
// network call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// PaymentUnavailableError reports that the payment-session endpoint is
// missing or failing. Callers degrade to cash on delivery instead of
// leaving the user on a dead end.
type PaymentUnavailableError struct {
	Err error
}

func (e *PaymentUnavailableError) Error() string {
	return "card payment is currently unavailable, please choose cash on delivery"
}

func (e *PaymentUnavailableError) Unwrap() error {
	return e.Err
}
