// internal/domain/cart/errors.go
package cart

import "fmt"

// InvalidItemError is returned when a malformed item is passed to AddItem.
// The add is rejected synchronously and never partially applied.
type InvalidItemError struct {
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("invalid cart item: %s", e.Reason)
}

// IsInvalidItem reports whether err is an InvalidItemError
func IsInvalidItem(err error) bool {
	_, ok := err.(*InvalidItemError)
	return ok
}
