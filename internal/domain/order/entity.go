// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status as managed by the backend. This
// service never transitions orders itself; it forwards status changes and
// displays what the backend reports.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

// Valid reports whether s is a status the backend accepts
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Item represents one line of a placed order
type Item struct {
	ItemID    string `json:"_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order represents an order record as served by the backend API
type Order struct {
	ID           string    `json:"_id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Items        []Item    `json:"items"`
	TotalPrice   int64     `json:"totalPrice"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
