package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCompleted OrderStatus = "completed"
)

// ValidOrderStatus reports whether s is one of the known lifecycle values.
// Transitions are advisory: nothing in the system moves an order forward on
// its own, the status is rewritten by an external operator call.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCompleted:
		return true
	}
	return false
}

// Order is the immutable record of a confirmed checkout. Items and Shipping
// are snapshots taken at confirmation time; later cart or profile mutations
// never reach back into a recorded order. Only Status is ever rewritten.
type Order struct {
	ID         string          `json:"id"`
	Items      []CartLine      `json:"items"`
	USDTotal   float64         `json:"usdTotal"`
	BTCAmount  string          `json:"btcAmount"`
	BTCAddress string          `json:"btcAddress"`
	BTCPrice   float64         `json:"btcPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
	Status     OrderStatus     `json:"status"`
	Shipping   ShippingProfile `json:"shipping"`
}
