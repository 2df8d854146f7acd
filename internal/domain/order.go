package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "RECEIVED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusOnTheWay       OrderStatus = "ON_THE_WAY"
	OrderStatusDelivered      OrderStatus = "DELIVERED"
)

// statusOrder defines the only walk an order may take through its lifecycle.
var statusOrder = []OrderStatus{
	OrderStatusReceived,
	OrderStatusPreparing,
	OrderStatusReadyForPickup,
	OrderStatusOnTheWay,
	OrderStatusDelivered,
}

func (s OrderStatus) Valid() bool {
	for _, st := range statusOrder {
		if s == st {
			return true
		}
	}
	return false
}

// Next returns the following status in the lifecycle, or the empty
// status when s is terminal or unknown.
func (s OrderStatus) Next() OrderStatus {
	for i, st := range statusOrder {
		if s == st && i+1 < len(statusOrder) {
			return statusOrder[i+1]
		}
	}
	return ""
}

// CanTransitionTo reports whether next is the immediate successor of s.
// The lifecycle is strictly linear: no skips, no reversals, and
// DELIVERED admits no further transition.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s.Next() == next && next != ""
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered
}

// LineItem is a product snapshot plus a purchased quantity. Inside a
// cart quantity never drops below 1; inside an order the snapshot is
// frozen at checkout.
type LineItem struct {
	Product  Product
	Quantity int
}

func (li LineItem) Total() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Order is created at checkout and never deleted. Items and Total are
// fixed at creation; only Status and CourierName mutate afterwards.
type Order struct {
	ID            string
	CustomerID    string
	CustomerName  string
	Items         []LineItem
	Total         decimal.Decimal
	Status        OrderStatus
	CreatedAt     time.Time
	Address       string
	PaymentMethod string
	CourierName   string
}
