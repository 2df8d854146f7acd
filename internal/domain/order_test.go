package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderStatusReceived.Valid())
	assert.True(t, OrderStatusPreparing.Valid())
	assert.True(t, OrderStatusReadyForPickup.Valid())
	assert.True(t, OrderStatusOnTheWay.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("CANCELED").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Next(t *testing.T) {
	assert.Equal(t, OrderStatusPreparing, OrderStatusReceived.Next())
	assert.Equal(t, OrderStatusReadyForPickup, OrderStatusPreparing.Next())
	assert.Equal(t, OrderStatusOnTheWay, OrderStatusReadyForPickup.Next())
	assert.Equal(t, OrderStatusDelivered, OrderStatusOnTheWay.Next())
	assert.Equal(t, OrderStatus(""), OrderStatusDelivered.Next())
	assert.Equal(t, OrderStatus(""), OrderStatus("bogus").Next())
}

func TestOrderStatus_CanTransitionTo_LinearWalkOnly(t *testing.T) {
	steps := []OrderStatus{
		OrderStatusReceived,
		OrderStatusPreparing,
		OrderStatusReadyForPickup,
		OrderStatusOnTheWay,
		OrderStatusDelivered,
	}

	for i, from := range steps {
		for j, to := range steps {
			got := from.CanTransitionTo(to)
			if j == i+1 {
				assert.True(t, got, "%s -> %s should be allowed", from, to)
			} else {
				assert.False(t, got, "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestOrderStatus_DeliveredIsTerminal(t *testing.T) {
	assert.True(t, OrderStatusDelivered.Terminal())
	assert.False(t, OrderStatusOnTheWay.Terminal())

	for _, to := range []OrderStatus{
		OrderStatusReceived,
		OrderStatusPreparing,
		OrderStatusReadyForPickup,
		OrderStatusOnTheWay,
		OrderStatusDelivered,
	} {
		assert.False(t, OrderStatusDelivered.CanTransitionTo(to))
	}
}

func TestLineItem_Total(t *testing.T) {
	item := LineItem{
		Product:  Product{ID: "1", Name: "Pão de Mel Tradicional", Price: decimal.RequireFromString("8.50")},
		Quantity: 3,
	}

	assert.True(t, item.Total().Equal(decimal.RequireFromString("25.50")))
}

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()
	order := Order{
		ID:           "ORD-AB12CD34",
		CustomerID:   "user-42",
		CustomerName: "Ana Silva",
		Items: []LineItem{
			{Product: Product{ID: "1", Price: decimal.RequireFromString("8.50")}, Quantity: 2},
		},
		Total:         decimal.RequireFromString("22.00"),
		Status:        OrderStatusReceived,
		CreatedAt:     createdAt,
		Address:       "Rua das Flores, 123 - Centro",
		PaymentMethod: "PIX",
	}

	assert.Equal(t, "ORD-AB12CD34", order.ID)
	assert.Equal(t, OrderStatusReceived, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Empty(t, order.CourierName)
}
