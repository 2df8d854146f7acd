package remote

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melmagia/internal/domain"
	"melmagia/internal/testutil"
)

// Integration tests; skipped when the test database is not reachable.

func testOrder(id string) domain.Order {
	return domain.Order{
		ID:           id,
		CustomerID:   "user-7",
		CustomerName: "Cliente Demo",
		Items: []domain.LineItem{
			{
				Product: domain.Product{
					ID:          "1",
					Name:        "Pão de Mel Tradicional",
					Price:       decimal.RequireFromString("8.50"),
					Category:    domain.CategoryTradicional,
					IsAvailable: true,
				},
				Quantity: 2,
			},
		},
		Total:         decimal.RequireFromString("22.00"),
		Status:        domain.OrderStatusReceived,
		CreatedAt:     time.Now().Truncate(time.Second),
		Address:       "Rua Augusta, 500",
		PaymentMethod: "PIX",
	}
}

func TestMirror_InsertAndFetchOrders(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	mirror := NewMySQLMirror(db)
	ctx := context.Background()

	require.NoError(t, mirror.InsertOrder(ctx, testOrder("ORD-TEST01")))

	orders, err := mirror.FetchOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got := orders[0]
	assert.Equal(t, "ORD-TEST01", got.ID)
	assert.Equal(t, "Cliente Demo", got.CustomerName)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("22.00")))
	assert.Equal(t, domain.OrderStatusReceived, got.Status)
	assert.Empty(t, got.CourierName)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "1", got.Items[0].Product.ID)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestMirror_UpdateOrderStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	mirror := NewMySQLMirror(db)
	ctx := context.Background()

	require.NoError(t, mirror.InsertOrder(ctx, testOrder("ORD-TEST02")))
	require.NoError(t, mirror.UpdateOrderStatus(ctx, "ORD-TEST02", domain.OrderStatusOnTheWay, "João Entregas"))

	orders, err := mirror.FetchOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.OrderStatusOnTheWay, orders[0].Status)
	assert.Equal(t, "João Entregas", orders[0].CourierName)
}

func TestMirror_UpsertProduct(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	mirror := NewMySQLMirror(db)
	ctx := context.Background()

	product := domain.Product{
		ID:          "9",
		Name:        "Ninho com Nutella",
		Description: "Recheio duplo",
		Price:       decimal.RequireFromString("13.00"),
		Category:    domain.CategoryGourmet,
		ImageURL:    "https://example.com/9.jpg",
		Rating:      4.7,
		IsAvailable: true,
	}
	require.NoError(t, mirror.UpsertProduct(ctx, product))

	product.Price = decimal.RequireFromString("13.50")
	product.IsAvailable = false
	require.NoError(t, mirror.UpsertProduct(ctx, product))

	products, err := mirror.FetchProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("13.50")))
	assert.False(t, products[0].IsAvailable)
}
