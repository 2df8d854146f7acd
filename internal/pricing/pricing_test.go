package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melmagia/internal/catalog"
	"melmagia/internal/domain"
	apperrors "melmagia/internal/errors"
)

var deliveryFee = decimal.RequireFromString("5.00")

func item(price string, qty int) domain.LineItem {
	return domain.LineItem{
		Product:  domain.Product{ID: price, Price: decimal.RequireFromString(price)},
		Quantity: qty,
	}
}

func TestCompute_NoDiscount(t *testing.T) {
	// 2 x 8.50 + 1 x 10.90 = 27.90; with 5.00 delivery = 32.90.
	items := []domain.LineItem{item("8.50", 2), item("10.90", 1)}

	q := Compute(items, 0, deliveryFee)

	assert.True(t, q.Subtotal.Equal(decimal.RequireFromString("27.90")), "subtotal %s", q.Subtotal)
	assert.True(t, q.DiscountAmount.IsZero())
	assert.True(t, q.Total.Equal(decimal.RequireFromString("32.90")), "total %s", q.Total)
}

func TestCompute_WithDiscount(t *testing.T) {
	// MEL15 on 100.00: discounted = 85.00, total = 90.00.
	items := []domain.LineItem{item("25.00", 4)}

	q := Compute(items, 15, deliveryFee)

	assert.True(t, q.Subtotal.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, q.DiscountAmount.Equal(decimal.RequireFromString("15.00")))
	assert.True(t, q.Subtotal.Sub(q.DiscountAmount).Equal(decimal.RequireFromString("85.00")))
	assert.True(t, q.Total.Equal(decimal.RequireFromString("90.00")), "total %s", q.Total)
}

func TestCompute_DiscountToTheCent(t *testing.T) {
	items := []domain.LineItem{item("9.50", 3)} // 28.50

	q := Compute(items, 10, deliveryFee)

	assert.True(t, q.DiscountAmount.Equal(decimal.RequireFromString("2.85")), "discount %s", q.DiscountAmount)
	assert.True(t, q.Total.Equal(decimal.RequireFromString("30.65")), "total %s", q.Total)
}

func TestCompute_EmptyCart(t *testing.T) {
	q := Compute(nil, 10, deliveryFee)

	assert.True(t, q.Subtotal.IsZero())
	assert.True(t, q.Total.Equal(deliveryFee))
}

func TestPromoTable_Resolve_CaseInsensitive(t *testing.T) {
	table := NewPromoTable(catalog.SeedPromoCodes())

	for _, entered := range []string{"MEL15", "mel15", "Mel15", " mel15 "} {
		percent, err := table.Resolve(entered)
		require.NoError(t, err, "code %q", entered)
		assert.Equal(t, 15, percent)
	}

	percent, err := table.Resolve("bemvindo10")
	require.NoError(t, err)
	assert.Equal(t, 10, percent)
}

func TestPromoTable_Resolve_UnknownCode(t *testing.T) {
	table := NewPromoTable(catalog.SeedPromoCodes())

	_, err := table.Resolve("NADA99")
	require.Error(t, err)

	ve, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)
}
