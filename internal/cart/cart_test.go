package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"melmagia/internal/domain"
)

func product(id, price string) domain.Product {
	return domain.Product{
		ID:          id,
		Name:        "Product " + id,
		Price:       decimal.RequireFromString(price),
		Category:    domain.CategoryTradicional,
		IsAvailable: true,
	}
}

func TestCart_AddItem_NewProduct(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "1", items[0].Product.ID)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestCart_AddItem_ExistingProductIncrements(t *testing.T) {
	c := New()
	p := product("1", "8.50")
	c.AddItem(p)
	c.AddItem(p)
	c.AddItem(p)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestCart_NoDuplicateLineItems(t *testing.T) {
	c := New()
	p1 := product("1", "8.50")
	p2 := product("2", "10.90")

	c.AddItem(p1)
	c.AddItem(p2)
	c.AddItem(p1)
	c.UpdateQuantity("2", 3)
	c.AddItem(p2)

	seen := map[string]bool{}
	for _, item := range c.Items() {
		assert.False(t, seen[item.Product.ID], "duplicate line item for product %s", item.Product.ID)
		seen[item.Product.ID] = true
	}
	assert.Equal(t, 2, c.Len())
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))
	c.AddItem(product("2", "10.90"))

	c.RemoveItem("1")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].Product.ID)
}

func TestCart_RemoveItem_AbsentIsNoOp(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))

	c.RemoveItem("99")

	assert.Equal(t, 1, c.Len())
}

func TestCart_UpdateQuantity_ClampsToOne(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))
	c.UpdateQuantity("1", 4)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)

	c.UpdateQuantity("1", -10)

	items = c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity, "quantity must never drop below 1 via delta updates")
}

func TestCart_UpdateQuantity_AbsentIsNoOp(t *testing.T) {
	c := New()
	c.UpdateQuantity("1", 5)
	assert.Equal(t, 0, c.Len())
}

func TestCart_QuantityNeverBelowOne_RandomishSequence(t *testing.T) {
	c := New()
	p := product("1", "8.50")

	ops := []func(){
		func() { c.AddItem(p) },
		func() { c.UpdateQuantity("1", -1) },
		func() { c.UpdateQuantity("1", -3) },
		func() { c.AddItem(p) },
		func() { c.UpdateQuantity("1", 2) },
		func() { c.UpdateQuantity("1", -100) },
	}
	for _, op := range ops {
		op()
		for _, item := range c.Items() {
			assert.GreaterOrEqual(t, item.Quantity, 1)
		}
	}
}

func TestCart_Clear(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))
	c.AddItem(product("2", "10.90"))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.True(t, c.Subtotal().IsZero())
}

func TestCart_Subtotal(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))
	c.AddItem(product("1", "8.50"))
	c.AddItem(product("2", "10.90"))

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("27.90")),
		"got %s", c.Subtotal())
}

func TestCart_ItemsReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(product("1", "8.50"))

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
