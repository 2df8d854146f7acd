// Package pricing computes cart totals and resolves promo codes.
package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"melmagia/internal/domain"
	apperrors "melmagia/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Quote is the fully priced view of a cart at one instant.
type Quote struct {
	Subtotal        decimal.Decimal
	DiscountPercent int
	DiscountAmount  decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
}

// Compute prices the given line items: subtotal, percentage discount,
// then the flat delivery fee on top of the discounted subtotal. It is a
// pure function; callers snapshot the result at checkout.
func Compute(items []domain.LineItem, discountPercent int, deliveryFee decimal.Decimal) Quote {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Total())
	}

	discount := subtotal.Mul(decimal.NewFromInt(int64(discountPercent))).Div(hundred)
	total := subtotal.Sub(discount).Add(deliveryFee)

	return Quote{
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discount,
		DeliveryFee:     deliveryFee,
		Total:           total,
	}
}

// PromoTable resolves user-entered promo codes against a static list.
type PromoTable struct {
	codes []domain.PromoCode
}

func NewPromoTable(codes []domain.PromoCode) *PromoTable {
	return &PromoTable{codes: codes}
}

// Resolve matches the entered code case-insensitively (uppercased before
// comparison) and returns its discount percent. Unknown codes yield a
// validation error and leave any active discount for the caller to keep.
func (t *PromoTable) Resolve(code string) (int, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	for _, promo := range t.codes {
		if promo.Code == normalized {
			return promo.DiscountPercent, nil
		}
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("promo code %q is not valid", code), apperrors.ValidationDetail{
		Field:   "code",
		Message: "unknown promo code",
	})
}
