package domain

// PromoCode activates a percentage discount on the current cart. Codes
// live in a static table and are matched case-insensitively.
type PromoCode struct {
	Code            string
	DiscountPercent int
}
