package domain

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryTradicional Category = "Tradicional"
	CategoryGourmet     Category = "Gourmet"
	CategoryVegano      Category = "Vegano"
	CategoryEspecial    Category = "Especial"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTradicional, CategoryGourmet, CategoryVegano, CategoryEspecial:
		return true
	}
	return false
}

type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	ImageURL    string
	Rating      float64
	IsAvailable bool
}
