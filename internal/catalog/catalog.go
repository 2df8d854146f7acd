// Package catalog holds the built-in demo data the app falls back to
// when the remote store is unconfigured, unreachable, or empty.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"melmagia/internal/domain"
)

func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Pão de Mel Tradicional",
			Description: "Massa fofinha com especiarias, recheio de doce de leite caseiro e cobertura de chocolate ao leite.",
			Price:       decimal.RequireFromString("8.50"),
			Category:    domain.CategoryTradicional,
			ImageURL:    "https://picsum.photos/400/400?random=1",
			Rating:      4.8,
			IsAvailable: true,
		},
		{
			ID:          "2",
			Name:        "Brigadeiro Belga",
			Description: "Recheio cremoso de brigadeiro feito com chocolate belga 70%.",
			Price:       decimal.RequireFromString("10.90"),
			Category:    domain.CategoryGourmet,
			ImageURL:    "https://picsum.photos/400/400?random=2",
			Rating:      4.9,
			IsAvailable: true,
		},
		{
			ID:          "3",
			Name:        "Beijinho de Coco",
			Description: "Recheio de coco fresco cremoso com cobertura de chocolate branco.",
			Price:       decimal.RequireFromString("9.50"),
			Category:    domain.CategoryTradicional,
			ImageURL:    "https://picsum.photos/400/400?random=3",
			Rating:      4.6,
			IsAvailable: true,
		},
		{
			ID:          "4",
			Name:        "Pão de Mel Vegano",
			Description: "Sem mel e sem leite. Adoçado com melado de cana e recheio de ganache de biomassa.",
			Price:       decimal.RequireFromString("12.00"),
			Category:    domain.CategoryVegano,
			ImageURL:    "https://picsum.photos/400/400?random=4",
			Rating:      4.5,
			IsAvailable: true,
		},
		{
			ID:          "5",
			Name:        "Pistache Supremo",
			Description: "Recheio abundante de creme de pistache e pedaços de pistache na cobertura.",
			Price:       decimal.RequireFromString("14.50"),
			Category:    domain.CategoryGourmet,
			ImageURL:    "https://picsum.photos/400/400?random=5",
			Rating:      5.0,
			IsAvailable: true,
		},
		{
			ID:          "6",
			Name:        "Box Degustação",
			Description: "Caixa com 4 mini pães de mel (Doce de leite, Brigadeiro, Ninho, Geleia de Morango).",
			Price:       decimal.RequireFromString("32.00"),
			Category:    domain.CategoryEspecial,
			ImageURL:    "https://picsum.photos/400/400?random=6",
			Rating:      4.9,
			IsAvailable: true,
		},
	}
}

func SeedOrders() []domain.Order {
	products := SeedProducts()

	return []domain.Order{
		{
			ID:           "ORD-001",
			CustomerID:   "user1",
			CustomerName: "Ana Silva",
			Items: []domain.LineItem{
				{Product: products[0], Quantity: 2},
				{Product: products[1], Quantity: 1},
			},
			Total:         decimal.RequireFromString("27.90"),
			Status:        domain.OrderStatusDelivered,
			CreatedAt:     time.Now().Add(-24 * time.Hour),
			Address:       "Rua das Flores, 123 - Centro",
			PaymentMethod: "PIX",
		},
		{
			ID:           "ORD-002",
			CustomerID:   "user2",
			CustomerName: "Carlos Oliveira",
			Items: []domain.LineItem{
				{Product: products[4], Quantity: 4},
			},
			Total:         decimal.RequireFromString("58.00"),
			Status:        domain.OrderStatusPreparing,
			CreatedAt:     time.Now(),
			Address:       "Av. Paulista, 1000 - Apt 402",
			PaymentMethod: "Credit Card",
		},
		{
			ID:           "ORD-003",
			CustomerID:   "user3",
			CustomerName: "Mariana Costa",
			Items: []domain.LineItem{
				{Product: products[5], Quantity: 1},
			},
			Total:         decimal.RequireFromString("32.00"),
			Status:        domain.OrderStatusReadyForPickup,
			CreatedAt:     time.Now(),
			Address:       "Rua Augusta, 500",
			PaymentMethod: "Cash",
		},
	}
}

func SeedPromoCodes() []domain.PromoCode {
	return []domain.PromoCode{
		{Code: "BEMVINDO10", DiscountPercent: 10},
		{Code: "MEL15", DiscountPercent: 15},
	}
}
