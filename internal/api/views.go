package api

import (
	"time"

	"melmagia/internal/domain"
	"melmagia/internal/pricing"
)

// View types render decimals as fixed two-place strings and use the
// in-memory camelCase naming.

type ProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"isAvailable"`
}

func NewProductView(p domain.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Category:    string(p.Category),
		ImageURL:    p.ImageURL,
		Rating:      p.Rating,
		IsAvailable: p.IsAvailable,
	}
}

func NewProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views
}

type LineItemView struct {
	Product  ProductView `json:"product"`
	Quantity int         `json:"quantity"`
	Total    string      `json:"total"`
}

func NewLineItemViews(items []domain.LineItem) []LineItemView {
	views := make([]LineItemView, len(items))
	for i, item := range items {
		views[i] = LineItemView{
			Product:  NewProductView(item.Product),
			Quantity: item.Quantity,
			Total:    item.Total().StringFixed(2),
		}
	}
	return views
}

type QuoteView struct {
	Subtotal        string `json:"subtotal"`
	DiscountPercent int    `json:"discountPercent"`
	DiscountAmount  string `json:"discountAmount"`
	DeliveryFee     string `json:"deliveryFee"`
	Total           string `json:"total"`
}

func NewQuoteView(q pricing.Quote) QuoteView {
	return QuoteView{
		Subtotal:        q.Subtotal.StringFixed(2),
		DiscountPercent: q.DiscountPercent,
		DiscountAmount:  q.DiscountAmount.StringFixed(2),
		DeliveryFee:     q.DeliveryFee.StringFixed(2),
		Total:           q.Total.StringFixed(2),
	}
}

type OrderView struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customerId"`
	CustomerName  string         `json:"customerName"`
	Items         []LineItemView `json:"items"`
	Total         string         `json:"total"`
	Status        string         `json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	Address       string         `json:"address"`
	PaymentMethod string         `json:"paymentMethod"`
	CourierName   string         `json:"courierName,omitempty"`
}

func NewOrderView(o domain.Order) OrderView {
	return OrderView{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		Items:         NewLineItemViews(o.Items),
		Total:         o.Total.StringFixed(2),
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		CourierName:   o.CourierName,
	}
}

func NewOrderViews(orders []domain.Order) []OrderView {
	views := make([]OrderView, len(orders))
	for i, o := range orders {
		views[i] = NewOrderView(o)
	}
	return views
}
