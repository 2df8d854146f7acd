package remote

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"melmagia/internal/domain"
)

// Wire rows use the store's snake_case naming; the in-memory model uses
// Go naming. Mapping between the two lives here.

type productRow struct {
	ID          string
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    sql.NullString
	Rating      float64
	IsAvailable sql.NullBool
}

func (r productRow) toDomain() (domain.Product, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("parsing price for product %s: %w", r.ID, err)
	}

	// Absent availability means sellable.
	available := true
	if r.IsAvailable.Valid {
		available = r.IsAvailable.Bool
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		Category:    domain.Category(r.Category),
		ImageURL:    r.ImageURL.String,
		Rating:      r.Rating,
		IsAvailable: available,
	}, nil
}

type lineItemDoc struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"is_available"`
	Quantity    int     `json:"quantity"`
}

func marshalItems(items []domain.LineItem) ([]byte, error) {
	docs := make([]lineItemDoc, len(items))
	for i, item := range items {
		docs[i] = lineItemDoc{
			ProductID:   item.Product.ID,
			Name:        item.Product.Name,
			Description: item.Product.Description,
			Price:       item.Product.Price.StringFixed(2),
			Category:    string(item.Product.Category),
			ImageURL:    item.Product.ImageURL,
			Rating:      item.Product.Rating,
			IsAvailable: item.Product.IsAvailable,
			Quantity:    item.Quantity,
		}
	}
	return json.Marshal(docs)
}

func unmarshalItems(data []byte) ([]domain.LineItem, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var docs []lineItemDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing order items: %w", err)
	}

	items := make([]domain.LineItem, len(docs))
	for i, doc := range docs {
		price, err := decimal.NewFromString(doc.Price)
		if err != nil {
			return nil, fmt.Errorf("parsing item price for product %s: %w", doc.ProductID, err)
		}
		qty := doc.Quantity
		if qty < 1 {
			qty = 1
		}
		items[i] = domain.LineItem{
			Product: domain.Product{
				ID:          doc.ProductID,
				Name:        doc.Name,
				Description: doc.Description,
				Price:       price,
				Category:    domain.Category(doc.Category),
				ImageURL:    doc.ImageURL,
				Rating:      doc.Rating,
				IsAvailable: doc.IsAvailable,
			},
			Quantity: qty,
		}
	}
	return items, nil
}

type orderRow struct {
	ID            string
	CustomerID    string
	CustomerName  string
	Items         []byte
	Total         string
	Status        string
	CreatedAt     time.Time
	Address       string
	PaymentMethod string
	CourierName   sql.NullString
}

func (r orderRow) toDomain() (domain.Order, error) {
	total, err := decimal.NewFromString(r.Total)
	if err != nil {
		return domain.Order{}, fmt.Errorf("parsing total for order %s: %w", r.ID, err)
	}

	items, err := unmarshalItems(r.Items)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		CustomerName:  r.CustomerName,
		Items:         items,
		Total:         total,
		Status:        domain.OrderStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		Address:       r.Address,
		PaymentMethod: r.PaymentMethod,
		CourierName:   r.CourierName.String,
	}, nil
}
