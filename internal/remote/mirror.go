// Package remote mirrors local state to the row store. Writes are
// one-shot and optimistic: the caller has already applied the change
// locally, and a failed write here is reported but never retried or
// rolled back.
package remote

import (
	"context"
	"database/sql"
	"fmt"

	"melmagia/internal/domain"
)

type MySQLMirror struct {
	db *sql.DB
}

func NewMySQLMirror(db *sql.DB) *MySQLMirror {
	return &MySQLMirror{db: db}
}

func (m *MySQLMirror) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price, category, image_url, rating, is_available
		FROM products
	`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var row productRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Price,
			&row.Category, &row.ImageURL, &row.Rating, &row.IsAvailable,
		); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}

		product, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (m *MySQLMirror) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customer_id, customer_name, items, total, status,
		       created_at, address, payment_method, courier_name
		FROM orders
	`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(
			&row.ID, &row.CustomerID, &row.CustomerName, &row.Items, &row.Total,
			&row.Status, &row.CreatedAt, &row.Address, &row.PaymentMethod, &row.CourierName,
		); err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}

		order, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (m *MySQLMirror) InsertOrder(ctx context.Context, order domain.Order) error {
	items, err := marshalItems(order.Items)
	if err != nil {
		return fmt.Errorf("encoding order items: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_id, customer_name, items, total, status,
		                    created_at, address, payment_method, courier_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var courier sql.NullString
	if order.CourierName != "" {
		courier = sql.NullString{String: order.CourierName, Valid: true}
	}

	_, err = m.db.ExecContext(ctx, query,
		order.ID, order.CustomerID, order.CustomerName, items, order.Total.StringFixed(2),
		string(order.Status), order.CreatedAt, order.Address, order.PaymentMethod, courier,
	)
	if err != nil {
		return fmt.Errorf("inserting order %s: %w", order.ID, err)
	}

	return nil
}

func (m *MySQLMirror) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, courierName string) error {
	query := `UPDATE orders SET status = ?, courier_name = ? WHERE id = ?`

	var courier sql.NullString
	if courierName != "" {
		courier = sql.NullString{String: courierName, Valid: true}
	}

	if _, err := m.db.ExecContext(ctx, query, string(status), courier, orderID); err != nil {
		return fmt.Errorf("updating status of order %s: %w", orderID, err)
	}

	return nil
}

func (m *MySQLMirror) UpsertProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (id, name, description, price, category, image_url, rating, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name = VALUES(name), description = VALUES(description), price = VALUES(price),
			category = VALUES(category), image_url = VALUES(image_url),
			rating = VALUES(rating), is_available = VALUES(is_available)
	`

	_, err := m.db.ExecContext(ctx, query,
		product.ID, product.Name, product.Description, product.Price.StringFixed(2),
		string(product.Category), product.ImageURL, product.Rating, product.IsAvailable,
	)
	if err != nil {
		return fmt.Errorf("upserting product %s: %w", product.ID, err)
	}

	return nil
}
