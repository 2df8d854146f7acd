// Package store owns the application state: the product catalog, the
// order collection, and the active cart. All mutation goes through its
// command methods; reads hand out copies. Mutations are applied locally
// first and mirrored to the remote store optimistically, with no retry
// and no rollback on a failed mirror write.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"melmagia/internal/cart"
	"melmagia/internal/domain"
	apperrors "melmagia/internal/errors"
	"melmagia/internal/pricing"
)

// Mirror is the remote row store. A nil Mirror disables mirroring
// entirely and the store runs off local state alone.
type Mirror interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	InsertOrder(ctx context.Context, order domain.Order) error
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, courierName string) error
	UpsertProduct(ctx context.Context, product domain.Product) error
}

const (
	demoCustomerID   = "current-user"
	demoCustomerName = "Cliente Demo"
)

type Store struct {
	mu sync.Mutex

	products        []domain.Product
	orders          []domain.Order
	cart            *cart.Cart
	discountPercent int

	promos      *pricing.PromoTable
	deliveryFee decimal.Decimal
	mirror      Mirror
	logger      *zap.Logger
}

func New(products []domain.Product, orders []domain.Order, promos *pricing.PromoTable, deliveryFee decimal.Decimal, mirror Mirror, logger *zap.Logger) *Store {
	return &Store{
		products:    products,
		orders:      orders,
		cart:        cart.New(),
		promos:      promos,
		deliveryFee: deliveryFee,
		mirror:      mirror,
		logger:      logger,
	}
}

// Hydrate overwrites the seed data with a fresh remote read. Remote
// rows replace local state wholesale; they are never merged. Any
// failure or empty result leaves the seed in place.
func (s *Store) Hydrate(ctx context.Context) {
	if s.mirror == nil {
		s.logger.Info("remote store not configured, using built-in data")
		return
	}

	products, err := s.mirror.FetchProducts(ctx)
	if err != nil {
		s.logger.Warn("fetching remote products failed, keeping built-in catalog", zap.Error(err))
	}

	orders, err := s.mirror.FetchOrders(ctx)
	if err != nil {
		s.logger.Warn("fetching remote orders failed, keeping built-in orders", zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(products) > 0 {
		s.products = products
		s.logger.Info("catalog hydrated from remote store", zap.Int("products", len(products)))
	}
	if len(orders) > 0 {
		s.orders = orders
		s.logger.Info("orders hydrated from remote store", zap.Int("orders", len(orders)))
	}
}

func (s *Store) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) Orders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyOrders(s.orders)
}

// OrdersByStatus returns orders currently in any of the given statuses.
func (s *Store) OrdersByStatus(statuses ...domain.OrderStatus) []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Order
	for _, order := range s.orders {
		for _, status := range statuses {
			if order.Status == status {
				matched = append(matched, copyOrder(order))
				break
			}
		}
	}
	return matched
}

// CustomerOrders returns the demo customer's order history.
func (s *Store) CustomerOrders() []domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.Order
	for _, order := range s.orders {
		if order.CustomerID == demoCustomerID || strings.HasPrefix(order.CustomerID, "user") {
			matched = append(matched, copyOrder(order))
		}
	}
	return matched
}

func (s *Store) AddToCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, product := range s.products {
		if product.ID == productID {
			s.cart.AddItem(product)
			return nil
		}
	}
	return apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", productID))
}

func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

func (s *Store) ChangeQuantity(productID string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.UpdateQuantity(productID, delta)
}

// CartView returns the current line items and their priced quote.
func (s *Store) CartView() ([]domain.LineItem, pricing.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.cart.Items()
	return items, pricing.Compute(items, s.discountPercent, s.deliveryFee)
}

// ApplyPromo resolves the entered code and, on a match, replaces the
// active discount. Only one discount is active at a time. An unknown
// code leaves the current discount untouched.
func (s *Store) ApplyPromo(code string) (int, error) {
	percent, err := s.promos.Resolve(code)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.discountPercent = percent
	return percent, nil
}

// Checkout freezes the cart into a new RECEIVED order, appends it
// locally, clears the cart and the active discount, and mirrors the
// order remotely. The returned synced flag is false when the mirror
// write failed; the local order stands regardless.
func (s *Store) Checkout(ctx context.Context, address, paymentMethod string) (domain.Order, bool, error) {
	if strings.TrimSpace(address) == "" {
		return domain.Order{}, false, apperrors.NewValidationError("address is required", apperrors.ValidationDetail{
			Field:   "address",
			Message: "delivery address must not be empty",
		})
	}
	if strings.TrimSpace(paymentMethod) == "" {
		return domain.Order{}, false, apperrors.NewValidationError("payment method is required", apperrors.ValidationDetail{
			Field:   "paymentMethod",
			Message: "payment method must not be empty",
		})
	}

	s.mu.Lock()
	items := s.cart.Items()
	if len(items) == 0 {
		s.mu.Unlock()
		return domain.Order{}, false, apperrors.NewValidationError("cart is empty", apperrors.ValidationDetail{
			Field:   "cart",
			Message: "add at least one item before checking out",
		})
	}

	quote := pricing.Compute(items, s.discountPercent, s.deliveryFee)
	order := domain.Order{
		ID:            newOrderID(),
		CustomerID:    demoCustomerID,
		CustomerName:  demoCustomerName,
		Items:         items,
		Total:         quote.Total,
		Status:        domain.OrderStatusReceived,
		CreatedAt:     time.Now(),
		Address:       address,
		PaymentMethod: paymentMethod,
	}

	s.orders = append(s.orders, order)
	s.cart.Clear()
	s.discountPercent = 0
	s.mu.Unlock()

	s.logger.Info("order placed",
		zap.String("orderId", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.Total.StringFixed(2)),
	)

	synced := s.mirrorWrite(func() error { return s.mirror.InsertOrder(ctx, order) },
		"mirroring new order failed", order.ID)

	return copyOrder(order), synced, nil
}

// AdvanceOrder moves an order one step forward in its lifecycle. Any
// transition that is not the immediate next step is rejected; DELIVERED
// orders admit no further transition. Entering ON_THE_WAY records the
// courier's name.
func (s *Store) AdvanceOrder(ctx context.Context, orderID string, next domain.OrderStatus, courierName string) (domain.Order, bool, error) {
	if !next.Valid() {
		return domain.Order{}, false, apperrors.NewValidationError(fmt.Sprintf("unknown order status %q", next), apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is not part of the order lifecycle",
		})
	}

	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return domain.Order{}, false, apperrors.NewNotFoundError(fmt.Sprintf("order %s not found", orderID))
	}

	current := s.orders[idx].Status
	if !current.CanTransitionTo(next) {
		s.mu.Unlock()
		return domain.Order{}, false, apperrors.NewConflictError(
			fmt.Sprintf("order %s cannot move from %s to %s", orderID, current, next))
	}

	s.orders[idx].Status = next
	if next == domain.OrderStatusOnTheWay && courierName != "" {
		s.orders[idx].CourierName = courierName
	}
	order := copyOrder(s.orders[idx])
	s.mu.Unlock()

	s.logger.Info("order status advanced",
		zap.String("orderId", order.ID),
		zap.String("from", string(current)),
		zap.String("to", string(next)),
	)

	synced := s.mirrorWrite(func() error {
		return s.mirror.UpdateOrderStatus(ctx, order.ID, order.Status, order.CourierName)
	}, "mirroring status update failed", order.ID)

	return order, synced, nil
}

// UpdateProduct replaces an existing catalog entry.
func (s *Store) UpdateProduct(ctx context.Context, product domain.Product) (bool, error) {
	if err := validateProduct(product); err != nil {
		return false, err
	}

	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == product.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return false, apperrors.NewNotFoundError(fmt.Sprintf("product %s not found", product.ID))
	}
	s.products[idx] = product
	s.mu.Unlock()

	s.logger.Info("product updated", zap.String("productId", product.ID))

	synced := s.mirrorWrite(func() error { return s.mirror.UpsertProduct(ctx, product) },
		"mirroring product update failed", product.ID)

	return synced, nil
}

// AddProduct inserts a new catalog entry, generating an id when the
// caller supplies none.
func (s *Store) AddProduct(ctx context.Context, product domain.Product) (domain.Product, bool, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := validateProduct(product); err != nil {
		return domain.Product{}, false, err
	}

	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.mu.Unlock()
			return domain.Product{}, false, apperrors.NewConflictError(fmt.Sprintf("product %s already exists", product.ID))
		}
	}
	s.products = append(s.products, product)
	s.mu.Unlock()

	s.logger.Info("product added", zap.String("productId", product.ID), zap.String("name", product.Name))

	synced := s.mirrorWrite(func() error { return s.mirror.UpsertProduct(ctx, product) },
		"mirroring new product failed", product.ID)

	return product, synced, nil
}

// mirrorWrite performs one optimistic remote write. Failures are logged
// and reported to the caller; the local mutation is never undone.
func (s *Store) mirrorWrite(write func() error, failMsg, id string) bool {
	if s.mirror == nil {
		return true
	}
	if err := write(); err != nil {
		s.logger.Warn(failMsg, zap.String("id", id), zap.Error(err))
		return false
	}
	return true
}

func validateProduct(product domain.Product) error {
	var details []apperrors.ValidationDetail
	if strings.TrimSpace(product.Name) == "" {
		details = append(details, apperrors.ValidationDetail{Field: "name", Message: "name must not be empty"})
	}
	if product.Price.IsNegative() {
		details = append(details, apperrors.ValidationDetail{Field: "price", Message: "price must not be negative"})
	}
	if !product.Category.Valid() {
		details = append(details, apperrors.ValidationDetail{Field: "category", Message: "unknown category"})
	}
	if product.Rating < 0 || product.Rating > 5 {
		details = append(details, apperrors.ValidationDetail{Field: "rating", Message: "rating must be between 0 and 5"})
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid product", details...)
	}
	return nil
}

func newOrderID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(id[:8])
}

func copyOrder(order domain.Order) domain.Order {
	items := make([]domain.LineItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}

func copyOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, order := range orders {
		out[i] = copyOrder(order)
	}
	return out
}
