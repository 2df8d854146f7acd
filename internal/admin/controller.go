// Package admin is the manager surface: login, order pipeline control,
// and catalog editing.
package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"melmagia/internal/api"
	"melmagia/internal/domain"
	apperrors "melmagia/internal/errors"
	"melmagia/internal/session"
	"melmagia/internal/store"
)

type Describer interface {
	Describe(ctx context.Context, productName, ingredients string) string
}

type Controller struct {
	store     *store.Store
	session   *session.Session
	describer Describer
	logger    *zap.Logger
}

func NewController(st *store.Store, sess *session.Session, describer Describer, logger *zap.Logger) *Controller {
	return &Controller{
		store:     st,
		session:   sess,
		describer: describer,
		logger:    logger,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// HandleLogin opens the admin gate. This is the demo's static-secret
// comparison, not an access-control boundary.
func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	if err := c.session.Login(req.Password); err != nil {
		c.logger.Warn("admin login rejected", zap.String("traceId", traceID))
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	c.logger.Info("admin authenticated", zap.String("traceId", traceID))
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]bool{"authenticated": true})
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"orders": api.NewOrderViews(c.store.Orders()),
	})
}

type advanceRequest struct {
	Status string `json:"status"`
}

// HandleAdvanceOrder moves an order to the requested status. The store
// only accepts the immediate next lifecycle step, and the admin surface
// only owns the kitchen-side transitions; the courier surface carries
// orders from READY_FOR_PICKUP onward.
func (c *Controller) HandleAdvanceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderID")

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	status := domain.OrderStatus(req.Status)
	if status != domain.OrderStatusPreparing && status != domain.OrderStatusReadyForPickup {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("status not available from the admin surface", apperrors.ValidationDetail{
			Field:   "status",
			Message: "admins may only move orders to PREPARING or READY_FOR_PICKUP",
		}))
		return
	}

	order, synced, err := c.store.AdvanceOrder(r.Context(), orderID, status, "")
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"order":  api.NewOrderView(order),
		"synced": synced,
	})
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	IsAvailable bool    `json:"isAvailable"`
}

func (req productRequest) toDomain(id string) (domain.Product, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return domain.Product{}, apperrors.NewValidationError("invalid price", apperrors.ValidationDetail{
			Field:   "price",
			Message: "price must be a decimal number",
		})
	}

	return domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    domain.Category(req.Category),
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		IsAvailable: req.IsAvailable,
	}, nil
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	productID := chi.URLParam(r, "productID")

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	product, err := req.toDomain(productID)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	synced, err := c.store.UpdateProduct(r.Context(), product)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"product": api.NewProductView(product),
		"synced":  synced,
	})
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	product, err := req.toDomain("")
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	created, synced, err := c.store.AddProduct(r.Context(), product)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusCreated, map[string]interface{}{
		"product": api.NewProductView(created),
		"synced":  synced,
	})
}

type describeRequest struct {
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

func (c *Controller) HandleDescribeProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req describeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("name is required", apperrors.ValidationDetail{
			Field:   "name",
			Message: "name must not be empty",
		}))
		return
	}

	text := c.describer.Describe(r.Context(), req.Name, req.Ingredients)

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]string{
		"description": text,
	})
}
