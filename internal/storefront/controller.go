// Package storefront is the customer surface: catalog, cart, promo
// codes, checkout, order history, and chef recommendations.
package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"melmagia/internal/api"
	"melmagia/internal/domain"
	apperrors "melmagia/internal/errors"
	"melmagia/internal/store"
)

type Recommender interface {
	Recommend(ctx context.Context, query string, products []domain.Product) string
}

type Controller struct {
	store       *store.Store
	recommender Recommender
	logger      *zap.Logger
}

func NewController(st *store.Store, recommender Recommender, logger *zap.Logger) *Controller {
	return &Controller{
		store:       st,
		recommender: recommender,
		logger:      logger,
	}
}

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"products": api.NewProductViews(c.store.Products()),
	})
}

type addItemRequest struct {
	ProductID string `json:"productId"`
}

func (c *Controller) HandleAddCartItem(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}
	if strings.TrimSpace(req.ProductID) == "" {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("productId is required", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId must not be empty",
		}))
		return
	}

	if err := c.store.AddToCart(req.ProductID); err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	c.writeCart(w)
}

func (c *Controller) HandleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	c.store.RemoveFromCart(chi.URLParam(r, "productID"))
	c.writeCart(w)
}

type changeQuantityRequest struct {
	Delta int `json:"delta"`
}

func (c *Controller) HandleChangeQuantity(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req changeQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	c.store.ChangeQuantity(chi.URLParam(r, "productID"), req.Delta)
	c.writeCart(w)
}

func (c *Controller) HandleGetCart(w http.ResponseWriter, r *http.Request) {
	c.writeCart(w)
}

type applyPromoRequest struct {
	Code string `json:"code"`
}

func (c *Controller) HandleApplyPromo(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req applyPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	percent, err := c.store.ApplyPromo(req.Code)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	items, quote := c.store.CartView()
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"discountPercent": percent,
		"items":           api.NewLineItemViews(items),
		"quote":           api.NewQuoteView(quote),
	})
}

type checkoutRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
}

func (c *Controller) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	order, synced, err := c.store.Checkout(r.Context(), req.Address, req.PaymentMethod)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	if !synced {
		logger.Warn("order saved locally only", zap.String("orderId", order.ID))
	}

	api.WriteJSON(w, c.logger, http.StatusCreated, map[string]interface{}{
		"order":  api.NewOrderView(order),
		"synced": synced,
	})
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"orders": api.NewOrderViews(c.store.CustomerOrders()),
	})
}

type recommendRequest struct {
	Query string `json:"query"`
}

func (c *Controller) HandleRecommend(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("query is required", apperrors.ValidationDetail{
			Field:   "query",
			Message: "query must not be empty",
		}))
		return
	}

	text := c.recommender.Recommend(r.Context(), req.Query, c.store.Products())

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]string{
		"recommendation": text,
	})
}

func (c *Controller) writeCart(w http.ResponseWriter) {
	items, quote := c.store.CartView()
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"items": api.NewLineItemViews(items),
		"quote": api.NewQuoteView(quote),
	})
}
