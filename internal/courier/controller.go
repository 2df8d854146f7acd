// Package courier is the delivery surface: available routes, route
// acceptance, and delivery confirmation.
package courier

import (
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

const defaultCourierName = "Entregador Parceiro"

type Controller struct {
	store  *store.Store
	logger *zap.Logger
}

func NewController(st *store.Store, logger *zap.Logger) *Controller {
	return &Controller{store: st, logger: logger}
}

// HandleListOrders shows orders a courier can act on: ready for pickup
// and already on the way.
func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders := c.store.OrdersByStatus(domain.OrderStatusReadyForPickup, domain.OrderStatusOnTheWay)
	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"orders": api.NewOrderViews(orders),
	})
}

type acceptRequest struct {
	CourierName string `json:"courierName"`
}

// HandleAcceptRoute moves a READY_FOR_PICKUP order to ON_THE_WAY and
// records who is carrying it.
func (c *Controller) HandleAcceptRoute(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderID")

	var req acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteError(w, c.logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}))
		return
	}

	name := strings.TrimSpace(req.CourierName)
	if name == "" {
		name = defaultCourierName
	}

	order, synced, err := c.store.AdvanceOrder(r.Context(), orderID, domain.OrderStatusOnTheWay, name)
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"order":  api.NewOrderView(order),
		"synced": synced,
	})
}

// HandleConfirmDelivery moves an ON_THE_WAY order to its terminal
// DELIVERED state.
func (c *Controller) HandleConfirmDelivery(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	orderID := chi.URLParam(r, "orderID")

	order, synced, err := c.store.AdvanceOrder(r.Context(), orderID, domain.OrderStatusDelivered, "")
	if err != nil {
		api.WriteError(w, c.logger, traceID, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, map[string]interface{}{
		"order":  api.NewOrderView(order),
		"synced": synced,
	})
}
