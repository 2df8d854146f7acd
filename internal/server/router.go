package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"melmagia/internal/admin"
	"melmagia/internal/api"
	"melmagia/internal/courier"
	apperrors "melmagia/internal/errors"
	"melmagia/internal/session"
	"melmagia/internal/storefront"
)

// NewRouter assembles the three role surfaces behind a shared session.
// The customer surface is always reachable; admin and courier routes
// require their role to be the active one, and admin routes additionally
// require the gate to be open.
func NewRouter(
	storefrontCtrl *storefront.Controller,
	adminCtrl *admin.Controller,
	courierCtrl *courier.Controller,
	sess *session.Session,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", storefrontCtrl.HandleListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", storefrontCtrl.HandleGetCart)
			r.Post("/items", storefrontCtrl.HandleAddCartItem)
			r.Delete("/items/{productID}", storefrontCtrl.HandleRemoveCartItem)
			r.Patch("/items/{productID}", storefrontCtrl.HandleChangeQuantity)
			r.Post("/promo", storefrontCtrl.HandleApplyPromo)
		})

		r.Post("/orders", storefrontCtrl.HandleCheckout)
		r.Get("/orders", storefrontCtrl.HandleListOrders)
		r.Post("/recommendations", storefrontCtrl.HandleRecommend)

		r.Get("/session", handleGetSession(sess, logger))
		r.Post("/session/role", handleSwitchRole(sess, logger))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", requireRole(sess, session.RoleAdmin, logger)(adminCtrl.HandleLogin))
			r.Group(func(r chi.Router) {
				r.Use(requireAdmin(sess, logger))
				r.Get("/orders", adminCtrl.HandleListOrders)
				r.Post("/orders/{orderID}/advance", adminCtrl.HandleAdvanceOrder)
				r.Post("/products", adminCtrl.HandleCreateProduct)
				r.Put("/products/{productID}", adminCtrl.HandleUpdateProduct)
				r.Post("/products/describe", adminCtrl.HandleDescribeProduct)
			})
		})

		r.Route("/courier", func(r chi.Router) {
			r.Use(requireActiveRole(sess, session.RoleCourier, logger))
			r.Get("/orders", courierCtrl.HandleListOrders)
			r.Post("/orders/{orderID}/accept", courierCtrl.HandleAcceptRoute)
			r.Post("/orders/{orderID}/deliver", courierCtrl.HandleConfirmDelivery)
		})
	})

	return r
}

func handleGetSession(sess *session.Session, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.WriteJSON(w, logger, http.StatusOK, map[string]interface{}{
			"role":               string(sess.Role()),
			"adminAuthenticated": sess.AdminAuthenticated(),
		})
	}
}

type switchRoleRequest struct {
	Role string `json:"role"`
}

func handleSwitchRole(sess *session.Session, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.New().String()

		var req switchRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			api.WriteError(w, logger, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
				Field:   "body",
				Message: "request body must be valid JSON",
			}))
			return
		}

		if err := sess.SwitchRole(session.Role(req.Role)); err != nil {
			api.WriteError(w, logger, traceID, err)
			return
		}

		logger.Info("role switched", zap.String("role", req.Role))
		api.WriteJSON(w, logger, http.StatusOK, map[string]interface{}{
			"role":               string(sess.Role()),
			"adminAuthenticated": sess.AdminAuthenticated(),
		})
	}
}

// requireRole wraps a single handler so it only runs while the given
// role surface is active.
func requireRole(sess *session.Session, role session.Role, logger *zap.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if sess.Role() != role {
				api.WriteJSON(w, logger, http.StatusForbidden, api.ErrorResponse{
					Error:   "FORBIDDEN",
					Message: "this surface is not active; switch roles first",
				})
				return
			}
			next(w, r)
		}
	}
}

func requireActiveRole(sess *session.Session, role session.Role, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess.Role() != role {
				api.WriteJSON(w, logger, http.StatusForbidden, api.ErrorResponse{
					Error:   "FORBIDDEN",
					Message: "this surface is not active; switch roles first",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireAdmin gates the management routes on the active admin surface
// plus an open admin gate.
func requireAdmin(sess *session.Session, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess.Role() != session.RoleAdmin {
				api.WriteJSON(w, logger, http.StatusForbidden, api.ErrorResponse{
					Error:   "FORBIDDEN",
					Message: "this surface is not active; switch roles first",
				})
				return
			}
			if !sess.AdminAuthenticated() {
				api.WriteJSON(w, logger, http.StatusUnauthorized, api.ErrorResponse{
					Error:   "UNAUTHORIZED",
					Message: "admin login required",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
