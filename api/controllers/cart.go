package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/threadline/storefront-backend/api/middleware"
	"github.com/threadline/storefront-backend/api/responses"
	"github.com/threadline/storefront-backend/api/validators"
	cartsvc "github.com/threadline/storefront-backend/internal/cart"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
)

// AddToCartRequest is the add-to-cart payload. Size is omitted for products
// sold without size variants; Qty defaults to 1.
type AddToCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      *string   `json:"size"`
	Qty       int       `json:"qty" validate:"omitempty,min=1"`
}

// RemoveFromCartRequest identifies the cart line to decrement.
type RemoveFromCartRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Size      *string   `json:"size"`
}

// CartResponse wraps the cart with its server-computed total.
type CartResponse struct {
	Items      []cartsvc.Line `json:"items"`
	TotalCents int            `json:"total_cents"`
}

func newCartResponse(c cartsvc.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []cartsvc.Line{}
	}
	return CartResponse{Items: items, TotalCents: c.TotalCents()}
}

// CartFetch returns the visitor's current cart.
func CartFetch(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		current, err := svc.Get(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(current))
	}
}

// CartAdd merges a product line into the visitor's cart.
func CartAdd(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload AddToCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		size, err := parseOptionalSize(payload.Size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Add(r.Context(), sessionID, cartsvc.AddInput{
			ProductID: payload.ProductID,
			Size:      size,
			Qty:       payload.Qty,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(updated))
	}
}

// CartRemove decrements the matching cart line by one.
func CartRemove(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		sessionID, err := sessionIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload RemoveFromCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		size, err := parseOptionalSize(payload.Size)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Remove(r.Context(), sessionID, cartsvc.RemoveInput{
			ProductID: payload.ProductID,
			Size:      size,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartResponse(updated))
	}
}

func sessionIDFromRequest(r *http.Request) (string, error) {
	sessionID := middleware.SessionIDFromContext(r.Context())
	if sessionID == "" {
		return "", pkgerrors.New(pkgerrors.CodeInternal, "session context missing")
	}
	return sessionID, nil
}

func parseOptionalSize(raw *string) (*enums.ProductSize, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	size, err := enums.ParseProductSize(*raw)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown size")
	}
	return &size, nil
}
