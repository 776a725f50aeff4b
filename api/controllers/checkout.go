package controllers

import (
	"net/http"

	"github.com/threadline/storefront-backend/api/responses"
	"github.com/threadline/storefront-backend/api/validators"
	checkoutsvc "github.com/threadline/storefront-backend/internal/checkout"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
)

// CheckoutRequest carries the cash-on-delivery form. The client sends no
// total; the server recomputes it from the cart snapshots.
type CheckoutRequest struct {
	FirstName       string `json:"first_name" validate:"required,max=120"`
	Phone           string `json:"phone" validate:"required,max=32"`
	Address         string `json:"address" validate:"required,max=500"`
	Area            string `json:"area" validate:"required,max=120"`
	NearestLandmark string `json:"nearest_landmark" validate:"omitempty,max=500"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`

	// TotalAmount is accepted from older clients but never trusted; the
	// server recomputes the total from the cart snapshots.
	TotalAmount *int `json:"total_amount"`
}

// Checkout places an order from the visitor's cart.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID, err := sessionIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload CheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.PlaceOrder(r.Context(), sessionID, checkoutsvc.PlaceOrderInput{
			FirstName:       payload.FirstName,
			Phone:           payload.Phone,
			Address:         payload.Address,
			Area:            payload.Area,
			NearestLandmark: payload.NearestLandmark,
			Notes:           payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
