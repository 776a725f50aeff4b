package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline/storefront-backend/api/responses"
	"github.com/threadline/storefront-backend/api/validators"
	orderssvc "github.com/threadline/storefront-backend/internal/orders"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
)

// UpdateOrderStatusRequest is the back-office status change payload.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// AdminOrderStatusUpdate moves an order along the fulfillment lifecycle.
func AdminOrderStatusUpdate(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		var payload UpdateOrderStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseOrderStatus(payload.Status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown order status"))
			return
		}

		order, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "orderNumber"), status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
