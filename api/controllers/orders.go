package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/threadline/storefront-backend/api/responses"
	orderssvc "github.com/threadline/storefront-backend/internal/orders"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
)

// OrderFetch returns an order by its public order number.
func OrderFetch(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable"))
			return
		}

		order, err := svc.GetByOrderNumber(r.Context(), chi.URLParam(r, "orderNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}
