package checkout

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/internal/cart"
	"github.com/threadline/storefront-backend/internal/catalog"
	"github.com/threadline/storefront-backend/internal/orders"
	"github.com/threadline/storefront-backend/pkg/db"
	"github.com/threadline/storefront-backend/pkg/db/models"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
	"github.com/threadline/storefront-backend/pkg/metrics"
)

// PlaceOrderInput carries the delivery form. All fields are trimmed before
// validation; the order total is never taken from the client.
type PlaceOrderInput struct {
	FirstName       string
	Phone           string
	Address         string
	Area            string
	NearestLandmark string
	Notes           string
}

// Service turns a session cart into a committed order.
type Service interface {
	PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (orders.OrderDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	runner    txRunner
	carts     cart.Store
	catalog   catalog.Repository
	orders    orders.Repository
	sequencer orders.Sequencer
	reserver  Reserver
	metrics   *metrics.CheckoutMetrics
	logg      *logger.Logger
}

// NewService builds the checkout service.
func NewService(
	client *db.Client,
	carts cart.Store,
	catalogRepo catalog.Repository,
	orderRepo orders.Repository,
	sequencer orders.Sequencer,
	reserver Reserver,
	checkoutMetrics *metrics.CheckoutMetrics,
	logg *logger.Logger,
) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if orderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if sequencer == nil {
		return nil, fmt.Errorf("sequencer required")
	}
	if reserver == nil {
		return nil, fmt.Errorf("reserver required")
	}
	return &service{
		runner:    client,
		carts:     carts,
		catalog:   catalogRepo,
		orders:    orderRepo,
		sequencer: sequencer,
		reserver:  reserver,
		metrics:   checkoutMetrics,
		logg:      logg,
	}, nil
}

// PlaceOrder validates the delivery form, reserves stock for every sized
// line, and writes the order inside one transaction. Any failed reservation
// rolls back the whole attempt; the cart is only cleared once the order has
// committed, so a failed checkout leaves it untouched.
func (s *service) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (orders.OrderDTO, error) {
	input = input.trimmed()
	if err := input.validate(); err != nil {
		s.metrics.IncFailure("validation")
		return orders.OrderDTO{}, err
	}

	current, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		s.metrics.IncFailure("cart_read")
		return orders.OrderDTO{}, err
	}
	if current.Empty() {
		s.metrics.IncFailure("empty_cart")
		return orders.OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	var created models.Order
	err = s.runner.WithTx(ctx, func(tx *gorm.DB) error {
		number, err := s.sequencer.Next(ctx, tx)
		if err != nil {
			return err
		}

		catalogTx := s.catalog.WithTx(tx)
		items := make([]models.OrderItem, 0, len(current.Items))
		for _, line := range current.Items {
			if line.Size != nil {
				if err := s.reserver.Reserve(ctx, tx, line.ProductID, *line.Size, line.Qty); err != nil {
					return err
				}
			} else {
				if _, err := catalogTx.FindByID(ctx, line.ProductID); err != nil {
					return err
				}
			}
			items = append(items, models.OrderItem{
				ProductID:      line.ProductID,
				Name:           line.Name,
				Size:           line.Size,
				Quantity:       line.Qty,
				UnitPriceCents: line.UnitPriceCents,
			})
		}

		order := models.Order{
			OrderNumber:     number,
			FirstName:       input.FirstName,
			Phone:           input.Phone,
			Address:         input.Address,
			Area:            input.Area,
			NearestLandmark: input.NearestLandmark,
			Notes:           input.Notes,
			Status:          enums.OrderStatusPending,
			Items:           items,
		}
		order.TotalAmountCents = order.ItemsTotalCents()

		if err := s.orders.WithTx(tx).Create(ctx, &order); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		if db.IsLockContention(err) {
			err = pkgerrors.Wrap(pkgerrors.CodeConcurrency, err, "checkout lost a stock race")
		}
		s.metrics.IncFailure(failureReason(err))
		return orders.OrderDTO{}, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithOrderNumber(ctx, created.OrderNumber),
			"clearing cart after checkout", err)
	}

	s.metrics.IncPlaced()
	if s.logg != nil {
		logCtx := s.logg.WithOrderNumber(ctx, created.OrderNumber)
		logCtx = s.logg.WithField(logCtx, "total_cents", created.TotalAmountCents)
		s.logg.Info(logCtx, "order placed")
	}
	return orders.NewOrderDTO(created), nil
}

func (in PlaceOrderInput) trimmed() PlaceOrderInput {
	return PlaceOrderInput{
		FirstName:       strings.TrimSpace(in.FirstName),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         strings.TrimSpace(in.Address),
		Area:            strings.TrimSpace(in.Area),
		NearestLandmark: strings.TrimSpace(in.NearestLandmark),
		Notes:           strings.TrimSpace(in.Notes),
	}
}

func (in PlaceOrderInput) validate() error {
	missing := make([]string, 0, 4)
	if in.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if in.Phone == "" {
		missing = append(missing, "phone")
	}
	if in.Address == "" {
		missing = append(missing, "address")
	}
	if in.Area == "" {
		missing = append(missing, "area")
	}
	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "missing required fields").
			WithDetails(map[string]any{"fields": missing})
	}
	return nil
}

func failureReason(err error) string {
	typed := pkgerrors.As(err)
	if typed == nil {
		return "internal"
	}
	switch typed.Code() {
	case pkgerrors.CodeInsufficientStock:
		return "insufficient_stock"
	case pkgerrors.CodeNotFound:
		return "not_found"
	case pkgerrors.CodeConcurrency:
		return "concurrency"
	case pkgerrors.CodeValidation:
		return "validation"
	default:
		return "internal"
	}
}
