package orders

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/db"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
	"github.com/threadline/storefront-backend/pkg/logger"
)

// Service exposes order lookup and the admin status workflow.
type Service interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (OrderDTO, error)
	UpdateStatus(ctx context.Context, orderNumber string, next enums.OrderStatus) (OrderDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	runner txRunner
	repo   Repository
	logg   *logger.Logger
}

// NewService builds the order service.
func NewService(client *db.Client, repo Repository, logg *logger.Logger) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	return &service{runner: client, repo: repo, logg: logg}, nil
}

func (s *service) GetByOrderNumber(ctx context.Context, orderNumber string) (OrderDTO, error) {
	if orderNumber == "" {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	order, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return OrderDTO{}, err
	}
	return NewOrderDTO(*order), nil
}

// UpdateStatus moves an order along the fulfillment lifecycle. The read and
// write share a transaction so concurrent updates cannot interleave between
// the transition check and the write.
func (s *service) UpdateStatus(ctx context.Context, orderNumber string, next enums.OrderStatus) (OrderDTO, error) {
	if orderNumber == "" {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "order number required")
	}
	if !next.IsValid() {
		return OrderDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}

	var dto OrderDTO
	err := s.runner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		order, err := repo.FindByOrderNumber(ctx, orderNumber)
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(next) {
			return pkgerrors.New(pkgerrors.CodeStateConflict,
				fmt.Sprintf("cannot move order from %s to %s", order.Status, next))
		}
		if err := repo.SetStatus(ctx, order.ID, next); err != nil {
			return err
		}

		order.Status = next
		dto = NewOrderDTO(*order)
		return nil
	})
	if err != nil {
		return OrderDTO{}, err
	}

	if s.logg != nil {
		logCtx := s.logg.WithOrderNumber(ctx, orderNumber)
		logCtx = s.logg.WithField(logCtx, "status", next.String())
		s.logg.Info(logCtx, "order status updated")
	}
	return dto, nil
}
