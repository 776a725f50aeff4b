package checkout

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/db/models"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
)

// Reserver decrements variant stock inside the checkout transaction.
type Reserver interface {
	Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size enums.ProductSize, qty int) error
}

type reserver struct{}

// NewReserver builds the stock reserver.
func NewReserver() Reserver {
	return &reserver{}
}

// Reserve takes qty units from the (product, size) variant. The decrement is
// guarded by the current stock level, so two competing checkouts can never
// take the same unit: the losing transaction sees zero rows affected and the
// remaining stock decides whether that means sold out or a missing variant.
func (r *reserver) Reserve(ctx context.Context, tx *gorm.DB, productID uuid.UUID, size enums.ProductSize, qty int) error {
	if qty < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation quantity must be positive")
	}

	result := tx.WithContext(ctx).
		Model(&models.ProductSize{}).
		Where("product_id = ? AND size = ? AND stock_count >= ?", productID, size, qty).
		Update("stock_count", gorm.Expr("stock_count - ?", qty))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var variant models.ProductSize
	err := tx.WithContext(ctx).
		Where("product_id = ? AND size = ?", productID, size).
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "size not available for this product")
		}
		return err
	}

	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "not enough stock for this size").
		WithDetails(map[string]any{
			"product_id": productID,
			"size":       size.String(),
			"requested":  qty,
			"remaining":  variant.StockCount,
		})
}
