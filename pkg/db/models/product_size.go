package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/enums"
)

// ProductSize tracks the stock counter for one size variant of a product.
// At most one row exists per (product, size) pair.
type ProductSize struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	ProductID  uuid.UUID         `gorm:"column:product_id;type:uuid;not null;uniqueIndex:idx_product_size"`
	Size       enums.ProductSize `gorm:"column:size;not null;uniqueIndex:idx_product_size"`
	StockCount int               `gorm:"column:stock_count;not null;default:0"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (s *ProductSize) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// InStock reports whether the variant has any units left.
func (s ProductSize) InStock() bool {
	return s.StockCount > 0
}
