package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/enums"
)

// OrderItem snapshots one cart line at order time. UnitPriceCents is the
// price captured when the line entered the cart, not a live reference to the
// product.
type OrderItem struct {
	ID             uuid.UUID          `gorm:"column:id;type:uuid;primaryKey"`
	OrderID        uuid.UUID          `gorm:"column:order_id;type:uuid;not null"`
	ProductID      uuid.UUID          `gorm:"column:product_id;type:uuid;not null"`
	Name           string             `gorm:"column:name;not null"`
	Size           *enums.ProductSize `gorm:"column:size"`
	Quantity       int                `gorm:"column:quantity;not null"`
	UnitPriceCents int                `gorm:"column:unit_price_cents;not null"`
	CreatedAt      time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// LineTotalCents returns quantity times the captured unit price.
func (i OrderItem) LineTotalCents() int {
	return i.Quantity * i.UnitPriceCents
}
