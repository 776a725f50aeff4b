package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/enums"
)

// Product represents a storefront listing. Stock is tracked per size variant,
// not on the product itself.
type Product struct {
	ID                  uuid.UUID            `gorm:"column:id;type:uuid;primaryKey"`
	Name                string               `gorm:"column:name;not null"`
	PriceCents          int                  `gorm:"column:price_cents;not null"`
	CompareAtPriceCents *int                 `gorm:"column:compare_at_price_cents"`
	Classification      enums.Classification `gorm:"column:classification;not null"`
	BestSeller          bool                 `gorm:"column:best_seller;not null;default:false"`
	ImageURL            *string              `gorm:"column:image_url"`
	Sizes               []ProductSize        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
