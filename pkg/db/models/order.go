package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/enums"
)

// Order is a placed customer order. OrderNumber is a decimal-encoded integer
// assigned by the sequencer; TotalAmountCents is always recomputed from the
// item snapshots at creation time.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	OrderNumber      string            `gorm:"column:order_number;not null;uniqueIndex"`
	FirstName        string            `gorm:"column:first_name;not null"`
	Phone            string            `gorm:"column:phone;not null"`
	Address          string            `gorm:"column:address;not null"`
	Area             string            `gorm:"column:area;not null"`
	NearestLandmark  string            `gorm:"column:nearest_landmark"`
	Notes            string            `gorm:"column:notes"`
	Status           enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	TotalAmountCents int               `gorm:"column:total_amount_cents;not null"`
	Items            []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// ItemsTotalCents sums the line totals of the attached items.
func (o Order) ItemsTotalCents() int {
	total := 0
	for _, item := range o.Items {
		total += item.LineTotalCents()
	}
	return total
}
