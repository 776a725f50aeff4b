package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/threadline/storefront-backend/pkg/db/models"
)

// OrderDTO is the customer-facing order shape. Orders are addressed by their
// order number; internal ids never leave the API.
type OrderDTO struct {
	OrderNumber      string         `json:"order_number"`
	FirstName        string         `json:"first_name"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	Area             string         `json:"area"`
	NearestLandmark  string         `json:"nearest_landmark,omitempty"`
	Notes            string         `json:"notes,omitempty"`
	Status           string         `json:"status"`
	TotalAmountCents int            `json:"total_amount_cents"`
	Items            []OrderItemDTO `json:"items"`
	CreatedAt        time.Time      `json:"created_at"`
}

// OrderItemDTO is one snapshotted line of an order.
type OrderItemDTO struct {
	ProductID      uuid.UUID `json:"product_id"`
	Name           string    `json:"name"`
	Size           string    `json:"size,omitempty"`
	SizeDisplay    string    `json:"size_display,omitempty"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int       `json:"unit_price_cents"`
	LineTotalCents int       `json:"line_total_cents"`
}

// NewOrderDTO maps a persisted order onto the API shape.
func NewOrderDTO(order models.Order) OrderDTO {
	dto := OrderDTO{
		OrderNumber:      order.OrderNumber,
		FirstName:        order.FirstName,
		Phone:            order.Phone,
		Address:          order.Address,
		Area:             order.Area,
		NearestLandmark:  order.NearestLandmark,
		Notes:            order.Notes,
		Status:           order.Status.String(),
		TotalAmountCents: order.TotalAmountCents,
		Items:            make([]OrderItemDTO, 0, len(order.Items)),
		CreatedAt:        order.CreatedAt,
	}
	for _, item := range order.Items {
		line := OrderItemDTO{
			ProductID:      item.ProductID,
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			LineTotalCents: item.LineTotalCents(),
		}
		if item.Size != nil {
			line.Size = item.Size.String()
			line.SizeDisplay = item.Size.Display()
		}
		dto.Items = append(dto.Items, line)
	}
	return dto
}
