package catalog

import (
	"github.com/google/uuid"

	"github.com/threadline/storefront-backend/pkg/db/models"
)

// ProductDTO is the listing shape returned by the catalog endpoints.
type ProductDTO struct {
	ID                  uuid.UUID        `json:"id"`
	Name                string           `json:"name"`
	PriceCents          int              `json:"price_cents"`
	CompareAtPriceCents *int             `json:"compare_at_price_cents,omitempty"`
	Classification      string           `json:"classification"`
	BestSeller          bool             `json:"best_seller"`
	ImageURL            string           `json:"image_url,omitempty"`
	Sizes               []ProductSizeDTO `json:"sizes"`
}

// ProductSizeDTO exposes one size variant with its availability.
type ProductSizeDTO struct {
	Size        string `json:"size"`
	SizeDisplay string `json:"size_display"`
	StockCount  int    `json:"stock_count"`
	InStock     bool   `json:"in_stock"`
}

func newProductDTO(product models.Product) ProductDTO {
	dto := ProductDTO{
		ID:                  product.ID,
		Name:                product.Name,
		PriceCents:          product.PriceCents,
		CompareAtPriceCents: product.CompareAtPriceCents,
		Classification:      string(product.Classification),
		BestSeller:          product.BestSeller,
		Sizes:               make([]ProductSizeDTO, 0, len(product.Sizes)),
	}
	if product.ImageURL != nil {
		dto.ImageURL = *product.ImageURL
	}
	for _, variant := range product.Sizes {
		dto.Sizes = append(dto.Sizes, ProductSizeDTO{
			Size:        string(variant.Size),
			SizeDisplay: variant.Size.Display(),
			StockCount:  variant.StockCount,
			InStock:     variant.InStock(),
		})
	}
	return dto
}
