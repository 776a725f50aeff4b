package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/threadline/storefront-backend/internal/catalog"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
)

// AddInput describes an add-to-cart request. Qty defaults to 1.
type AddInput struct {
	ProductID uuid.UUID
	Size      *enums.ProductSize
	Qty       int
}

// RemoveInput identifies the line to decrement.
type RemoveInput struct {
	ProductID uuid.UUID
	Size      *enums.ProductSize
}

// Service manages the session cart.
type Service interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Add(ctx context.Context, sessionID string, input AddInput) (Cart, error)
	Remove(ctx context.Context, sessionID string, input RemoveInput) (Cart, error)
}

type service struct {
	store   Store
	catalog catalog.Repository
}

// NewService builds the cart service.
func NewService(store Store, catalogRepo catalog.Repository) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalogRepo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{store: store, catalog: catalogRepo}, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.store.Get(ctx, sessionID)
}

func (s *service) Add(ctx context.Context, sessionID string, input AddInput) (Cart, error) {
	if input.ProductID == uuid.Nil {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}
	qty := input.Qty
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}
	if input.Size != nil && !input.Size.IsValid() {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown size")
	}

	product, err := s.catalog.FindByID(ctx, input.ProductID)
	if err != nil {
		return Cart{}, err
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	line := Line{
		ProductID:      product.ID,
		Size:           input.Size,
		Qty:            qty,
		UnitPriceCents: product.PriceCents,
		Name:           product.Name,
	}
	if product.ImageURL != nil {
		line.ImageURL = *product.ImageURL
	}

	// Sized lines may not grow past the variant's available stock. The real
	// reservation happens at checkout; this keeps the cart honest.
	if input.Size != nil {
		line.SizeDisplay = input.Size.Display()
		stock, err := s.catalog.VariantStock(ctx, product.ID, *input.Size)
		if err != nil {
			return Cart{}, err
		}
		wanted := current.QtyOf(product.ID, input.Size) + qty
		if wanted > stock {
			return current, pkgerrors.New(pkgerrors.CodeInsufficientStock, "not enough stock for this size").
				WithDetails(map[string]any{
					"product_id": product.ID,
					"size":       input.Size.String(),
					"requested":  wanted,
					"remaining":  stock,
				})
		}
	}

	updated := current.withAdded(line)
	if err := s.store.Save(ctx, sessionID, updated); err != nil {
		return Cart{}, err
	}
	return updated, nil
}

func (s *service) Remove(ctx context.Context, sessionID string, input RemoveInput) (Cart, error) {
	if input.ProductID == uuid.Nil {
		return Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	current, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}

	updated := current.withRemoved(input.ProductID, input.Size)
	if err := s.store.Save(ctx, sessionID, updated); err != nil {
		return Cart{}, err
	}
	return updated, nil
}
