package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/db/models"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
)

// Repository exposes catalog reads consumed by the cart and checkout flows.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	List(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindSize(ctx context.Context, productID uuid.UUID, size enums.ProductSize) (*models.ProductSize, error)
	VariantStock(ctx context.Context, productID uuid.UUID, size enums.ProductSize) (int, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Order("created_at ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Sizes").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindSize(ctx context.Context, productID uuid.UUID, size enums.ProductSize) (*models.ProductSize, error) {
	var variant models.ProductSize
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND size = ?", productID, size).
		First(&variant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "size not available for this product")
		}
		return nil, err
	}
	return &variant, nil
}

func (r *repository) VariantStock(ctx context.Context, productID uuid.UUID, size enums.ProductSize) (int, error) {
	variant, err := r.FindSize(ctx, productID, size)
	if err != nil {
		return 0, err
	}
	return variant.StockCount, nil
}
