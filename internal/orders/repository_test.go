package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/db/models"
	"github.com/threadline/storefront-backend/pkg/enums"
	pkgerrors "github.com/threadline/storefront-backend/pkg/errors"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:orders_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}, &models.OrderSequence{}))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, orderNumber string, status enums.OrderStatus) *models.Order {
	t.Helper()

	size := enums.SizeM
	order := &models.Order{
		ID:          uuid.New(),
		OrderNumber: orderNumber,
		FirstName:   "Lina",
		Phone:       "+201001234567",
		Address:     "12 Garden St",
		Area:        "Zamalek",
		Status:      status,
		Items: []models.OrderItem{
			{ProductID: uuid.New(), Name: "Boxy Tee", Size: &size, Quantity: 2, UnitPriceCents: 2500},
			{ProductID: uuid.New(), Name: "Wool Suit", Quantity: 1, UnitPriceCents: 42000},
		},
	}
	order.TotalAmountCents = order.ItemsTotalCents()
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestRepositoryFindByOrderNumberPreloadsItems(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	seedOrder(t, db, "41", enums.OrderStatusPending)

	found, err := repo.FindByOrderNumber(ctx, "41")
	require.NoError(t, err)
	assert.Equal(t, "Lina", found.FirstName)
	assert.Equal(t, 47000, found.TotalAmountCents)
	require.Len(t, found.Items, 2)
}

func TestRepositoryFindByOrderNumberNotFound(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByOrderNumber(context.Background(), "9999")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestRepositorySetStatus(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := seedOrder(t, db, "42", enums.OrderStatusPending)

	require.NoError(t, repo.SetStatus(ctx, order.ID, enums.OrderStatusProcessing))

	found, err := repo.FindByOrderNumber(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusProcessing, found.Status)

	err = repo.SetStatus(ctx, uuid.New(), enums.OrderStatusProcessing)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
