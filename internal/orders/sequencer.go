package orders

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/threadline/storefront-backend/pkg/db/models"
)

// Sequencer issues order numbers from a dedicated counter row, so concurrent
// checkouts serialize on that row instead of locking the orders table itself.
type Sequencer interface {
	Next(ctx context.Context, tx *gorm.DB) (string, error)
}

type sequencer struct{}

// NewSequencer builds the counter-backed order number sequencer.
func NewSequencer() Sequencer {
	return &sequencer{}
}

// Next increments the counter row inside the caller's transaction and returns
// the issued number. The first call seeds the row from the newest existing
// order so numbering continues across deployments.
func (s *sequencer) Next(ctx context.Context, tx *gorm.DB) (string, error) {
	issued, err := s.increment(ctx, tx)
	if err != nil {
		return "", err
	}
	if issued > 0 {
		return strconv.FormatInt(issued, 10), nil
	}

	if err := s.seed(ctx, tx); err != nil {
		return "", err
	}

	issued, err = s.increment(ctx, tx)
	if err != nil {
		return "", err
	}
	if issued == 0 {
		return "", errors.New("order sequence row missing after seed")
	}
	return strconv.FormatInt(issued, 10), nil
}

// increment bumps the counter and reads back the issued value. Returns 0 when
// the counter row does not exist yet.
func (s *sequencer) increment(ctx context.Context, tx *gorm.DB) (int64, error) {
	result := tx.WithContext(ctx).
		Model(&models.OrderSequence{}).
		Where("id = ?", models.OrderSequenceRowID).
		Update("next_number", gorm.Expr("next_number + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}

	var seq models.OrderSequence
	err := tx.WithContext(ctx).
		Where("id = ?", models.OrderSequenceRowID).
		First(&seq).Error
	if err != nil {
		return 0, err
	}
	return seq.NextNumber, nil
}

// seed inserts the counter row starting from the newest order's number. A
// concurrent seed is harmless: ON CONFLICT DO NOTHING leaves the winner's row
// in place and the caller retries the increment.
func (s *sequencer) seed(ctx context.Context, tx *gorm.DB) error {
	var lastNumber string
	err := tx.WithContext(ctx).
		Model(&models.Order{}).
		Select("order_number").
		Order("created_at DESC").
		Limit(1).
		Scan(&lastNumber).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	start, err := strconv.ParseInt(lastNumber, 10, 64)
	if err != nil {
		start = 0
	}

	return tx.WithContext(ctx).Exec(
		"INSERT INTO order_sequences (id, next_number) VALUES (?, ?) ON CONFLICT (id) DO NOTHING",
		models.OrderSequenceRowID, start,
	).Error
}
