package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline/storefront-backend/pkg/enums"
)

func TestSequencerStartsAtOneOnEmptyStore(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	seq := NewSequencer()
	ctx := context.Background()

	number, err := seq.Next(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "1", number)

	number, err = seq.Next(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "2", number)
}

func TestSequencerSeedsFromNewestOrder(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	seq := NewSequencer()
	ctx := context.Background()

	seedOrder(t, db, "7", enums.OrderStatusDelivered)

	number, err := seq.Next(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "8", number)
}

func TestSequencerTreatsNonNumericHistoryAsEmpty(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	seq := NewSequencer()
	ctx := context.Background()

	seedOrder(t, db, "LEGACY-0007", enums.OrderStatusDelivered)

	number, err := seq.Next(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, "1", number)
}

func TestSequencerIssuesDistinctNumbers(t *testing.T) {
	t.Parallel()

	db := setupOrdersTestDB(t)
	seq := NewSequencer()
	ctx := context.Background()

	issued := map[string]bool{}
	for i := 0; i < 20; i++ {
		number, err := seq.Next(ctx, db)
		require.NoError(t, err)
		require.False(t, issued[number], "number %s issued twice", number)
		issued[number] = true
	}
}
