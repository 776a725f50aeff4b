package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"

	"github.com/threadline/storefront-backend/pkg/enums"
)

type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	val, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func (f *fakeKV) CartKey(sessionID string) string {
	return "tl:session:cart:" + sessionID
}

func TestStoreMissingKeyReadsEmptyCart(t *testing.T) {
	t.Parallel()

	store, err := NewStore(newFakeKV(), time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cart, err := store.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if cart.Items == nil || len(cart.Items) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart)
	}
}

func TestStoreMalformedPayloadReadsEmptyCart(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	kv.data[kv.CartKey("sess")] = "{not json"

	store, err := NewStore(kv, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	cart, err := store.Get(context.Background(), "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !cart.Empty() {
		t.Fatalf("malformed payload must read as empty, got %+v", cart)
	}
}

func TestStoreSaveRoundTrip(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	store, err := NewStore(kv, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	size := enums.Size36
	saved := Cart{Items: []Line{{
		ProductID:      uuid.New(),
		Size:           &size,
		Qty:            2,
		UnitPriceCents: 5400,
		Name:           "Trouser",
		SizeDisplay:    "36",
	}}}
	if err := store.Save(ctx, "sess", saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(loaded.Items))
	}
	line := loaded.Items[0]
	if line.Size == nil || *line.Size != enums.Size36 || line.Qty != 2 || line.UnitPriceCents != 5400 {
		t.Fatalf("round trip mismatch: %+v", line)
	}
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	store, err := NewStore(kv, time.Hour)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "sess", Cart{Items: []Line{{ProductID: uuid.New(), Qty: 1}}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx, "sess"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	cart, err := store.Get(ctx, "sess")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !cart.Empty() {
		t.Fatalf("cart should be empty after clear")
	}
}
