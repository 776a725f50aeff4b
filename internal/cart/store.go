package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type sessionKV interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(sessionID string) string
}

// Store persists carts in the session key-value store. It performs no
// validation; malformed or missing payloads read as an empty cart.
type Store interface {
	Get(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, cart Cart) error
	Clear(ctx context.Context, sessionID string) error
}

type store struct {
	kv  sessionKV
	ttl time.Duration
}

// NewStore builds a session cart store backed by the provided key-value client.
func NewStore(kv sessionKV, ttl time.Duration) (Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("session kv client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &store{kv: kv, ttl: ttl}, nil
}

func (s *store) Get(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redislib.Nil) {
			return Cart{Items: []Line{}}, nil
		}
		return Cart{}, fmt.Errorf("reading cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// Tolerant read: a corrupt payload degrades to an empty cart.
		return Cart{Items: []Line{}}, nil
	}
	if cart.Items == nil {
		cart.Items = []Line{}
	}
	return cart, nil
}

func (s *store) Save(ctx context.Context, sessionID string, cart Cart) error {
	if cart.Items == nil {
		cart.Items = []Line{}
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	return s.kv.Set(ctx, s.kv.CartKey(sessionID), string(payload), s.ttl)
}

func (s *store) Clear(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, s.kv.CartKey(sessionID))
}
