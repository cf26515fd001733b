package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence/dto"
)

// Store implements buddy.Repository as one JSON document under a single key.
type Store struct {
	cache *Cache
	key   string
}

// NewStore creates a store writing to key (see SnapshotKey).
func NewStore(cache *Cache, key string) *Store {
	return &Store{cache: cache, key: SnapshotKey(key)}
}

// Key returns the snapshot key.
func (s *Store) Key() string {
	return s.key
}

// Load implements buddy.Repository.
func (s *Store) Load(ctx context.Context) (*buddy.Buddy, error) {
	var doc dto.Buddy
	if err := s.cache.Get(ctx, s.key, &doc); err != nil {
		if errors.Is(err, ErrCacheMiss) {
			return nil, buddy.ErrNoData
		}
		return nil, fmt.Errorf("redis: load %s: %w", s.key, err)
	}

	b, err := doc.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return b, nil
}

// Save implements buddy.Repository. The snapshot never expires.
func (s *Store) Save(ctx context.Context, b *buddy.Buddy) error {
	if err := s.cache.Set(ctx, s.key, dto.FromDomain(b), 0); err != nil {
		return fmt.Errorf("redis: save %s: %w", s.key, err)
	}
	return nil
}

var _ buddy.Repository = (*Store)(nil)
