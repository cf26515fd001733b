package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

// testAddrEnv names the variable holding a disposable Redis address for the integration tests.
const testAddrEnv = "TABUDDY_TEST_REDIS_ADDR"

func TestSnapshotKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultKey},
		{"   ", DefaultKey},
		{"buddy", "tabuddy:buddy"},
		{"tabuddy:staging", "tabuddy:staging"},
		{"team-a", "tabuddy:team-a"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapshotKey(tt.in), "input %q", tt.in)
	}
}

func TestConfig_Options(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Password = "secret"
	cfg.DB = 3

	opts := cfg.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)
	assert.Equal(t, 5*time.Second, opts.DialTimeout)
}

func TestNewStore_NamespacesKey(t *testing.T) {
	s := NewStore(nil, "")
	assert.Equal(t, DefaultKey, s.Key())
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv(testAddrEnv)
	if addr == "" {
		t.Skipf("%s not set", testAddrEnv)
	}

	cfg := DefaultConfig()
	cfg.Addr = addr
	cache, err := NewCache(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	s := NewStore(cache, "test:"+t.Name())
	require.NoError(t, cache.Delete(context.Background(), s.Key()))
	t.Cleanup(func() { _ = cache.Delete(context.Background(), s.Key()) })
	return s
}

func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, buddy.ErrNoData)

	require.NoError(t, s.Save(ctx, testutil.TypicalBuddy()))
	exists, err := s.cache.Exists(ctx, s.Key())
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, testutil.TypicalBuddy().Equal(got))
}

func TestCache_RejectsBadInput(t *testing.T) {
	c := NewCacheWithClient(nil)
	ctx := context.Background()

	assert.ErrorIs(t, c.Set(ctx, "", 1, 0), ErrCacheKeyEmpty)
	assert.ErrorIs(t, c.Set(ctx, "k", nil, 0), ErrCacheNilValue)
	assert.ErrorIs(t, c.Get(ctx, "", new(int)), ErrCacheKeyEmpty)
	_, err := c.Exists(ctx, "")
	assert.ErrorIs(t, err, ErrCacheKeyEmpty)
	assert.NoError(t, c.Delete(ctx))
}
