package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

// testURLEnv names the variable holding a disposable database URL for the integration tests.
const testURLEnv = "TABUDDY_TEST_POSTGRES_URL"

func TestDefaultConfig_PoolConfig(t *testing.T) {
	cfg := DefaultConfig()
	pc, err := cfg.PoolConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(4), pc.MaxConns)
	assert.Equal(t, time.Hour, pc.MaxConnLifetime)
	assert.Equal(t, "tabuddy", pc.ConnConfig.Database)
	assert.Equal(t, 10*time.Second, pc.ConnConfig.ConnectTimeout)
}

func TestConfig_PoolConfigRejectsBadURL(t *testing.T) {
	_, err := Config{URL: "postgres://%zz"}.PoolConfig()
	assert.Error(t, err)
}

func TestGetMigrations_Ordered(t *testing.T) {
	migs := GetMigrations()
	require.NotEmpty(t, migs)
	for i, m := range migs {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.UpSQL, "migration %d", m.Version)
		assert.NotEmpty(t, m.DownSQL, "migration %d", m.Version)
	}
}

func TestPending(t *testing.T) {
	migs := GetMigrations()

	assert.Len(t, Pending(migs, nil), len(migs))
	assert.Empty(t, Pending(migs, map[int]time.Time{1: time.Now(), 2: time.Now()}))

	rest := Pending(migs, map[int]time.Time{1: time.Now()})
	require.Len(t, rest, 1)
	assert.Equal(t, 2, rest[0].Version)
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv(testURLEnv)
	if url == "" {
		t.Skipf("%s not set", testURLEnv)
	}

	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.URL = url

	conn, err := NewConnection(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	require.NoError(t, NewMigrator(conn).Migrate(ctx))
	_, err = conn.Exec(ctx, `TRUNCATE completions, students, tasks, modules, tab_meta`)
	require.NoError(t, err)

	return NewStore(conn)
}

func TestStore_Integration(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, buddy.ErrNoData)

	original := testutil.TypicalBuddy()
	require.NoError(t, s.Save(ctx, original))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("loaded data mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, s.Save(ctx, buddy.New()))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Modules())
}

func TestConnection_ClosedRejectsCalls(t *testing.T) {
	s := openTestStore(t)
	s.conn.Close()

	assert.ErrorIs(t, s.conn.Ping(context.Background()), ErrConnectionClosed)
	assert.ErrorIs(t, s.Save(context.Background(), buddy.New()), ErrConnectionClosed)
}
