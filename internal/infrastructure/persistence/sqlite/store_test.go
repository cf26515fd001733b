package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabuddy/tabuddy/internal/domain/buddy"
	"github.com/tabuddy/tabuddy/internal/testutil"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tab.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestStore_EmptyDatabaseHasNoData(t *testing.T) {
	_, err := openTestStore(t).Load(context.Background())
	assert.ErrorIs(t, err, buddy.ErrNoData)
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	original := testutil.TypicalBuddy()
	require.NoError(t, s.Save(ctx, original))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(original, got); diff != "" {
		t.Fatalf("loaded data mismatch (-want +got):\n%s", diff)
	}
}

func TestStore_SaveReplacesPreviousData(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Save(ctx, testutil.TypicalBuddy()))
	require.NoError(t, s.Save(ctx, buddy.New()))

	got, err := s.Load(ctx)
	require.NoError(t, err, "an explicitly saved empty TAB is still saved data")
	assert.Empty(t, got.Modules())
}

func TestStore_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tab.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, buddy.SampleData()))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.True(t, buddy.SampleData().Equal(got))
}
