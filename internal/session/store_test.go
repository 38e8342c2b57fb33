package session

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStore creates an in-memory SQLite store for testing
func createTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

func TestNewStore(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		store, err := NewStore(":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		assert.NotNil(t, store.db)
	})

	t.Run("file-based database survives reopen", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sessions.db")
		ctx := context.Background()

		store, err := NewStore(path)
		require.NoError(t, err)
		require.NoError(t, store.Put(ctx, "rj", "key-1", false))
		_ = store.Close()

		store, err = NewStore(path)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		r, err := store.Get(ctx, "rj")
		require.NoError(t, err)
		assert.Equal(t, "key-1", r.Key)
	})
}

func TestStorePutGet(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "rj", "key-1", true))

	r, err := store.Get(ctx, "rj")
	require.NoError(t, err)
	assert.Equal(t, "rj", r.Username)
	assert.Equal(t, "key-1", r.Key)
	assert.True(t, r.Subscriber)
	assert.True(t, r.Active, "the first session becomes active")
	assert.WithinDuration(t, time.Now(), r.CreatedAt, time.Minute)

	// Replacing the key keeps the row and its active flag.
	require.NoError(t, store.Put(ctx, "rj", "key-2", false))
	r, err = store.Get(ctx, "rj")
	require.NoError(t, err)
	assert.Equal(t, "key-2", r.Key)
	assert.True(t, r.Active)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStorePut_Validation(t *testing.T) {
	store := createTestStore(t)
	assert.Error(t, store.Put(context.Background(), "", "key", false), "empty username")
	assert.Error(t, store.Put(context.Background(), "rj", "", false), "empty key")
}

func TestStoreGet_NotFound(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Active(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreSetActive(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, u := range []string{"alice", "bob", "carol"} {
		require.NoError(t, store.Put(ctx, u, "key-"+u, false))
	}

	active, err := store.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", active.Username)

	require.NoError(t, store.SetActive(ctx, "carol"))

	records, err := store.List(ctx)
	require.NoError(t, err)
	var activeNames []string
	for _, r := range records {
		if r.Active {
			activeNames = append(activeNames, r.Username)
		}
	}
	assert.Equal(t, []string{"carol"}, activeNames)

	assert.ErrorIs(t, store.SetActive(ctx, "nobody"), ErrNotFound)

	// A failed switch leaves the previous session active.
	active, err = store.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "carol", active.Username)
}

func TestStoreDelete(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "rj", "key", false))
	require.NoError(t, store.Delete(ctx, "rj"))

	_, err := store.Get(ctx, "rj")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "rj"), ErrNotFound)
}

func TestStoreTouchAndPrune(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "active", "key-a", false))
	require.NoError(t, store.Put(ctx, "stale", "key-s", false))

	old := time.Now().Add(-60 * 24 * time.Hour).Unix()
	_, err := store.db.ExecContext(ctx, "UPDATE sessions SET last_used_at = ?", old)
	require.NoError(t, err)

	deleted, err := store.Prune(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// The active session is kept even when stale.
	_, err = store.Get(ctx, "active")
	assert.NoError(t, err)

	require.NoError(t, store.Touch(ctx, "active"))
	r, err := store.Get(ctx, "active")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), r.LastUsedAt, time.Minute)

	assert.ErrorIs(t, store.Touch(ctx, "stale"), ErrNotFound)
}

func TestStoreConcurrentPut(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := []string{"a", "b", "c", "d"}[i%4]
			assert.NoError(t, store.Put(ctx, user, "key", false))
		}(i)
	}
	wg.Wait()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
