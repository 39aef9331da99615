package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeContract exercises the behavior every Store must share.
func storeContract(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("put and open", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/a", bytes.NewReader([]byte("payload-a"))))

		rc, err := store.Open(ctx, "snapshots/a")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "payload-a", string(data))
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/a", bytes.NewReader([]byte("v2"))))

		rc, err := store.Open(ctx, "snapshots/a")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(data))
	})

	t.Run("open missing", func(t *testing.T) {
		_, err := store.Open(ctx, "snapshots/missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list with prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/b", bytes.NewReader([]byte("b"))))
		require.NoError(t, store.Put(ctx, "other/c", bytes.NewReader([]byte("c"))))

		names, err := store.List(ctx, "snapshots/")
		require.NoError(t, err)
		assert.Equal(t, []string{"snapshots/a", "snapshots/b"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "snapshots/b"))
		_, err := store.Open(ctx, "snapshots/b")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting a missing blob is not an error.
		assert.NoError(t, store.Delete(ctx, "snapshots/b"))
	})
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)
	storeContract(t, store)
}

func TestThrottledStore(t *testing.T) {
	t.Run("contract", func(t *testing.T) {
		inner := NewMemoryStore()
		storeContract(t, NewThrottled(inner, ThrottleConfig{MaxConcurrent: 2}))
	})

	t.Run("paces writes", func(t *testing.T) {
		store := NewThrottled(NewMemoryStore(), ThrottleConfig{BytesPerSec: 1024})

		start := time.Now()
		payload := bytes.Repeat([]byte("x"), 2048)
		require.NoError(t, store.Put(context.Background(), "big", bytes.NewReader(payload)))

		// 2048 bytes at 1024 B/s with a 1024 burst needs about a second.
		assert.GreaterOrEqual(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("list counts against concurrency cap", func(t *testing.T) {
		inner := NewMemoryStore()
		ctx := context.Background()
		require.NoError(t, inner.Put(ctx, "a", bytes.NewReader([]byte("x"))))

		// The rate limiter keeps the permit held until the reader is
		// closed.
		store := NewThrottled(inner, ThrottleConfig{BytesPerSec: 1024, MaxConcurrent: 1})

		rc, err := store.Open(ctx, "a")
		require.NoError(t, err)

		timeoutCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()
		_, err = store.List(timeoutCtx, "")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		require.NoError(t, rc.Close())
		names, err := store.List(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, names)
	})
}

func TestMemoryStoreMappable(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "m", bytes.NewReader([]byte("zero-copy"))))

	rc, err := store.Open(ctx, "m")
	require.NoError(t, err)
	defer rc.Close()

	m, ok := rc.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "zero-copy", string(data))
}

func TestLocalStoreMappable(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "m", bytes.NewReader([]byte("mapped"))))

	rc, err := store.Open(ctx, "m")
	require.NoError(t, err)
	defer rc.Close()

	m, ok := rc.(Mappable)
	require.True(t, ok)
	data, err := m.Bytes()
	require.NoError(t, err)
	assert.Equal(t, "mapped", string(data))
}
