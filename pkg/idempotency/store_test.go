package idempotency

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, cached, err := store.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, StateNew, state)
	assert.Nil(t, cached)

	// Duplicate while in flight.
	state, _, err = store.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, StateProcessing, state)

	res := Result{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"id":"m1"}`)}
	require.NoError(t, store.Complete(ctx, "k1", res))

	state, cached, err = store.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, state)
	require.NotNil(t, cached)
	assert.Equal(t, 201, cached.StatusCode)
	assert.JSONEq(t, `{"id":"m1"}`, string(cached.Body))
}

func TestMemoryStore_ReleaseAllowsRetry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, _, err := store.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, StateNew, state)

	require.NoError(t, store.Release(ctx, "k1"))

	state, _, err = store.Begin(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, StateNew, state)
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	state, _, err := store.Begin(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, StateNew, state)

	state, _, err = store.Begin(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, StateNew, state)
}
