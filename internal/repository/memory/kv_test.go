package memory

import (
	"context"
	"testing"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueStore(t *testing.T) {
	ctx := context.Background()
	store := NewKeyValueStore()

	t.Run("Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "items")
		assert.True(t, errs.Is(err, repository.ErrKeyNotFound))
	})

	t.Run("Put and get", func(t *testing.T) {
		require.NoError(t, store.PutAll(ctx, map[string][]byte{"items": []byte("[]"), "rentals": []byte("[1]")}))

		value, err := store.Get(ctx, "rentals")
		require.NoError(t, err)
		assert.Equal(t, "[1]", string(value))
		assert.Equal(t, 2, store.Len())
	})

	t.Run("Returned bytes are copies", func(t *testing.T) {
		value, err := store.Get(ctx, "rentals")
		require.NoError(t, err)
		value[0] = 'x'

		again, err := store.Get(ctx, "rentals")
		require.NoError(t, err)
		assert.Equal(t, "[1]", string(again))
	})
}
