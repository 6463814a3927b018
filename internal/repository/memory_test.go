package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-calc-api/internal/model"
)

func TestMemoryUserStore_CreateAndFind(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	user := model.User{ID: "u1", Email: "alice@example.com", PasswordHash: "hash"}
	require.NoError(t, store.Create(ctx, user))

	found, err := store.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)

	_, err = store.FindByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, model.User{ID: "u1", Email: "alice@example.com"}))
	err := store.Create(ctx, model.User{ID: "u2", Email: "alice@example.com"})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)
}

func TestMemoryUserStore_ConcurrentRegistration(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = store.Create(ctx, model.User{ID: "u", Email: "race@example.com"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, model.ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent registration may win")
}

func TestMemoryScenarioStore_Lifecycle(t *testing.T) {
	store := NewMemoryScenarioStore()
	ctx := context.Background()

	first, err := store.Create(ctx, model.Scenario{UserID: "u1", OperandA: 10, OperandB: 5, Sum: 15})
	require.NoError(t, err)
	second, err := store.Create(ctx, model.Scenario{UserID: "u2", OperandA: 1, OperandB: 2, Sum: 3})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owned, err := store.ListByOwner(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, first.ID, owned[0].ID)

	require.NoError(t, store.Delete(ctx, first.ID))
	assert.ErrorIs(t, store.Delete(ctx, first.ID), model.ErrScenarioNotFound)

	_, err = store.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, model.ErrScenarioNotFound)
}
