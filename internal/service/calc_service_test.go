package service

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-calc-api/internal/config"
	"go-calc-api/internal/model"
	"go-calc-api/internal/repository"
	"go-calc-api/pkg/apierror"
)

func TestCompute(t *testing.T) {
	svc := NewCalcService(repository.NewMemoryScenarioStore(), config.ScopeOwner)

	sum, division, err := svc.Compute(float64(10), float64(5))
	require.NoError(t, err)
	assert.Equal(t, 15.0, sum)
	require.NotNil(t, division)
	assert.Equal(t, 2.0, *division)

	sum, division, err = svc.Compute(float64(10), float64(0))
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)
	assert.Nil(t, division)

	sum, division, err = svc.Compute("7.5", " 2.5 ")
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)
	require.NotNil(t, division)
	assert.Equal(t, 3.0, *division)
}

func TestCompute_InvalidInput(t *testing.T) {
	svc := NewCalcService(repository.NewMemoryScenarioStore(), config.ScopeOwner)

	for _, tc := range []struct{ a, b any }{
		{"abc", float64(5)},
		{float64(5), "abc"},
		{nil, float64(5)},
		{true, float64(5)},
		{"NaN", float64(5)},
		{"", float64(5)},
		{"Inf", float64(5)},
		{"Infinity", float64(5)},
		{"-Inf", float64(5)},
		{float64(5), "+Inf"},
		{math.Inf(1), float64(5)},
		{math.NaN(), float64(5)},
	} {
		_, _, err := svc.Compute(tc.a, tc.b)
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr, "a=%v b=%v", tc.a, tc.b)
		assert.Equal(t, "INVALID_INPUT", apiErr.Code)
		assert.Equal(t, 400, apiErr.HTTPStatus)
	}
}

func TestCalculateAndSave(t *testing.T) {
	store := repository.NewMemoryScenarioStore()
	svc := NewCalcService(store, config.ScopeOwner)
	ctx := context.Background()

	saved, err := svc.CalculateAndSave(ctx, "u1", model.CalculateRequest{
		A: float64(10), B: "5", Name: "first", Project: "demo",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, 15.0, saved.Sum)
	require.NotNil(t, saved.Division)
	assert.Equal(t, 2.0, *saved.Division)
	assert.Equal(t, "first", saved.Name)

	found, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Sum, found.Sum)
}

func TestListScenarios_ScopePolicy(t *testing.T) {
	store := repository.NewMemoryScenarioStore()
	ctx := context.Background()

	_, err := store.Create(ctx, model.Scenario{UserID: "u1", Sum: 1})
	require.NoError(t, err)
	_, err = store.Create(ctx, model.Scenario{UserID: "u2", Sum: 2})
	require.NoError(t, err)

	owner := NewCalcService(store, config.ScopeOwner)
	owned, err := owner.ListScenarios(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "u1", owned[0].UserID)

	global := NewCalcService(store, config.ScopeGlobal)
	all, err := global.ListScenarios(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDeleteScenario_Ownership(t *testing.T) {
	store := repository.NewMemoryScenarioStore()
	svc := NewCalcService(store, config.ScopeOwner)
	ctx := context.Background()

	saved, err := store.Create(ctx, model.Scenario{UserID: "userA", Sum: 1})
	require.NoError(t, err)

	// Another authenticated user may not delete it.
	err = svc.DeleteScenario(ctx, "userB", saved.ID)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_AUTHORIZED", apiErr.Code)
	assert.Equal(t, 403, apiErr.HTTPStatus)

	// Record is intact.
	_, err = store.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	// The owner may.
	require.NoError(t, svc.DeleteScenario(ctx, "userA", saved.ID))
	_, err = store.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, model.ErrScenarioNotFound)
}

func TestDeleteScenario_NotFound(t *testing.T) {
	svc := NewCalcService(repository.NewMemoryScenarioStore(), config.ScopeOwner)

	err := svc.DeleteScenario(context.Background(), "u1", 42)
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, 404, apiErr.HTTPStatus)
}
