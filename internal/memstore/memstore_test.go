package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodtruck/internal/fixture"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

func TestNew_SeedsFixtureCatalog(t *testing.T) {
	store := New()
	ctx := context.Background()

	trucks, err := store.Trucks().List(ctx)
	require.NoError(t, err)
	assert.Len(t, trucks, 6)

	quotes, err := store.Quotes().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	msgs, err := store.Messages().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	admin, err := store.Users().FindByEmail(ctx, fixture.DefaultAdminEmail)
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Role)
}

func TestStore_InstancesAreIndependent(t *testing.T) {
	ctx := context.Background()
	a := New()
	b := New()

	require.NoError(t, a.Trucks().Create(ctx, &model.Truck{Title: "Extra", Description: "d", Category: "Pizza"}))

	aTrucks, err := a.Trucks().List(ctx)
	require.NoError(t, err)
	bTrucks, err := b.Trucks().List(ctx)
	require.NoError(t, err)

	assert.Len(t, aTrucks, 7)
	assert.Len(t, bTrucks, 6, "stores share no state")
}

func TestTruckStore_CreateAfterSeedContinuesIDs(t *testing.T) {
	store := New()
	truck := &model.Truck{Title: "Extra", Description: "d", Category: "Pizza"}

	require.NoError(t, store.Trucks().Create(context.Background(), truck))
	assert.Equal(t, uint(7), truck.ID)
}

func TestTruckStore_ListReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	trucks, err := store.Trucks().List(ctx)
	require.NoError(t, err)
	trucks[0].Title = "mutated"

	again, err := store.Trucks().List(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestQuoteStore_CRUD(t *testing.T) {
	store := Empty()
	ctx := context.Background()

	quote := &model.QuoteRequest{Name: "Ali", Email: "ali@x.com", Phone: "0600000000", Status: model.QuoteStatusPending}
	require.NoError(t, store.Quotes().Create(ctx, quote))
	assert.Equal(t, uint(1), quote.ID)
	assert.False(t, quote.CreatedAt.IsZero())

	quote.Status = model.QuoteStatusInProgress
	require.NoError(t, store.Quotes().Update(ctx, quote))

	got, err := store.Quotes().FindByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, model.QuoteStatusInProgress, got.Status)

	removed, err := store.Quotes().Delete(ctx, quote.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Quotes().Delete(ctx, quote.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = store.Quotes().FindByID(ctx, quote.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
