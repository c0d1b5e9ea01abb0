package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

func catalog() []model.Truck {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []model.Truck{
		{ID: 1, Title: "Food Truck Pizza Premium", Description: "Four à bois", Category: "Pizza", CreatedAt: base},
		{ID: 2, Title: "Burger Deluxe", Description: "Plancha double", Category: "Burger", CreatedAt: base.Add(time.Hour)},
		{ID: 6, Title: "Coffee Mobile", Description: "Machine espresso", Category: "Boissons", CreatedAt: base.Add(2 * time.Hour)},
		{ID: 7, Title: "Tacos Express", Description: "Presse à tacos", Category: "Tacos", CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestTruckService_List(t *testing.T) {
	tests := []struct {
		name    string
		filter  TruckFilter
		wantIDs []uint
	}{
		{name: "no filter returns all newest first", filter: TruckFilter{}, wantIDs: []uint{7, 6, 2, 1}},
		{name: "featured keeps the showcase ids", filter: TruckFilter{Featured: true}, wantIDs: []uint{6, 2, 1}},
		{name: "category match is case insensitive", filter: TruckFilter{Category: "pizza"}, wantIDs: []uint{1}},
		{name: "category all is a no-op", filter: TruckFilter{Category: "all"}, wantIDs: []uint{7, 6, 2, 1}},
		{name: "search matches title", filter: TruckFilter{Search: "burger"}, wantIDs: []uint{2}},
		{name: "search matches description", filter: TruckFilter{Search: "espresso"}, wantIDs: []uint{6}},
		{name: "filters combine", filter: TruckFilter{Featured: true, Search: "tacos"}, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trucks := new(MockTruckRepository)
			trucks.On("List", mock.Anything).Return(catalog(), nil)
			svc := NewTruckService(trucks)

			listed, err := svc.List(context.Background(), tt.filter)
			require.NoError(t, err)

			var ids []uint
			for _, truck := range listed {
				ids = append(ids, truck.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestTruckService_Get_NotFound(t *testing.T) {
	trucks := new(MockTruckRepository)
	trucks.On("FindByID", mock.Anything, uint(42)).Return(nil, repository.ErrNotFound)
	svc := NewTruckService(trucks)

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, errors.ErrTruckNotFound)
}

func TestTruckService_Update_MergesPartialFields(t *testing.T) {
	trucks := new(MockTruckRepository)
	stored := &model.Truck{
		ID:          1,
		Title:       "Food Truck Pizza Premium",
		Description: "Four à bois",
		Category:    "Pizza",
		CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	trucks.On("FindByID", mock.Anything, uint(1)).Return(stored, nil)
	trucks.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := NewTruckService(trucks)

	newTitle := "Pizza Premium Plus"
	truck, err := svc.Update(context.Background(), 1, UpdateTruckInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Pizza Premium Plus", truck.Title)
	assert.Equal(t, "Four à bois", truck.Description, "omitted fields keep their value")
	assert.True(t, truck.UpdatedAt.After(truck.CreatedAt))
}

func TestTruckService_Update_NotFound(t *testing.T) {
	trucks := new(MockTruckRepository)
	trucks.On("FindByID", mock.Anything, uint(42)).Return(nil, repository.ErrNotFound)
	svc := NewTruckService(trucks)

	title := "Ghost"
	_, err := svc.Update(context.Background(), 42, UpdateTruckInput{Title: &title})
	assert.ErrorIs(t, err, errors.ErrTruckNotFound)
	trucks.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTruckService_Delete(t *testing.T) {
	trucks := new(MockTruckRepository)
	trucks.On("Delete", mock.Anything, uint(1)).Return(true, nil)
	trucks.On("Delete", mock.Anything, uint(42)).Return(false, nil)
	svc := NewTruckService(trucks)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), errors.ErrTruckNotFound)
}
