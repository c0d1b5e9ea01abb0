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

func uintPtr(v uint) *uint { return &v }

func TestQuoteService_List_ResolvesTruckTitles(t *testing.T) {
	quotes := new(MockQuoteRepository)
	trucks := new(MockTruckRepository)
	svc := NewQuoteService(quotes, trucks)

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	quotes.On("List", mock.Anything).Return([]model.QuoteRequest{
		{ID: 1, Name: "Ali", FoodTruckID: uintPtr(2), Status: model.QuoteStatusPending, CreatedAt: base},
		{ID: 2, Name: "Sara", FoodTruckID: uintPtr(99), Status: model.QuoteStatusPending, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Name: "Omar", Status: model.QuoteStatusCompleted, CreatedAt: base.Add(2 * time.Hour)},
	}, nil)
	trucks.On("List", mock.Anything).Return([]model.Truck{
		{ID: 2, Title: "Food Truck Burger"},
	}, nil)

	items, pagination, err := svc.List(context.Background(), "", 1, 10)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, 3, pagination.Total)
	assert.Equal(t, uint(3), items[0].ID, "newest first")

	byID := make(map[uint]model.QuoteRequest, len(items))
	for _, q := range items {
		byID[q.ID] = q
	}
	require.NotNil(t, byID[1].FoodTruckTitle)
	assert.Equal(t, "Food Truck Burger", *byID[1].FoodTruckTitle)
	assert.Nil(t, byID[2].FoodTruckTitle, "deleted truck leaves the title null")
	assert.Nil(t, byID[3].FoodTruckTitle)
}

func TestQuoteService_List_FiltersByStatus(t *testing.T) {
	quotes := new(MockQuoteRepository)
	trucks := new(MockTruckRepository)
	svc := NewQuoteService(quotes, trucks)

	quotes.On("List", mock.Anything).Return([]model.QuoteRequest{
		{ID: 1, Status: model.QuoteStatusPending},
		{ID: 2, Status: model.QuoteStatusCompleted},
		{ID: 3, Status: model.QuoteStatusPending},
	}, nil)
	trucks.On("List", mock.Anything).Return([]model.Truck{}, nil)

	items, pagination, err := svc.List(context.Background(), "pending", 1, 10)
	require.NoError(t, err)

	assert.Len(t, items, 2)
	assert.Equal(t, 2, pagination.Total)
	for _, q := range items {
		assert.Equal(t, model.QuoteStatusPending, q.Status)
	}
}

func TestQuoteService_Create_DefaultsToPending(t *testing.T) {
	quotes := new(MockQuoteRepository)
	trucks := new(MockTruckRepository)
	svc := NewQuoteService(quotes, trucks)

	quotes.On("Create", mock.Anything, mock.MatchedBy(func(q *model.QuoteRequest) bool {
		return q.Status == model.QuoteStatusPending && q.Name == "Ali"
	})).Return(nil)

	quote, err := svc.Create(context.Background(), CreateQuoteInput{
		Name:        "Ali",
		Email:       "ali@x.com",
		Phone:       "0600000000",
		FoodTruckID: uintPtr(1),
	})
	require.NoError(t, err)

	assert.Equal(t, model.QuoteStatusPending, quote.Status)
	quotes.AssertExpectations(t)
}

func TestQuoteService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  model.QuoteStatus
		wantErr error
	}{
		{name: "pending to in_progress", status: model.QuoteStatusInProgress},
		{name: "back to pending", status: model.QuoteStatusPending},
		{name: "completed", status: model.QuoteStatusCompleted},
		{name: "unknown label rejected", status: model.QuoteStatus("archived"), wantErr: errors.ErrInvalidStatus},
		{name: "empty label rejected", status: model.QuoteStatus(""), wantErr: errors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quotes := new(MockQuoteRepository)
			trucks := new(MockTruckRepository)
			svc := NewQuoteService(quotes, trucks)

			if tt.wantErr == nil {
				quotes.On("FindByID", mock.Anything, uint(1)).Return(&model.QuoteRequest{ID: 1, Status: model.QuoteStatusPending}, nil)
				quotes.On("Update", mock.Anything, mock.Anything).Return(nil)
			}

			quote, err := svc.UpdateStatus(context.Background(), 1, tt.status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				quotes.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
				quotes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, quote.Status)
		})
	}
}

func TestQuoteService_UpdateStatus_NotFound(t *testing.T) {
	quotes := new(MockQuoteRepository)
	trucks := new(MockTruckRepository)
	svc := NewQuoteService(quotes, trucks)

	quotes.On("FindByID", mock.Anything, uint(42)).Return(nil, repository.ErrNotFound)

	_, err := svc.UpdateStatus(context.Background(), 42, model.QuoteStatusCompleted)
	assert.ErrorIs(t, err, errors.ErrQuoteNotFound)
}

func TestQuoteService_Delete(t *testing.T) {
	quotes := new(MockQuoteRepository)
	trucks := new(MockTruckRepository)
	svc := NewQuoteService(quotes, trucks)

	quotes.On("Delete", mock.Anything, uint(1)).Return(true, nil)
	quotes.On("Delete", mock.Anything, uint(42)).Return(false, nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), errors.ErrQuoteNotFound)
}
