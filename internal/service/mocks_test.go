package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"foodtruck/internal/model"
)

// MockTruckRepository is a mock implementation of repository.TruckRepository.
type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) List(ctx context.Context) ([]model.Truck, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Truck), args.Error(1)
}

func (m *MockTruckRepository) FindByID(ctx context.Context, id uint) (*model.Truck, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Truck), args.Error(1)
}

func (m *MockTruckRepository) Create(ctx context.Context, truck *model.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, truck *model.Truck) error {
	args := m.Called(ctx, truck)
	return args.Error(0)
}

func (m *MockTruckRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockQuoteRepository is a mock implementation of repository.QuoteRepository.
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) List(ctx context.Context) ([]model.QuoteRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QuoteRequest), args.Error(1)
}

func (m *MockQuoteRepository) Create(ctx context.Context, quote *model.QuoteRequest) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, quote *model.QuoteRequest) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSessionRevoker is a mock implementation of auth.SessionRevoker.
type MockSessionRevoker struct {
	mock.Mock
}

func (m *MockSessionRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockSessionRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}
