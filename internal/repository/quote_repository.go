package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodtruck/internal/model"
)

// QuoteRepository defines quote request persistence operations.
type QuoteRepository interface {
	List(ctx context.Context) ([]model.QuoteRequest, error)
	FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error)
	Create(ctx context.Context, quote *model.QuoteRequest) error
	Update(ctx context.Context, quote *model.QuoteRequest) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository builds a GORM-backed repository.
func NewQuoteRepository(db *gorm.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) List(ctx context.Context) ([]model.QuoteRequest, error) {
	var quotes []model.QuoteRequest
	if err := r.db.WithContext(ctx).Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *quoteRepository) FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error) {
	var quote model.QuoteRequest
	if err := r.db.WithContext(ctx).First(&quote, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) Create(ctx context.Context, quote *model.QuoteRequest) error {
	return r.db.WithContext(ctx).Create(quote).Error
}

func (r *quoteRepository) Update(ctx context.Context, quote *model.QuoteRequest) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.QuoteRequest{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
