package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodtruck/internal/model"
)

// TruckRepository defines truck persistence operations.
type TruckRepository interface {
	List(ctx context.Context) ([]model.Truck, error)
	FindByID(ctx context.Context, id uint) (*model.Truck, error)
	Create(ctx context.Context, truck *model.Truck) error
	Update(ctx context.Context, truck *model.Truck) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type truckRepository struct {
	db *gorm.DB
}

// NewTruckRepository builds a GORM-backed repository.
func NewTruckRepository(db *gorm.DB) TruckRepository {
	return &truckRepository{db: db}
}

func (r *truckRepository) List(ctx context.Context) ([]model.Truck, error) {
	var trucks []model.Truck
	if err := r.db.WithContext(ctx).Find(&trucks).Error; err != nil {
		return nil, err
	}
	return trucks, nil
}

func (r *truckRepository) FindByID(ctx context.Context, id uint) (*model.Truck, error) {
	var truck model.Truck
	if err := r.db.WithContext(ctx).First(&truck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &truck, nil
}

func (r *truckRepository) Create(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Create(truck).Error
}

func (r *truckRepository) Update(ctx context.Context, truck *model.Truck) error {
	return r.db.WithContext(ctx).Save(truck).Error
}

func (r *truckRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Truck{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
