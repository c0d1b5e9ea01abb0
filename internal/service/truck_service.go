package service

import (
	"context"
	stderrors "errors"
	"time"

	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/query"
	"foodtruck/internal/repository"
)

// featuredMaxID caps the featured listing to the showcase catalog, the
// six seed trucks.
const featuredMaxID = 6

// TruckFilter holds the optional catalog filters.
type TruckFilter struct {
	Featured bool
	Category string
	Search   string
}

// CreateTruckInput holds the fields accepted when creating a truck.
type CreateTruckInput struct {
	Title          string
	Description    string
	Category       string
	ImageURL       string
	Specifications model.JSONMap
}

// UpdateTruckInput holds a partial truck update; nil fields are left
// untouched.
type UpdateTruckInput struct {
	Title          *string
	Description    *string
	Category       *string
	ImageURL       *string
	Specifications *model.JSONMap
}

// TruckService handles catalog operations.
type TruckService interface {
	List(ctx context.Context, filter TruckFilter) ([]model.Truck, error)
	Get(ctx context.Context, id uint) (*model.Truck, error)
	Create(ctx context.Context, in CreateTruckInput) (*model.Truck, error)
	Update(ctx context.Context, id uint, in UpdateTruckInput) (*model.Truck, error)
	Delete(ctx context.Context, id uint) error
}

type truckService struct {
	trucks repository.TruckRepository
}

// NewTruckService creates a new truck service.
func NewTruckService(trucks repository.TruckRepository) TruckService {
	return &truckService{trucks: trucks}
}

// List returns the catalog with filters applied, newest first. The
// filter pipeline runs in memory so every backend behaves identically.
func (s *truckService) List(ctx context.Context, filter TruckFilter) ([]model.Truck, error) {
	trucks, err := s.trucks.List(ctx)
	if err != nil {
		return nil, err
	}

	trucks = query.Filter(trucks, func(t model.Truck) bool {
		if filter.Featured && t.ID > featuredMaxID {
			return false
		}
		if filter.Category != "" && filter.Category != "all" && !query.MatchFold(t.Category, filter.Category) {
			return false
		}
		return query.ContainsFold(filter.Search, t.Title, t.Description)
	})

	return query.SortNewestFirst(trucks, func(t model.Truck) time.Time { return t.CreatedAt }), nil
}

func (s *truckService) Get(ctx context.Context, id uint) (*model.Truck, error) {
	truck, err := s.trucks.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrTruckNotFound
		}
		return nil, err
	}
	return truck, nil
}

func (s *truckService) Create(ctx context.Context, in CreateTruckInput) (*model.Truck, error) {
	truck := &model.Truck{
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		ImageURL:       in.ImageURL,
		Specifications: in.Specifications,
	}
	if err := s.trucks.Create(ctx, truck); err != nil {
		return nil, err
	}
	return truck, nil
}

// Update merges the non-nil fields into the stored record and restamps
// updated_at.
func (s *truckService) Update(ctx context.Context, id uint, in UpdateTruckInput) (*model.Truck, error) {
	truck, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		truck.Title = *in.Title
	}
	if in.Description != nil {
		truck.Description = *in.Description
	}
	if in.Category != nil {
		truck.Category = *in.Category
	}
	if in.ImageURL != nil {
		truck.ImageURL = *in.ImageURL
	}
	if in.Specifications != nil {
		truck.Specifications = *in.Specifications
	}
	truck.UpdatedAt = time.Now()

	if err := s.trucks.Update(ctx, truck); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrTruckNotFound
		}
		return nil, err
	}
	return truck, nil
}

func (s *truckService) Delete(ctx context.Context, id uint) error {
	removed, err := s.trucks.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrTruckNotFound
	}
	return nil
}
