package filestore

import (
	"context"
	"time"

	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// TruckStore is the file-backed truck collection.
type TruckStore struct {
	col *collection[model.Truck]
}

func newTruckStore(dir string) *TruckStore {
	return &TruckStore{col: newCollection[model.Truck](dir, trucksFile, nil)}
}

func (s *TruckStore) List(ctx context.Context) ([]model.Truck, error) {
	var out []model.Truck
	err := s.col.view(func(items []model.Truck) error {
		out = append(out, items...)
		return nil
	})
	return out, err
}

func (s *TruckStore) FindByID(ctx context.Context, id uint) (*model.Truck, error) {
	var found *model.Truck
	err := s.col.view(func(items []model.Truck) error {
		for i := range items {
			if items[i].ID == id {
				t := items[i]
				found = &t
				return nil
			}
		}
		return repository.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (s *TruckStore) Create(ctx context.Context, truck *model.Truck) error {
	return s.col.update(func(items []model.Truck) ([]model.Truck, error) {
		now := time.Now()
		truck.ID = nextID(items, func(t model.Truck) uint { return t.ID })
		truck.CreatedAt = now
		truck.UpdatedAt = now
		return append(items, *truck), nil
	})
}

func (s *TruckStore) Update(ctx context.Context, truck *model.Truck) error {
	return s.col.update(func(items []model.Truck) ([]model.Truck, error) {
		for i := range items {
			if items[i].ID == truck.ID {
				items[i] = *truck
				return items, nil
			}
		}
		return nil, repository.ErrNotFound
	})
}

func (s *TruckStore) Delete(ctx context.Context, id uint) (bool, error) {
	removed := false
	err := s.col.update(func(items []model.Truck) ([]model.Truck, error) {
		for i := range items {
			if items[i].ID == id {
				removed = true
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return items, nil
	})
	return removed, err
}
