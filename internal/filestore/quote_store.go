package filestore

import (
	"context"
	"time"

	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// QuoteStore is the file-backed quote request collection.
type QuoteStore struct {
	col *collection[model.QuoteRequest]
}

func newQuoteStore(dir string) *QuoteStore {
	return &QuoteStore{col: newCollection[model.QuoteRequest](dir, quotesFile, nil)}
}

func (s *QuoteStore) List(ctx context.Context) ([]model.QuoteRequest, error) {
	var out []model.QuoteRequest
	err := s.col.view(func(items []model.QuoteRequest) error {
		out = append(out, items...)
		return nil
	})
	return out, err
}

func (s *QuoteStore) FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error) {
	var found *model.QuoteRequest
	err := s.col.view(func(items []model.QuoteRequest) error {
		for i := range items {
			if items[i].ID == id {
				q := items[i]
				found = &q
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

func (s *QuoteStore) Create(ctx context.Context, quote *model.QuoteRequest) error {
	return s.col.update(func(items []model.QuoteRequest) ([]model.QuoteRequest, error) {
		quote.ID = nextID(items, func(q model.QuoteRequest) uint { return q.ID })
		quote.CreatedAt = time.Now()
		return append(items, *quote), nil
	})
}

func (s *QuoteStore) Update(ctx context.Context, quote *model.QuoteRequest) error {
	return s.col.update(func(items []model.QuoteRequest) ([]model.QuoteRequest, error) {
		for i := range items {
			if items[i].ID == quote.ID {
				items[i] = *quote
				return items, nil
			}
		}
		return nil, repository.ErrNotFound
	})
}

func (s *QuoteStore) Delete(ctx context.Context, id uint) (bool, error) {
	removed := false
	err := s.col.update(func(items []model.QuoteRequest) ([]model.QuoteRequest, error) {
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
