package service

import (
	"context"
	stderrors "errors"
	"time"

	"golang.org/x/sync/errgroup"

	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/query"
	"foodtruck/internal/repository"
)

// CreateQuoteInput holds the fields accepted from the quote form.
type CreateQuoteInput struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	FoodTruckID *uint
}

// QuoteService handles quote request operations.
type QuoteService interface {
	List(ctx context.Context, status string, page, limit int) ([]model.QuoteRequest, query.Pagination, error)
	Create(ctx context.Context, in CreateQuoteInput) (*model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uint, status model.QuoteStatus) (*model.QuoteRequest, error)
	Delete(ctx context.Context, id uint) error
}

type quoteService struct {
	quotes repository.QuoteRepository
	trucks repository.TruckRepository
}

// NewQuoteService creates a new quote service.
func NewQuoteService(quotes repository.QuoteRepository, trucks repository.TruckRepository) QuoteService {
	return &quoteService{quotes: quotes, trucks: trucks}
}

// List returns quote requests newest first, optionally filtered by
// status, with the referenced truck title resolved. Quotes and trucks
// are independent collections, so they are fetched concurrently.
func (s *quoteService) List(ctx context.Context, status string, page, limit int) ([]model.QuoteRequest, query.Pagination, error) {
	var (
		quotes []model.QuoteRequest
		trucks []model.Truck
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = s.quotes.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		trucks, err = s.trucks.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, query.Pagination{}, err
	}

	titles := make(map[uint]string, len(trucks))
	for _, t := range trucks {
		titles[t.ID] = t.Title
	}
	for i := range quotes {
		// Weak reference: a deleted truck leaves the title null.
		if id := quotes[i].FoodTruckID; id != nil {
			if title, ok := titles[*id]; ok {
				quotes[i].FoodTruckTitle = &title
			}
		}
	}

	if status != "" {
		quotes = query.Filter(quotes, func(q model.QuoteRequest) bool {
			return string(q.Status) == status
		})
	}
	quotes = query.SortNewestFirst(quotes, func(q model.QuoteRequest) time.Time { return q.CreatedAt })

	pageItems, pagination := query.Paginate(quotes, page, limit)
	return pageItems, pagination, nil
}

func (s *quoteService) Create(ctx context.Context, in CreateQuoteInput) (*model.QuoteRequest, error) {
	quote := &model.QuoteRequest{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		FoodTruckID: in.FoodTruckID,
		Status:      model.QuoteStatusPending,
	}
	if err := s.quotes.Create(ctx, quote); err != nil {
		return nil, err
	}
	return quote, nil
}

// UpdateStatus sets the status label. Any of the three values can
// follow any other; anything else is rejected before the store is
// touched.
func (s *quoteService) UpdateStatus(ctx context.Context, id uint, status model.QuoteStatus) (*model.QuoteRequest, error) {
	if !status.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	quote, err := s.quotes.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrQuoteNotFound
		}
		return nil, err
	}

	quote.Status = status
	if err := s.quotes.Update(ctx, quote); err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, errors.ErrQuoteNotFound
		}
		return nil, err
	}
	return quote, nil
}

func (s *quoteService) Delete(ctx context.Context, id uint) error {
	removed, err := s.quotes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrQuoteNotFound
	}
	return nil
}
