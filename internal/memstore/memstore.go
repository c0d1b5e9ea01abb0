// Package memstore implements the repository contract in memory. It is
// the fallback backend used when MySQL is unreachable: the process
// stays functional against the fixture catalog instead of failing
// outright. Each Store is an explicitly constructed instance with no
// package-level state, so tests can build and discard as many as they
// need.
package memstore

import (
	"context"
	"sync"
	"time"

	"foodtruck/internal/fixture"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// Store holds all collections behind one mutex. Quote and message
// collections start empty; trucks and users are seeded.
type Store struct {
	mu       sync.RWMutex
	trucks   []model.Truck
	quotes   []model.QuoteRequest
	messages []model.ContactMessage
	users    []model.User
}

// New builds a store seeded with the fixture catalog and default admin.
func New() *Store {
	return &Store{
		trucks: fixture.Trucks(),
		users:  []model.User{fixture.DefaultAdmin()},
	}
}

// Empty builds a store with no records at all.
func Empty() *Store {
	return &Store{}
}

// Trucks returns the truck collection.
func (s *Store) Trucks() repository.TruckRepository { return (*truckStore)(s) }

// Quotes returns the quote request collection.
func (s *Store) Quotes() repository.QuoteRepository { return (*quoteStore)(s) }

// Messages returns the contact message collection.
func (s *Store) Messages() repository.MessageRepository { return (*messageStore)(s) }

// Users returns the admin user collection.
func (s *Store) Users() repository.UserRepository { return (*userStore)(s) }

func nextID[T any](items []T, id func(T) uint) uint {
	var max uint
	for _, it := range items {
		if v := id(it); v > max {
			max = v
		}
	}
	return max + 1
}

type truckStore Store

func (s *truckStore) List(ctx context.Context) ([]model.Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Truck, len(s.trucks))
	copy(out, s.trucks)
	return out, nil
}

func (s *truckStore) FindByID(ctx context.Context, id uint) (*model.Truck, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.trucks {
		if s.trucks[i].ID == id {
			t := s.trucks[i]
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *truckStore) Create(ctx context.Context, truck *model.Truck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	truck.ID = nextID(s.trucks, func(t model.Truck) uint { return t.ID })
	truck.CreatedAt = now
	truck.UpdatedAt = now
	s.trucks = append(s.trucks, *truck)
	return nil
}

func (s *truckStore) Update(ctx context.Context, truck *model.Truck) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trucks {
		if s.trucks[i].ID == truck.ID {
			s.trucks[i] = *truck
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *truckStore) Delete(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trucks {
		if s.trucks[i].ID == id {
			s.trucks = append(s.trucks[:i], s.trucks[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type quoteStore Store

func (s *quoteStore) List(ctx context.Context) ([]model.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.QuoteRequest, len(s.quotes))
	copy(out, s.quotes)
	return out, nil
}

func (s *quoteStore) FindByID(ctx context.Context, id uint) (*model.QuoteRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			q := s.quotes[i]
			return &q, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *quoteStore) Create(ctx context.Context, quote *model.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	quote.ID = nextID(s.quotes, func(q model.QuoteRequest) uint { return q.ID })
	quote.CreatedAt = time.Now()
	s.quotes = append(s.quotes, *quote)
	return nil
}

func (s *quoteStore) Update(ctx context.Context, quote *model.QuoteRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes {
		if s.quotes[i].ID == quote.ID {
			s.quotes[i] = *quote
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *quoteStore) Delete(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.quotes {
		if s.quotes[i].ID == id {
			s.quotes = append(s.quotes[:i], s.quotes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type messageStore Store

func (s *messageStore) List(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.ContactMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *messageStore) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *messageStore) Create(ctx context.Context, msg *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg.ID = nextID(s.messages, func(m model.ContactMessage) uint { return m.ID })
	msg.CreatedAt = time.Now()
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *messageStore) Delete(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type userStore Store

func (s *userStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStore) FindByID(ctx context.Context, id uint) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = nextID(s.users, func(u model.User) uint { return u.ID })
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}
