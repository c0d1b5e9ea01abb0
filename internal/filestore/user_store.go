package filestore

import (
	"context"
	"time"

	"foodtruck/internal/fixture"
	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// storedUser is the on-disk user shape. The password hash is persisted
// here even though model.User never serializes it.
type storedUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func toStored(u model.User) storedUser {
	return storedUser{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func fromStored(u storedUser) model.User {
	return model.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.Password,
		Name:         u.Name,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}

// UserStore is the file-backed admin user collection. A fresh file is
// seeded with the default admin account.
type UserStore struct {
	col *collection[storedUser]
}

func newUserStore(dir string) *UserStore {
	seed := func() []storedUser {
		return []storedUser{toStored(fixture.DefaultAdmin())}
	}
	return &UserStore{col: newCollection[storedUser](dir, usersFile, seed)}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var found *model.User
	err := s.col.view(func(items []storedUser) error {
		for _, it := range items {
			if it.Email == email {
				u := fromStored(it)
				found = &u
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

func (s *UserStore) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var found *model.User
	err := s.col.view(func(items []storedUser) error {
		for _, it := range items {
			if it.ID == id {
				u := fromStored(it)
				found = &u
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

func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	return s.col.update(func(items []storedUser) ([]storedUser, error) {
		user.ID = nextID(items, func(u storedUser) uint { return u.ID })
		user.CreatedAt = time.Now()
		return append(items, toStored(*user)), nil
	})
}
