package filestore

import (
	"context"
	"time"

	"foodtruck/internal/model"
	"foodtruck/internal/repository"
)

// MessageStore is the file-backed contact message collection.
type MessageStore struct {
	col *collection[model.ContactMessage]
}

func newMessageStore(dir string) *MessageStore {
	return &MessageStore{col: newCollection[model.ContactMessage](dir, messagesFile, nil)}
}

func (s *MessageStore) List(ctx context.Context) ([]model.ContactMessage, error) {
	var out []model.ContactMessage
	err := s.col.view(func(items []model.ContactMessage) error {
		out = append(out, items...)
		return nil
	})
	return out, err
}

func (s *MessageStore) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var found *model.ContactMessage
	err := s.col.view(func(items []model.ContactMessage) error {
		for i := range items {
			if items[i].ID == id {
				m := items[i]
				found = &m
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

func (s *MessageStore) Create(ctx context.Context, msg *model.ContactMessage) error {
	return s.col.update(func(items []model.ContactMessage) ([]model.ContactMessage, error) {
		msg.ID = nextID(items, func(m model.ContactMessage) uint { return m.ID })
		msg.CreatedAt = time.Now()
		return append(items, *msg), nil
	})
}

func (s *MessageStore) Delete(ctx context.Context, id uint) (bool, error) {
	removed := false
	err := s.col.update(func(items []model.ContactMessage) ([]model.ContactMessage, error) {
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
