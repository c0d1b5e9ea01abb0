package service

import (
	"context"
	"time"

	"foodtruck/internal/errors"
	"foodtruck/internal/model"
	"foodtruck/internal/query"
	"foodtruck/internal/repository"
)

// CreateMessageInput holds the fields accepted from the contact form.
type CreateMessageInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// MessageService handles contact message operations.
type MessageService interface {
	List(ctx context.Context, page, limit int) ([]model.ContactMessage, query.Pagination, error)
	Create(ctx context.Context, in CreateMessageInput) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
}

type messageService struct {
	messages repository.MessageRepository
}

// NewMessageService creates a new contact message service.
func NewMessageService(messages repository.MessageRepository) MessageService {
	return &messageService{messages: messages}
}

func (s *messageService) List(ctx context.Context, page, limit int) ([]model.ContactMessage, query.Pagination, error) {
	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, query.Pagination{}, err
	}
	msgs = query.SortNewestFirst(msgs, func(m model.ContactMessage) time.Time { return m.CreatedAt })
	pageItems, pagination := query.Paginate(msgs, page, limit)
	return pageItems, pagination, nil
}

func (s *messageService) Create(ctx context.Context, in CreateMessageInput) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *messageService) Delete(ctx context.Context, id uint) error {
	removed, err := s.messages.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errors.ErrMessageNotFound
	}
	return nil
}
