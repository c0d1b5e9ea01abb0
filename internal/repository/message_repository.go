package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodtruck/internal/model"
)

// MessageRepository defines contact message persistence operations.
type MessageRepository interface {
	List(ctx context.Context) ([]model.ContactMessage, error)
	FindByID(ctx context.Context, id uint) (*model.ContactMessage, error)
	Create(ctx context.Context, msg *model.ContactMessage) error
	Delete(ctx context.Context, id uint) (bool, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a GORM-backed repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	var msgs []model.ContactMessage
	if err := r.db.WithContext(ctx).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *messageRepository) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *messageRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.ContactMessage{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
