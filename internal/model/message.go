package model

import "time"

// ContactMessage represents a message submitted through the contact form.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Phone     string    `json:"phone,omitempty" gorm:"size:20"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name used by the existing schema.
func (ContactMessage) TableName() string {
	return "contact_messages"
}
