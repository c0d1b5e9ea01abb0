package model

import "time"

// QuoteStatus represents the processing state of a quote request.
type QuoteStatus string

const (
	QuoteStatusPending    QuoteStatus = "pending"
	QuoteStatusInProgress QuoteStatus = "in_progress"
	QuoteStatusCompleted  QuoteStatus = "completed"
)

// Valid reports whether the status is one of the three known values.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusInProgress, QuoteStatusCompleted:
		return true
	}
	return false
}

// QuoteRequest represents a customer's request for a quote on a truck
// build. FoodTruckID is a weak reference: deleting the truck does not
// cascade, and the title is resolved at read time.
type QuoteRequest struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Name        string      `json:"name" gorm:"size:255;not null"`
	Email       string      `json:"email" gorm:"size:255;not null"`
	Phone       string      `json:"phone" gorm:"size:20;not null"`
	Message     string      `json:"message,omitempty" gorm:"type:text"`
	FoodTruckID *uint       `json:"food_truck_id,omitempty" gorm:"index"`
	Status      QuoteStatus `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	CreatedAt   time.Time   `json:"created_at"`

	// FoodTruckTitle is filled by the quote listing join, never persisted.
	FoodTruckTitle *string `json:"food_truck_title,omitempty" gorm:"-"`
}

// TableName keeps the table name used by the existing schema.
func (QuoteRequest) TableName() string {
	return "quote_requests"
}
