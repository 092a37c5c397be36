package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	// UserID owns the availability the appointment was booked against.
	UserID string `gorm:"size:36;index;not null" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	RecipientID string `gorm:"size:36;index;not null" json:"recipientId"`
	Recipient   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title string    `gorm:"size:255" json:"title"`
	Start time.Time `gorm:"column:start_at;not null" json:"start"`
	End   time.Time `gorm:"column:end_at;not null" json:"end"`

	CreatedAt time.Time `json:"created_at"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
