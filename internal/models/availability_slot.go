package models

import "time"

// AvailabilitySlot is an open interval a user advertises as bookable.
// The set for a user is always replaced as a whole.
type AvailabilitySlot struct {
	ID     uint   `gorm:"primaryKey" json:"-"`
	UserID string `gorm:"size:36;index;not null" json:"-"`

	Start time.Time `gorm:"column:start_at;not null" json:"start"`
	End   time.Time `gorm:"column:end_at;not null" json:"end"`

	CreatedAt time.Time `json:"-"`
}
