package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is either a registered account (Username set) or an anonymous
// visitor created while booking.
type User struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`

	Username     *string `gorm:"size:100;uniqueIndex" json:"-"`
	PasswordHash string  `gorm:"size:255" json:"-"`
	Anonymous    bool    `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
