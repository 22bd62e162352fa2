package models

import (
	"time"
)

// Profile holds the personal details attached to a user. The unique index on
// UserID is the store-level form of the one-profile-per-user invariant; the
// service re-checks it inside the create transaction for a friendlier error.
type Profile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FirstName   string    `gorm:"not null" json:"firstName"`
	LastName    string    `gorm:"not null" json:"lastName"`
	DateOfBirth time.Time `gorm:"not null" json:"dateOfBirth"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"userId"`
}

// TableName specifies the table name for GORM
func (Profile) TableName() string {
	return "profiles"
}
