// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered user. Username is unique at the store level;
// the validation-layer pre-check is advisory only.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	// AuthStrategy is reserved for a future authentication integration.
	AuthStrategy *string `json:"authStrategy,omitempty"`
	Profile      *Profile `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"profile,omitempty"`
	Posts        []Post   `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"posts,omitempty"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
