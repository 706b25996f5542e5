package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an authentication record. Users are not mutable through the
// public API; admins are seeded at startup.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password  string    `json:"-" db:"password" gorm:"type:text;not null"`
	IsAdmin   bool      `json:"isAdmin" db:"is_admin" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
