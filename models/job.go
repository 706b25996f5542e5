package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Job represents an open position listed on the careers page
type Job struct {
	ID           uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Role         string                      `json:"role" db:"role" gorm:"type:text;not null"`
	Type         string                      `json:"type" db:"type" gorm:"type:text;not null"`
	Location     string                      `json:"location" db:"location" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Requirements datatypes.JSONSlice[string] `json:"requirements" db:"requirements"`
	IsActive     bool                        `json:"isActive" db:"is_active" gorm:"not null"`
	CreatedAt    time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
