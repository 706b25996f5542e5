package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Testimonial is a client quote attached to a project case study.
type Testimonial struct {
	Quote  string `json:"quote,omitempty"`
	Author string `json:"author,omitempty"`
	Role   string `json:"role,omitempty"`
}

// Project represents a portfolio case study shown on the agency site
type Project struct {
	ID              uuid.UUID                       `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string                          `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                          `json:"description" db:"description" gorm:"type:text;not null"`
	FullDescription *string                         `json:"fullDescription,omitempty" db:"full_description" gorm:"type:text"`
	Image           string                          `json:"image" db:"image" gorm:"type:text;not null"`
	Categories      datatypes.JSONSlice[string]     `json:"categories" db:"categories"`
	Challenge       *string                         `json:"challenge,omitempty" db:"challenge" gorm:"type:text"`
	Solution        *string                         `json:"solution,omitempty" db:"solution" gorm:"type:text"`
	Technologies    datatypes.JSONSlice[string]     `json:"technologies" db:"technologies"`
	Impact          *string                         `json:"impact,omitempty" db:"impact" gorm:"type:text"`
	Testimonial     datatypes.JSONType[Testimonial] `json:"testimonial,omitempty" db:"testimonial"`
	Gallery         datatypes.JSONSlice[string]     `json:"gallery" db:"gallery"`
	Link            *string                         `json:"link,omitempty" db:"link" gorm:"type:text"`
	CreatedAt       time.Time                       `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
