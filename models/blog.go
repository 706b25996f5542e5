package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Blog status values. Drafts are only visible to admin callers.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

// BlogCategories is the closed set of categories a post may belong to.
var BlogCategories = []string{
	"Tech", "Design", "Marketing", "Business", "Agency", "Culture",
	"Architecture", "Strategy", "Insights", "Engineering", "Security",
	"Web3", "FinTech",
}

// IsBlogCategory reports whether v is a member of BlogCategories.
func IsBlogCategory(v string) bool {
	return slices.Contains(BlogCategories, v)
}

// IsBlogStatus reports whether v is a valid blog status.
func IsBlogStatus(v string) bool {
	return v == BlogStatusDraft || v == BlogStatusPublished
}

// Blog represents a blog post with publication metadata
type Blog struct {
	ID        uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Author    string                      `json:"author" db:"author" gorm:"type:text;not null"`
	Category  string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Image     string                      `json:"image" db:"image" gorm:"type:text;not null"`
	Excerpt   string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content   string                      `json:"content,omitempty" db:"content" gorm:"type:text"`
	ReadTime  string                      `json:"readTime" db:"read_time" gorm:"type:text;not null"`
	Tags      datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Slug      *string                     `json:"slug,omitempty" db:"slug" gorm:"type:text;uniqueIndex"`
	Status    string                      `json:"status" db:"status" gorm:"type:text;not null"`
	CreatedAt time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt time.Time                   `json:"updatedAt" db:"updated_at" gorm:"type:timestamp"`
}

// Published reports whether the post is visible to non-admin callers.
func (b Blog) Published() bool {
	return b.Status == BlogStatusPublished
}
