package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EnquiryServices is the closed set of services a lead can ask about.
// The values mirror the options offered by the contact and order forms.
var EnquiryServices = []string{
	"Web Architecture",
	"Mobile Experience",
	"Organic Strategy (SEO)",
	"Visual Assets & Photo",
	"Intelligence Systems",
	"Professional Photography",
	"Brand Narrative",
	"Architecture",
	"Digital Marketing",
	"Other Evolution",
	"Web Development",
	"Website Development & Integration",
	"App Development",
	"SEO & Content Strategy",
	"UI/UX Design",
	"Social Media Management",
	"Creative Content",
	"Content Creation",
	"Photography",
	"Other",
}

// EnquiryProjectTypes is the closed set of engagement kinds.
var EnquiryProjectTypes = []string{
	"New Project", "Redesign", "Maintenance", "Consultation",
}

// EnquiryStatuses tracks how far along the follow-up with a lead is.
var EnquiryStatuses = []string{
	"New", "Contacted", "Quoted", "In Progress", "Completed", "Closed",
}

const (
	DefaultEnquiryProjectType = "New Project"
	DefaultEnquiryStatus      = "New"
)

// IsEnquiryService reports whether v is a member of EnquiryServices.
func IsEnquiryService(v string) bool {
	return slices.Contains(EnquiryServices, v)
}

// IsEnquiryProjectType reports whether v is a member of EnquiryProjectTypes.
func IsEnquiryProjectType(v string) bool {
	return slices.Contains(EnquiryProjectTypes, v)
}

// IsEnquiryStatus reports whether v is a member of EnquiryStatuses.
func IsEnquiryStatus(v string) bool {
	return slices.Contains(EnquiryStatuses, v)
}

// Enquiry represents a lead submitted through the public contact funnel
type Enquiry struct {
	ID             uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Email          string                      `json:"email" db:"email" gorm:"type:text;not null"`
	Phone          *string                     `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Service        string                      `json:"service" db:"service" gorm:"type:text;not null"`
	ProjectType    string                      `json:"projectType" db:"project_type" gorm:"type:text;not null"`
	Budget         *string                     `json:"budget,omitempty" db:"budget" gorm:"type:text"`
	Timeline       *string                     `json:"timeline,omitempty" db:"timeline" gorm:"type:text"`
	Message        string                      `json:"message" db:"message" gorm:"type:text;not null"`
	ReferenceLinks datatypes.JSONSlice[string] `json:"referenceLinks" db:"reference_links"`
	Status         string                      `json:"status" db:"status" gorm:"type:text;not null"`
	CreatedAt      time.Time                   `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`
}
