package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/klypso/agency-backend/models"
)

type EnquiryRepo struct {
	db *gorm.DB
}

func NewEnquiryRepo(db *gorm.DB) *EnquiryRepo {
	return &EnquiryRepo{db}
}

// FindAll returns every enquiry, newest first.
func (r *EnquiryRepo) FindAll() ([]*models.Enquiry, error) {
	var enquiries []*models.Enquiry
	err := r.db.Order("created_at DESC").Find(&enquiries).Error
	return enquiries, err
}

// FindByID returns an enquiry by its ID, or nil when no row matches.
func (r *EnquiryRepo) FindByID(id uuid.UUID) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := r.db.First(&enquiry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enquiry, nil
}

// Add inserts a new enquiry into the database
func (r *EnquiryRepo) Add(enquiry *models.Enquiry) error {
	return r.db.Create(enquiry).Error
}

// Update updates an existing enquiry in the database
func (r *EnquiryRepo) Update(enquiry *models.Enquiry) error {
	return r.db.Save(enquiry).Error
}

// Delete removes an enquiry from the database by id
func (r *EnquiryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Enquiry{}, "id = ?", id).Error
}
