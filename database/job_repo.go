package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/klypso/agency-backend/models"
)

type JobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) *JobRepo {
	return &JobRepo{db}
}

// FindAll returns every job posting, newest first.
func (r *JobRepo) FindAll() ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// FindActive returns only active postings, newest first.
func (r *JobRepo) FindActive() ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

// FindByID returns a job posting by its ID, or nil when no row matches.
func (r *JobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Add inserts a new job posting into the database
func (r *JobRepo) Add(job *models.Job) error {
	return r.db.Create(job).Error
}

// Update updates an existing job posting in the database
func (r *JobRepo) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes a job posting from the database by id
func (r *JobRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Job{}, "id = ?", id).Error
}
