package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/klypso/agency-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns every blog post, newest first.
func (r *BlogRepo) FindAll() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindPublished returns only published posts, newest first.
func (r *BlogRepo) FindPublished() ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Where("status = ?", models.BlogStatusPublished).
		Order("created_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindByID returns a blog post by its ID, or nil when no row matches.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog post by its slug, or nil when no row matches.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlugOrID resolves a URL key that may be a slug or an ID. The slug
// lookup always runs first so a slug that happens to parse as a UUID still
// wins over an ID match.
func (r *BlogRepo) FindBySlugOrID(key string) (*models.Blog, error) {
	blog, err := r.FindBySlug(key)
	if err != nil || blog != nil {
		return blog, err
	}
	id, parseErr := uuid.Parse(key)
	if parseErr != nil {
		return nil, nil
	}
	return r.FindByID(id)
}

// Add inserts a new blog post into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// Update updates an existing blog post in the database
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog post from the database by id
func (r *BlogRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Blog{}, "id = ?", id).Error
}
