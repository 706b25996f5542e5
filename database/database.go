package database

import (
	"gorm.io/gorm"

	"github.com/klypso/agency-backend/models"
)

// Database bundles one repository per entity over a shared GORM instance.
// It is constructed once at process start and injected into the API layer;
// there is no ambient singleton.
type Database struct {
	projectRepo *ProjectRepo
	blogRepo    *BlogRepo
	jobRepo     *JobRepo
	enquiryRepo *EnquiryRepo
	userRepo    *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		blogRepo:    NewBlogRepo(db),
		jobRepo:     NewJobRepo(db),
		enquiryRepo: NewEnquiryRepo(db),
		userRepo:    NewUserRepo(db),
	}
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Blog{},
		&models.Job{},
		&models.Enquiry{},
		&models.User{},
	)
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) JobRepo() *JobRepo {
	return d.jobRepo
}

func (d Database) EnquiryRepo() *EnquiryRepo {
	return d.enquiryRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
