package api

import (
	"github.com/klypso/agency-backend/auth"
	"github.com/klypso/agency-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens auth.TokenIssuer, notifier EnquiryNotifier) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(db.ProjectRepo()),
		blogHandler:    newBlogHandler(db.BlogRepo()),
		jobHandler:     newJobHandler(db.JobRepo()),
		enquiryHandler: newEnquiryHandler(db.EnquiryRepo(), notifier),
		userHandler:    newUserHandler(db.UserRepo(), tokens),
	}
}
