package api

import (
	"github.com/klypso/agency-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	blogHandler    blogHandler
	jobHandler     jobHandler
	enquiryHandler enquiryHandler
	userHandler    userHandler
}

// EnquiryNotifier is the collaborator that emails the team about new leads.
// Dispatch is best effort and runs off the request path.
type EnquiryNotifier interface {
	NotifyNewEnquiry(enquiry models.Enquiry)
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
