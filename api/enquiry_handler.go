package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/klypso/agency-backend/database"
	"github.com/klypso/agency-backend/errs"
	"github.com/klypso/agency-backend/models"
)

type enquiryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	enquiryRepo *database.EnquiryRepo
	notifier    EnquiryNotifier
}

func newEnquiryHandler(enquiryRepo *database.EnquiryRepo, notifier EnquiryNotifier) enquiryHandler {
	logger := log.With().Str("handlerName", "enquiryHandler").Logger()

	return enquiryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		enquiryRepo: enquiryRepo,
		notifier:    notifier,
	}
}

// EnquiryCollection represents multiple enquiries
type EnquiryCollection struct {
	Enquiries []*models.Enquiry `json:"enquiries"`
	Total     int               `json:"total"`
}

// enquiryCreateRequest is the public lead-submission payload.
type enquiryCreateRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          *string  `json:"phone"`
	Service        string   `json:"service"`
	ProjectType    string   `json:"projectType"`
	Budget         *string  `json:"budget"`
	Timeline       *string  `json:"timeline"`
	Message        string   `json:"message"`
	ReferenceLinks []string `json:"referenceLinks"`
}

// createEnquiry accepts a public lead submission
// @Summary Submit enquiry
// @Description Persists a lead submission and emails the team about it. The email is best effort and never blocks or fails the request.
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param enquiry body enquiryCreateRequest true "Enquiry data"
// @Success 201 {object} models.Enquiry "Created enquiry"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid enquiry data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating enquiry"
// @Router /api/enquiries [post]
func (h enquiryHandler) createEnquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req enquiryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode enquiry request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if req.Service == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("service"))
			return
		}
		if !models.IsEnquiryService(req.Service) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("service", "not an offered service"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}
		if req.ProjectType == "" {
			req.ProjectType = models.DefaultEnquiryProjectType
		}
		if !models.IsEnquiryProjectType(req.ProjectType) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("projectType", "not a known project type"))
			return
		}

		enquiry := models.Enquiry{
			ID:             uuid.New(),
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Service:        req.Service,
			ProjectType:    req.ProjectType,
			Budget:         req.Budget,
			Timeline:       req.Timeline,
			Message:        req.Message,
			ReferenceLinks: datatypes.NewJSONSlice(req.ReferenceLinks),
			Status:         models.DefaultEnquiryStatus,
			CreatedAt:      time.Now(),
		}

		if err := h.enquiryRepo.Add(&enquiry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create enquiry", "enquiry", err))
			return
		}

		// Fire and forget: the caller gets its 201 regardless of whether
		// the notification email ever goes out.
		go h.notifier.NotifyNewEnquiry(enquiry)

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, enquiry)
	}
}

// getAllEnquiries retrieves all enquiries
// @Summary Get all enquiries
// @Description Retrieves every enquiry, newest first (admin only)
// @Tags Enquiries
// @Accept json
// @Produce json
// @Success 200 {object} EnquiryCollection "List of enquiries"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching enquiries"
// @Router /api/enquiries [get]
func (h enquiryHandler) getAllEnquiries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enquiries, err := h.enquiryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find enquiries", "enquiries", err))
			return
		}

		h.responder.WriteJSON(w, EnquiryCollection{
			Enquiries: enquiries,
			Total:     len(enquiries),
		})
	}
}

// deleteEnquiry deletes an enquiry by ID
// @Summary Delete enquiry
// @Description Deletes an enquiry from the database by ID (admin only)
// @Tags Enquiries
// @Accept json
// @Produce json
// @Param enquiryID path string true "Enquiry ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid enquiryID"
// @Failure 404 {object} ErrorResponse "Not Found - Enquiry not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting enquiry"
// @Router /api/enquiries/{enquiryID} [delete]
func (h enquiryHandler) deleteEnquiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		enquiryID, err := uuid.Parse(chi.URLParam(r, "enquiryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid enquiryID"))
			return
		}

		existing, err := h.enquiryRepo.FindByID(enquiryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find enquiry", "enquiry", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("enquiry not found"))
			return
		}

		if err := h.enquiryRepo.Delete(enquiryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete enquiry", "enquiry", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "enquiry deleted successfully",
		})
	}
}
