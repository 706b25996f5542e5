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

type jobHandler struct {
	responder Responder
	logger    zerolog.Logger
	jobRepo   *database.JobRepo
}

func newJobHandler(jobRepo *database.JobRepo) jobHandler {
	logger := log.With().Str("handlerName", "jobHandler").Logger()

	return jobHandler{
		responder: NewResponder(logger),
		logger:    logger,
		jobRepo:   jobRepo,
	}
}

// JobCollection represents multiple job postings
type JobCollection struct {
	Jobs  []*models.Job `json:"jobs"`
	Total int           `json:"total"`
}

// jobCreateRequest carries the fields a new posting accepts. IsActive
// defaults to true unless explicitly disabled.
type jobCreateRequest struct {
	Role         string   `json:"role"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	IsActive     *bool    `json:"isActive"`
}

// jobPatch is the allow-listed set of fields an update may change.
type jobPatch struct {
	Role         *string   `json:"role"`
	Type         *string   `json:"type"`
	Location     *string   `json:"location"`
	Description  *string   `json:"description"`
	Requirements *[]string `json:"requirements"`
	IsActive     *bool     `json:"isActive"`
}

func (p jobPatch) applyTo(job *models.Job) {
	if p.Role != nil {
		job.Role = *p.Role
	}
	if p.Type != nil {
		job.Type = *p.Type
	}
	if p.Location != nil {
		job.Location = *p.Location
	}
	if p.Description != nil {
		job.Description = *p.Description
	}
	if p.Requirements != nil {
		job.Requirements = datatypes.NewJSONSlice(*p.Requirements)
	}
	if p.IsActive != nil {
		job.IsActive = *p.IsActive
	}
}

// getAllJobs retrieves job postings visible to the caller
// @Summary Get job postings
// @Description Returns active postings for public callers and every posting for admins
// @Tags Jobs
// @Accept json
// @Produce json
// @Success 200 {object} JobCollection "List of job postings"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching jobs"
// @Router /api/jobs [get]
func (h jobHandler) getAllJobs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			jobs []*models.Job
			err  error
		)
		if isAdminCtx(r.Context()) {
			jobs, err = h.jobRepo.FindAll()
		} else {
			jobs, err = h.jobRepo.FindActive()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find jobs", "jobs", err))
			return
		}

		h.responder.WriteJSON(w, JobCollection{
			Jobs:  jobs,
			Total: len(jobs),
		})
	}
}

// createJob creates a new job posting
// @Summary Create job posting
// @Description Creates a new job posting, active by default (admin only)
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body jobCreateRequest true "Job posting data"
// @Success 201 {object} models.Job "Created job posting"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid job data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating job"
// @Router /api/jobs [post]
func (h jobHandler) createJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req jobCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode job request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Role == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("role"))
			return
		}
		if req.Type == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("type"))
			return
		}
		if req.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}
		if req.Location == "" {
			req.Location = "Remote"
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		job := models.Job{
			ID:           uuid.New(),
			Role:         req.Role,
			Type:         req.Type,
			Location:     req.Location,
			Description:  req.Description,
			Requirements: datatypes.NewJSONSlice(req.Requirements),
			IsActive:     isActive,
			CreatedAt:    time.Now(),
		}

		if err := h.jobRepo.Add(&job); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create job", "job", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, job)
	}
}

// updateJob updates an existing job posting
// @Summary Update job posting
// @Description Applies a partial update to an existing job posting (admin only)
// @Tags Jobs
// @Accept json
// @Produce json
// @Param jobID path string true "Job ID" format(uuid)
// @Param job body jobPatch true "Fields to update"
// @Success 200 {object} models.Job "Updated job posting"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid job data"
// @Failure 404 {object} ErrorResponse "Not Found - Job not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating job"
// @Router /api/jobs/{jobID} [put]
func (h jobHandler) updateJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid jobID"))
			return
		}

		existing, err := h.jobRepo.FindByID(jobID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find job", "job", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("job posting not found"))
			return
		}

		var patch jobPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode job patch body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if patch.Role != nil && *patch.Role == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("role", "cannot be empty"))
			return
		}

		patch.applyTo(existing)

		if err := h.jobRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update job", "job", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteJob deletes a job posting by ID
// @Summary Delete job posting
// @Description Deletes a job posting from the database by ID (admin only)
// @Tags Jobs
// @Accept json
// @Produce json
// @Param jobID path string true "Job ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid jobID"
// @Failure 404 {object} ErrorResponse "Not Found - Job not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting job"
// @Router /api/jobs/{jobID} [delete]
func (h jobHandler) deleteJob() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := uuid.Parse(chi.URLParam(r, "jobID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid jobID"))
			return
		}

		existing, err := h.jobRepo.FindByID(jobID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find job", "job", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("job posting not found"))
			return
		}

		if err := h.jobRepo.Delete(jobID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete job", "job", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "job posting deleted successfully",
		})
	}
}
