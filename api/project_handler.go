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

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectCollection represents multiple projects
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// projectPatch is the allow-listed set of fields an update may change.
// Decoding into pointers distinguishes "absent" from "set to zero value".
type projectPatch struct {
	Title           *string             `json:"title"`
	Description     *string             `json:"description"`
	FullDescription *string             `json:"fullDescription"`
	Image           *string             `json:"image"`
	Categories      *[]string           `json:"categories"`
	Challenge       *string             `json:"challenge"`
	Solution        *string             `json:"solution"`
	Technologies    *[]string           `json:"technologies"`
	Impact          *string             `json:"impact"`
	Testimonial     *models.Testimonial `json:"testimonial"`
	Gallery         *[]string           `json:"gallery"`
	Link            *string             `json:"link"`
}

func (p projectPatch) applyTo(project *models.Project) {
	if p.Title != nil {
		project.Title = *p.Title
	}
	if p.Description != nil {
		project.Description = *p.Description
	}
	if p.FullDescription != nil {
		project.FullDescription = p.FullDescription
	}
	if p.Image != nil {
		project.Image = *p.Image
	}
	if p.Categories != nil {
		project.Categories = datatypes.NewJSONSlice(*p.Categories)
	}
	if p.Challenge != nil {
		project.Challenge = p.Challenge
	}
	if p.Solution != nil {
		project.Solution = p.Solution
	}
	if p.Technologies != nil {
		project.Technologies = datatypes.NewJSONSlice(*p.Technologies)
	}
	if p.Impact != nil {
		project.Impact = p.Impact
	}
	if p.Testimonial != nil {
		project.Testimonial = datatypes.NewJSONType(*p.Testimonial)
	}
	if p.Gallery != nil {
		project.Gallery = datatypes.NewJSONSlice(*p.Gallery)
	}
	if p.Link != nil {
		project.Link = p.Link
	}
}

// getAllProjects retrieves all projects
// @Summary Get all projects
// @Description Retrieves all portfolio projects, newest first
// @Tags Projects
// @Accept json
// @Produce json
// @Success 200 {object} ProjectCollection "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new portfolio project (admin only)
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if project.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}
		if project.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}

		if project.ID == uuid.Nil {
			project.ID = uuid.New()
		}
		if project.CreatedAt.IsZero() {
			project.CreatedAt = time.Now()
		}
		if len(project.Categories) == 0 {
			project.Categories = datatypes.NewJSONSlice([]string{"General"})
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Applies a partial update to an existing project (admin only)
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectPatch true "Fields to update"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var patch projectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if patch.Title != nil && *patch.Title == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "cannot be empty"))
			return
		}
		if patch.Description != nil && *patch.Description == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("description", "cannot be empty"))
			return
		}

		patch.applyTo(existing)

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project from the database by ID (admin only)
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
