package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"

	"github.com/klypso/agency-backend/models"
)

func TestProjectCRUD(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	created := a.do(t, http.MethodPost, "/api/projects", admin, map[string]any{
		"title":        "Fintech Replatform",
		"description":  "Rebuilt the trading frontend",
		"image":        "/images/fintech.jpg",
		"technologies": []string{"React", "Go"},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create returned %d, want 201: %s", created.Code, created.Body.String())
	}
	project := decodeBody[models.Project](t, created)
	if len(project.Categories) != 1 || project.Categories[0] != "General" {
		t.Errorf("categories should default to [General], got %v", project.Categories)
	}

	// Listing is public.
	list := a.do(t, http.MethodGet, "/api/projects", "", nil)
	if list.Code != http.StatusOK {
		t.Fatalf("public list returned %d, want 200", list.Code)
	}
	if body := decodeBody[ProjectCollection](t, list); body.Total != 1 {
		t.Fatalf("list has %d projects, want 1", body.Total)
	}

	// Partial update touches only the given fields.
	updated := a.do(t, http.MethodPut, "/api/projects/"+project.ID.String(), admin, map[string]any{
		"impact": "Conversion up 40%",
	})
	if updated.Code != http.StatusOK {
		t.Fatalf("update returned %d, want 200: %s", updated.Code, updated.Body.String())
	}
	got := decodeBody[models.Project](t, updated)
	if got.Impact == nil || *got.Impact != "Conversion up 40%" {
		t.Error("impact was not updated")
	}
	if got.Title != "Fintech Replatform" {
		t.Errorf("untouched fields must survive the patch, title became %q", got.Title)
	}

	deleted := a.do(t, http.MethodDelete, "/api/projects/"+project.ID.String(), admin, nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("delete returned %d, want 200", deleted.Code)
	}

	empty := a.do(t, http.MethodGet, "/api/projects", "", nil)
	if body := decodeBody[ProjectCollection](t, empty); body.Total != 0 {
		t.Errorf("list should be empty after delete, got %d", body.Total)
	}
}

func TestProjectCreateValidation(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	missingTitle := a.do(t, http.MethodPost, "/api/projects", admin, map[string]any{
		"description": "No title",
		"image":       "/images/x.jpg",
	})
	if missingTitle.Code != http.StatusBadRequest {
		t.Errorf("missing title returned %d, want 400", missingTitle.Code)
	}

	missingImage := a.do(t, http.MethodPost, "/api/projects", admin, map[string]any{
		"title":       "X",
		"description": "No image",
	})
	if missingImage.Code != http.StatusBadRequest {
		t.Errorf("missing image returned %d, want 400", missingImage.Code)
	}

	all, err := a.db.ProjectRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Error("rejected creates must not persist")
	}
}

func TestProjectMutationRequiresAdmin(t *testing.T) {
	a := setupTestAPI(t)
	_, memberToken := a.createUser(t, "member@klypso.agency", "password123", false)

	payload := map[string]any{
		"title":       "X",
		"description": "Y",
		"image":       "/images/x.jpg",
	}

	anon := a.do(t, http.MethodPost, "/api/projects", "", payload)
	if anon.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create returned %d, want 401", anon.Code)
	}

	member := a.do(t, http.MethodPost, "/api/projects", memberToken, payload)
	if member.Code != http.StatusForbidden {
		t.Errorf("non-admin create returned %d, want 403", member.Code)
	}
}

func TestProjectDeleteNotFound(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	rec := a.do(t, http.MethodDelete, "/api/projects/"+uuid.NewString(), admin, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("deleting an unknown project returned %d, want 404", rec.Code)
	}

	badID := a.do(t, http.MethodDelete, "/api/projects/not-a-uuid", admin, nil)
	if badID.Code != http.StatusBadRequest {
		t.Errorf("malformed project ID returned %d, want 400", badID.Code)
	}
}
