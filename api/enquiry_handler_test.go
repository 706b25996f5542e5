package api

import (
	"net/http"
	"testing"
	"time"
)

func TestEnquirySubmit(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	rec := a.do(t, http.MethodPost, "/api/enquiries", "", map[string]any{
		"name":    "A",
		"email":   "a@b.com",
		"service": "Website Development & Integration",
		"message": "hi",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit returned %d, want 201: %s", rec.Code, rec.Body.String())
	}

	// The notification goes out on its own goroutine after persistence.
	select {
	case got := <-a.notifier.calls:
		if got.Name != "A" || got.Email != "a@b.com" {
			t.Errorf("notifier received wrong enquiry: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never called")
	}

	list := a.do(t, http.MethodGet, "/api/enquiries", admin, nil)
	if list.Code != http.StatusOK {
		t.Fatalf("admin list returned %d, want 200", list.Code)
	}
	body := decodeBody[EnquiryCollection](t, list)
	if body.Total != 1 {
		t.Fatalf("admin list has %d enquiries, want 1", body.Total)
	}
	stored := body.Enquiries[0]
	if stored.Name != "A" || stored.Email != "a@b.com" || stored.Message != "hi" {
		t.Error("submitted fields should survive intact")
	}
	if stored.Service != "Website Development & Integration" {
		t.Errorf("service = %q, want %q", stored.Service, "Website Development & Integration")
	}
	if stored.ProjectType != "New Project" {
		t.Errorf("projectType should default to New Project, got %q", stored.ProjectType)
	}
	if stored.Status != "New" {
		t.Errorf("status should default to New, got %q", stored.Status)
	}
}

func TestEnquiryNewestFirstInAdminList(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	for _, name := range []string{"first", "second"} {
		rec := a.do(t, http.MethodPost, "/api/enquiries", "", map[string]any{
			"name":    name,
			"email":   name + "@b.com",
			"service": "Web Development",
			"message": "hi",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("submit %q returned %d, want 201", name, rec.Code)
		}
		// Distinct creation timestamps so the ordering is deterministic.
		time.Sleep(5 * time.Millisecond)
	}

	list := a.do(t, http.MethodGet, "/api/enquiries", admin, nil)
	body := decodeBody[EnquiryCollection](t, list)
	if body.Total != 2 {
		t.Fatalf("admin list has %d enquiries, want 2", body.Total)
	}
	if body.Enquiries[0].Name != "second" {
		t.Errorf("newest enquiry should come first, got %q", body.Enquiries[0].Name)
	}
}

func TestEnquiryValidation(t *testing.T) {
	a := setupTestAPI(t)

	badService := a.do(t, http.MethodPost, "/api/enquiries", "", map[string]any{
		"name":    "A",
		"email":   "a@b.com",
		"service": "Time Travel",
		"message": "hi",
	})
	if badService.Code != http.StatusBadRequest {
		t.Errorf("unknown service returned %d, want 400", badService.Code)
	}

	missingMessage := a.do(t, http.MethodPost, "/api/enquiries", "", map[string]any{
		"name":    "A",
		"email":   "a@b.com",
		"service": "Web Development",
	})
	if missingMessage.Code != http.StatusBadRequest {
		t.Errorf("missing message returned %d, want 400", missingMessage.Code)
	}

	all, err := a.db.EnquiryRepo().FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("rejected submissions must not persist, found %d", len(all))
	}

	select {
	case <-a.notifier.calls:
		t.Error("notifier must not fire for rejected submissions")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEnquiryReadAndDeleteAreAdminOnly(t *testing.T) {
	a := setupTestAPI(t)
	admin := a.adminToken(t)

	created := a.do(t, http.MethodPost, "/api/enquiries", "", map[string]any{
		"name":    "A",
		"email":   "a@b.com",
		"service": "Web Development",
		"message": "hi",
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("submit returned %d, want 201", created.Code)
	}
	<-a.notifier.calls

	anonList := a.do(t, http.MethodGet, "/api/enquiries", "", nil)
	if anonList.Code != http.StatusUnauthorized {
		t.Errorf("anonymous list returned %d, want 401", anonList.Code)
	}

	list := a.do(t, http.MethodGet, "/api/enquiries", admin, nil)
	body := decodeBody[EnquiryCollection](t, list)
	if body.Total != 1 {
		t.Fatalf("admin list has %d enquiries, want 1", body.Total)
	}
	id := body.Enquiries[0].ID.String()

	anonDelete := a.do(t, http.MethodDelete, "/api/enquiries/"+id, "", nil)
	if anonDelete.Code != http.StatusUnauthorized {
		t.Errorf("anonymous delete returned %d, want 401", anonDelete.Code)
	}

	deleted := a.do(t, http.MethodDelete, "/api/enquiries/"+id, admin, nil)
	if deleted.Code != http.StatusOK {
		t.Errorf("admin delete returned %d, want 200", deleted.Code)
	}

	again := a.do(t, http.MethodDelete, "/api/enquiries/"+id, admin, nil)
	if again.Code != http.StatusNotFound {
		t.Errorf("deleting a missing enquiry returned %d, want 404", again.Code)
	}
}
