package database

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/klypso/agency-backend/models"
)

func TestBlogFindBySlugOrID(t *testing.T) {
	d := setupTestDB(t)
	repo := d.BlogRepo()

	blog := testBlog("Design Systems", "design-systems", models.BlogStatusPublished, time.Now())
	if err := repo.Add(blog); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	bySlug, err := repo.FindBySlugOrID("design-systems")
	if err != nil {
		t.Fatalf("FindBySlugOrID by slug failed: %v", err)
	}
	if bySlug == nil || bySlug.ID != blog.ID {
		t.Fatal("slug lookup should return the stored post")
	}

	byID, err := repo.FindBySlugOrID(blog.ID.String())
	if err != nil {
		t.Fatalf("FindBySlugOrID by ID failed: %v", err)
	}
	if byID == nil || byID.ID != blog.ID {
		t.Fatal("ID lookup should return the stored post")
	}

	// Slug and ID lookups must resolve to the same record.
	if bySlug.ID != byID.ID {
		t.Error("slug and ID lookups disagree")
	}

	missing, err := repo.FindBySlugOrID("no-such-post")
	if err != nil {
		t.Fatalf("FindBySlugOrID for missing key failed: %v", err)
	}
	if missing != nil {
		t.Error("missing key should resolve to nil")
	}

	missingID, err := repo.FindBySlugOrID(uuid.NewString())
	if err != nil {
		t.Fatalf("FindBySlugOrID for unknown ID failed: %v", err)
	}
	if missingID != nil {
		t.Error("unknown ID should resolve to nil")
	}
}

func TestBlogSlugWinsOverID(t *testing.T) {
	d := setupTestDB(t)
	repo := d.BlogRepo()

	// A slug that parses as a UUID must still resolve via the slug path.
	slugged := testBlog("Slugged", uuid.NewString(), models.BlogStatusPublished, time.Now())
	if err := repo.Add(slugged); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := repo.FindBySlugOrID(*slugged.Slug)
	if err != nil {
		t.Fatalf("FindBySlugOrID failed: %v", err)
	}
	if got == nil || got.ID != slugged.ID {
		t.Error("uuid-shaped slug should resolve through the slug lookup")
	}
}

func TestBlogFindPublishedExcludesDrafts(t *testing.T) {
	d := setupTestDB(t)
	repo := d.BlogRepo()

	now := time.Now()
	published := testBlog("Published", "published-post", models.BlogStatusPublished, now.Add(-time.Hour))
	draft := testBlog("Draft", "draft-post", models.BlogStatusDraft, now)
	for _, b := range []*models.Blog{published, draft} {
		if err := repo.Add(b); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	visible, err := repo.FindPublished()
	if err != nil {
		t.Fatalf("FindPublished failed: %v", err)
	}
	if len(visible) != 1 {
		t.Fatalf("FindPublished returned %d posts, want 1", len(visible))
	}
	if visible[0].ID != published.ID {
		t.Error("FindPublished should return only the published post")
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("FindAll returned %d posts, want 2", len(all))
	}
}

func TestBlogFindAllNewestFirst(t *testing.T) {
	d := setupTestDB(t)
	repo := d.BlogRepo()

	now := time.Now()
	oldest := testBlog("Oldest", "oldest", models.BlogStatusPublished, now.Add(-2*time.Hour))
	middle := testBlog("Middle", "middle", models.BlogStatusPublished, now.Add(-time.Hour))
	newest := testBlog("Newest", "newest", models.BlogStatusPublished, now)
	for _, b := range []*models.Blog{oldest, newest, middle} {
		if err := repo.Add(b); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("FindAll failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("FindAll returned %d posts, want 3", len(all))
	}
	for i, want := range []*models.Blog{newest, middle, oldest} {
		if all[i].ID != want.ID {
			t.Errorf("position %d: got %q, want %q", i, all[i].Title, want.Title)
		}
	}
}

func TestBlogUpdateAndDelete(t *testing.T) {
	d := setupTestDB(t)
	repo := d.BlogRepo()

	blog := testBlog("Original", "original", models.BlogStatusDraft, time.Now())
	if err := repo.Add(blog); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	blog.Status = models.BlogStatusPublished
	blog.Title = "Updated"
	if err := repo.Update(blog); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := repo.FindByID(blog.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Title != "Updated" || got.Status != models.BlogStatusPublished {
		t.Error("update was not persisted")
	}

	if err := repo.Delete(blog.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	gone, err := repo.FindByID(blog.ID)
	if err != nil {
		t.Fatalf("FindByID after delete failed: %v", err)
	}
	if gone != nil {
		t.Error("deleted post should not resolve")
	}
}
