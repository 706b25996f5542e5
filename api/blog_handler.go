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

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// BlogCollection represents multiple blog posts
type BlogCollection struct {
	Blogs []*models.Blog `json:"blogs"`
	Total int            `json:"total"`
}

// blogPatch is the allow-listed set of fields an update may change.
type blogPatch struct {
	Title    *string   `json:"title"`
	Author   *string   `json:"author"`
	Category *string   `json:"category"`
	Image    *string   `json:"image"`
	Excerpt  *string   `json:"excerpt"`
	Content  *string   `json:"content"`
	ReadTime *string   `json:"readTime"`
	Tags     *[]string `json:"tags"`
	Slug     *string   `json:"slug"`
	Status   *string   `json:"status"`
}

func (p blogPatch) applyTo(blog *models.Blog) {
	if p.Title != nil {
		blog.Title = *p.Title
	}
	if p.Author != nil {
		blog.Author = *p.Author
	}
	if p.Category != nil {
		blog.Category = *p.Category
	}
	if p.Image != nil {
		blog.Image = *p.Image
	}
	if p.Excerpt != nil {
		blog.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		blog.Content = *p.Content
	}
	if p.ReadTime != nil {
		blog.ReadTime = *p.ReadTime
	}
	if p.Tags != nil {
		blog.Tags = datatypes.NewJSONSlice(*p.Tags)
	}
	if p.Slug != nil {
		if *p.Slug == "" {
			blog.Slug = nil
		} else {
			blog.Slug = p.Slug
		}
	}
	if p.Status != nil {
		blog.Status = *p.Status
	}
}

// getAllBlogs retrieves blog posts visible to the caller
// @Summary Get blog posts
// @Description Returns published posts for public callers and every post, drafts included, for admins
// @Tags Blogs
// @Accept json
// @Produce json
// @Success 200 {object} BlogCollection "List of blog posts"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog posts"
// @Router /api/blogs [get]
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var (
			blogs []*models.Blog
			err   error
		)
		if isAdminCtx(r.Context()) {
			blogs, err = h.blogRepo.FindAll()
		} else {
			blogs, err = h.blogRepo.FindPublished()
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog posts", "blog_posts", err))
			return
		}

		h.responder.WriteJSON(w, BlogCollection{
			Blogs: blogs,
			Total: len(blogs),
		})
	}
}

// getBlog retrieves a single blog post by slug or ID
// @Summary Get blog post
// @Description Resolves a post by slug first, then by ID. Drafts resolve only for admins.
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogKey path string true "Blog slug or ID"
// @Success 200 {object} models.Blog "Blog post"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching blog post"
// @Router /api/blogs/{blogKey} [get]
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogKey := chi.URLParam(r, "blogKey")
		if blogKey == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blog identifier"))
			return
		}

		blog, err := h.blogRepo.FindBySlugOrID(blogKey)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}

		// Drafts are never publicly resolvable, even by direct key.
		// A draft answers 404 rather than 403 so its existence leaks nothing.
		if blog == nil || (!blog.Published() && !isAdminCtx(r.Context())) {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a new blog post
// @Summary Create blog post
// @Description Creates a new blog post as draft unless a status is given (admin only)
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blog body models.Blog true "Blog post data"
// @Success 201 {object} models.Blog "Created blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating blog post"
// @Router /api/blogs [post]
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var blog models.Blog
		if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if blog.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if blog.Category == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("category"))
			return
		}
		if !models.IsBlogCategory(blog.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "not an allowed category"))
			return
		}
		if blog.Image == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("image"))
			return
		}
		if blog.Excerpt == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("excerpt"))
			return
		}
		if blog.Status == "" {
			blog.Status = models.BlogStatusDraft
		}
		if !models.IsBlogStatus(blog.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft or published"))
			return
		}
		if blog.Slug != nil && *blog.Slug == "" {
			blog.Slug = nil
		}

		if blog.Author == "" {
			blog.Author = "Team Klypso"
		}
		if blog.ReadTime == "" {
			blog.ReadTime = "3 min read"
		}
		if blog.ID == uuid.Nil {
			blog.ID = uuid.New()
		}
		now := time.Now()
		if blog.CreatedAt.IsZero() {
			blog.CreatedAt = now
		}
		blog.UpdatedAt = now

		if err := h.blogRepo.Add(&blog); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create blog post", "blog_post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, blog)
	}
}

// updateBlog updates an existing blog post
// @Summary Update blog post
// @Description Applies a partial update to an existing blog post (admin only)
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog Post ID" format(uuid)
// @Param blog body blogPatch true "Fields to update"
// @Success 200 {object} models.Blog "Updated blog post"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blog post data"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating blog post"
// @Router /api/blogs/{blogID} [put]
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var patch blogPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog patch body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if patch.Title != nil && *patch.Title == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("title", "cannot be empty"))
			return
		}
		if patch.Category != nil && !models.IsBlogCategory(*patch.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "not an allowed category"))
			return
		}
		if patch.Status != nil && !models.IsBlogStatus(*patch.Status) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft or published"))
			return
		}

		patch.applyTo(existing)
		existing.UpdatedAt = time.Now()

		if err := h.blogRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteBlog deletes a blog post by ID
// @Summary Delete blog post
// @Description Deletes a blog post from the database by ID (admin only)
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogID path string true "Blog Post ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid blogID"
// @Failure 404 {object} ErrorResponse "Not Found - Blog post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting blog post"
// @Router /api/blogs/{blogID} [delete]
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find blog post", "blog_post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete blog post", "blog_post", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
