package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes wires the public and admin route groups. Mutating routes on
// content entities sit behind authenticate + requireAdmin; public reads that
// vary by caller (blog, jobs) use optionalAuth so drafts and inactive
// postings stay hidden from anonymous traffic.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, am authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/users/login", handlers.userHandler.login())

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Group(func(r chi.Router) {
				r.Use(am.authenticate)
				r.Use(am.requireAdmin)
				r.Post("/", handlers.projectHandler.createProject())
				r.Put("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(am.optionalAuth)
				r.Get("/", handlers.blogHandler.getAllBlogs())
				r.Get("/{blogKey}", handlers.blogHandler.getBlog())
			})
			r.Group(func(r chi.Router) {
				r.Use(am.authenticate)
				r.Use(am.requireAdmin)
				r.Post("/", handlers.blogHandler.createBlog())
				r.Put("/{blogID}", handlers.blogHandler.updateBlog())
				r.Delete("/{blogID}", handlers.blogHandler.deleteBlog())
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(am.optionalAuth)
				r.Get("/", handlers.jobHandler.getAllJobs())
			})
			r.Group(func(r chi.Router) {
				r.Use(am.authenticate)
				r.Use(am.requireAdmin)
				r.Post("/", handlers.jobHandler.createJob())
				r.Put("/{jobID}", handlers.jobHandler.updateJob())
				r.Delete("/{jobID}", handlers.jobHandler.deleteJob())
			})
		})

		r.Route("/enquiries", func(r chi.Router) {
			r.Post("/", handlers.enquiryHandler.createEnquiry())
			r.Group(func(r chi.Router) {
				r.Use(am.authenticate)
				r.Use(am.requireAdmin)
				r.Get("/", handlers.enquiryHandler.getAllEnquiries())
				r.Delete("/{enquiryID}", handlers.enquiryHandler.deleteEnquiry())
			})
		})
	})
}
