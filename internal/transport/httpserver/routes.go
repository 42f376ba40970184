package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"volunteer-tracker-go/internal/config"
	"volunteer-tracker-go/internal/domain/user"
	"volunteer-tracker-go/internal/transport/httpserver/handler"
	authmw "volunteer-tracker-go/internal/transport/httpserver/middleware"
	"volunteer-tracker-go/pkg/logger"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, verifier authmw.Verifier, accounts authmw.AccountProvisioner, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(authmw.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.CORSAllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		auth := authmw.NewAuthenticator(cfg.Auth, verifier, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Use(authmw.LoadAccount(accounts, log))

			r.Get("/me", handlers.Common.Me)
			r.Get("/categories", handlers.Common.ListCategories)
			r.Get("/school-years/current", handlers.Common.CurrentSchoolYear)

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequireRole(user.RoleParent))

				r.Get("/tasks", handlers.Parent.ListTasks)
				r.Post("/tasks", handlers.Parent.CreateTask)
				r.Put("/tasks/{id}", handlers.Parent.UpdateTask)
				r.Delete("/tasks/{id}", handlers.Parent.DeleteTask)

				r.Get("/dashboard", handlers.Parent.GetDashboard)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(authmw.RequireRole(user.RoleAdmin))

				r.Get("/families", handlers.Admin.ListFamilies)
				r.Post("/families", handlers.Admin.CreateFamily)
				r.Put("/families/{id}", handlers.Admin.UpdateFamily)
				r.Put("/families/{id}/archive", handlers.Admin.ArchiveFamily)
				r.Put("/families/{id}/restore", handlers.Admin.RestoreFamily)

				r.Get("/users", handlers.Admin.ListUsers)
				r.Post("/users", handlers.Admin.CreateUser)
				r.Put("/users/{id}", handlers.Admin.UpdateUser)
				r.Put("/users/{id}/archive", handlers.Admin.ArchiveUser)
				r.Put("/users/{id}/restore", handlers.Admin.RestoreUser)

				r.Get("/invitations", handlers.Admin.ListInvitations)
				r.Delete("/invitations/{id}", handlers.Admin.RevokeInvitation)

				r.Get("/categories", handlers.Admin.ListCategories)
				r.Post("/categories", handlers.Admin.CreateCategory)
				r.Put("/categories/{id}", handlers.Admin.UpdateCategory)
				r.Delete("/categories/{id}", handlers.Admin.DeleteCategory)

				r.Get("/school-years", handlers.Admin.ListSchoolYears)
				r.Post("/school-years", handlers.Admin.CreateSchoolYear)
				r.Put("/school-years/{id}", handlers.Admin.UpdateSchoolYear)
				r.Put("/school-years/{id}/activate", handlers.Admin.ActivateSchoolYear)

				r.Get("/reports/families", handlers.Admin.FamilyProgressReport)
				r.Get("/reports/categories", handlers.Admin.CategoryHoursReport)
			})
		})
	})

	return r
}
