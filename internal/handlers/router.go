package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter wires the full public route table. The profile page route
// matches a bare path segment, so it must stay last.
func NewRouter(users *UserHandler, profiles *ProfileHandler, votes *VoteHandler, images *ImageHandler, uploadDir string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api/users", func(r chi.Router) {
		r.Get("/test", users.Test)
		r.Post("/register", users.Register)
		r.Get("/", users.List)
		r.Get("/{userId}", users.GetByID)
	})

	r.Get("/api/profile/test", profiles.Test)
	r.Get("/api/profile/all", profiles.ListAll)
	r.Post("/api/profile", profiles.Upsert)

	r.Route("/api/votes", func(r chi.Router) {
		r.Get("/test", votes.Test)
		r.Get("/options", votes.Options)
		r.Get("/", votes.List)
		r.Post("/", votes.Create)
		r.Post("/like/{voteId}", votes.Like)
		r.Post("/unlike/{voteId}", votes.Unlike)
	})

	r.Post("/api/upload", images.Upload)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	r.Get("/{profileId}", profiles.View)

	return r
}
