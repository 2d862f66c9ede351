package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/securecookie"

	"pantry-backend-go/internal/config"
	"pantry-backend-go/internal/db"
	"pantry-backend-go/internal/services"
)

type Server struct {
	DB         *db.DB
	Config     config.Config
	Sessions   *services.SessionStore
	Cookies    *securecookie.SecureCookie
	MetricsHub *services.MetricsHub
}

func NewServer(database *db.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	return &Server{
		DB:         database,
		Config:     cfg,
		Sessions:   services.NewSessionStore(),
		Cookies:    NewCookieCodec(cfg.SessionSecret),
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Group(func(root chi.Router) {
		// The websocket route stays outside this group; the logging recorder
		// does not implement http.Hijacker.
		root.Use(RequestLogger)

		root.Post("/login", s.Login)
		root.Get("/logout", s.Logout)
		root.Get("/uploads/{filename}", s.ServeUpload)

		root.Route("/api", func(api chi.Router) {
			// Public surface: site copy, testimonial wall, visitor submissions.
			api.Get("/site-content", s.GetSiteContent)
			api.Get("/testimonials", s.ListTestimonials)
			api.Post("/testimonials", s.CreateTestimonial)
			api.Post("/messages", s.CreateMessage)
			api.Post("/visits", s.TrackVisit)
			api.Get("/visits/count", s.VisitCount)

			// Everything that reads private data or mutates records requires
			// an admin session.
			api.Group(func(admin chi.Router) {
				admin.Use(WithAdmin(s.Sessions, s.Cookies))
				admin.Get("/auth/me", s.Me)
				admin.Put("/site-content", s.UpdateSiteContent)
				admin.Post("/site-content", s.UpdateSiteContent)
				admin.Get("/messages", s.ListMessages)
				admin.Patch("/messages", s.UpdateMessage)
				admin.Delete("/messages", s.DeleteMessage)
				admin.Get("/donations", s.ListDonations)
				admin.Post("/donations", s.CreateDonation)
				admin.Delete("/donations", s.DeleteDonation)
				admin.Delete("/testimonials", s.DeleteTestimonial)
				admin.Get("/admin/metrics/history", s.MetricsHistory)
			})
		})
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
