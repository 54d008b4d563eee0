package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/artsfest/scoreboard/handlers"
	"github.com/artsfest/scoreboard/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Scoreboard  *handlers.ScoreboardHandler
	Participant *handlers.ParticipantHandler
	Category    *handlers.CategoryHandler
	Item        *handlers.ItemHandler
	Settings    *handlers.SettingsHandler
	WebSocket   *handlers.WebSocketHandler
}

func InitRoutes(h Handlers, jwtSecret []byte, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/api/auth/login", h.Auth.Login)

	// Public read-only views consumed by the display and mobile clients.
	router.Get("/api/live", h.Scoreboard.Live)
	router.Get("/api/mobile/data", h.Scoreboard.MobileData)
	router.Get("/api/settings", h.Settings.Get)
	router.Get("/ws/live", h.WebSocket.ServeLive)

	router.Route("/api/participants", func(r chi.Router) {
		r.Get("/", h.Participant.List)
		r.Get("/{participantID}", h.Participant.GetByID)
		r.Get("/{participantID}/points", h.Scoreboard.ParticipantPoints)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Participant.Create)
			r.Put("/{participantID}", h.Participant.Update)
			r.Delete("/{participantID}", h.Participant.Delete)
		})
	})

	router.Route("/api/categories", func(r chi.Router) {
		r.Get("/", h.Category.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Category.Create)
			r.Put("/{categoryID}", h.Category.Update)
			r.Delete("/{categoryID}", h.Category.Delete)
		})
	})

	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", h.Item.List)
		r.Get("/{itemID}", h.Item.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Item.Create)
			r.Put("/{itemID}", h.Item.Update)
			r.Put("/{itemID}/results", h.Item.SetResults)
			r.Put("/{itemID}/grades", h.Item.SetGrades)
			r.Delete("/{itemID}", h.Item.Delete)
		})
	})

	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireAdmin)

		r.Put("/api/settings", h.Settings.Update)
	})

	return router
}
