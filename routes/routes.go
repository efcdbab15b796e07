package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/swiss-tournament/docs" // registers the OpenAPI document
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
)

func SetupRoutes(
	router chi.Router,
	jwtSecret []byte,
	tournamentHandler *handlers.TournamentHandler,
	authHandler *handlers.AuthHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Location"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Get("/ws/standings", webSocketHandler.ServeWs)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/token", authHandler.IssueToken)

		r.Get("/players/count", tournamentHandler.CountPlayers)
		r.Get("/standings", tournamentHandler.Standings)
		r.Get("/pairings", tournamentHandler.Pairings)
		r.Get("/summary", tournamentHandler.Summary)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(middleware.RoleOrganizer))

			r.Post("/players", tournamentHandler.RegisterPlayer)
			r.Delete("/players", tournamentHandler.DeletePlayers)
			r.Post("/matches", tournamentHandler.ReportMatch)
			r.Delete("/matches", tournamentHandler.DeleteMatches)
			r.Post("/standings/snapshot", tournamentHandler.PublishSnapshot)
		})
	})
}
