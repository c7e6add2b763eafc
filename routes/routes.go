package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/fixture-planner/docs"
	"github.com/Dosada05/fixture-planner/handlers"
	"github.com/Dosada05/fixture-planner/middleware"
	"github.com/Dosada05/fixture-planner/models"
)

func SetupRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	fixtureHandler *handlers.FixtureHandler,
	webSocketHandler *handlers.WebSocketHandler,
	jwtSecret string,
	allowedOrigins []string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	organizerOnly := []func(http.Handler) http.Handler{
		middleware.Authenticate(jwtSecret),
		middleware.Authorize(models.RoleOrganizer, models.RoleAdmin),
	}

	router.Route("/tournaments", func(r chi.Router) {
		// Public read-only tournament and fixture routes
		r.Get("/", tournamentHandler.ListHandler)
		r.Get("/{tournamentID}", tournamentHandler.GetByIDHandler)
		r.Get("/{tournamentID}/matches", fixtureHandler.MatchesHandler)
		r.Get("/{tournamentID}/fixture.csv", fixtureHandler.CSVHandler)

		// Organizer-only routes
		r.Group(func(r chi.Router) {
			r.Use(organizerOnly...)

			r.Post("/", tournamentHandler.CreateHandler)
			r.Get("/mine", tournamentHandler.MyTournamentsHandler)
			r.Put("/{tournamentID}", tournamentHandler.UpdateHandler)
			r.Delete("/{tournamentID}", tournamentHandler.DeleteHandler)
			r.Post("/{tournamentID}/duplicate", tournamentHandler.DuplicateHandler)

			r.Put("/{tournamentID}/teams", tournamentHandler.SetTeamsHandler)
			r.Put("/{tournamentID}/fields", tournamentHandler.SetFieldsHandler)
			r.Put("/{tournamentID}/calendar", tournamentHandler.SetCalendarHandler)

			r.Post("/{tournamentID}/fixture", fixtureHandler.GenerateHandler)
			r.Post("/{tournamentID}/exports", fixtureHandler.ExportHandler)
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}
