package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/playsphere/playsphere/handlers"
	"github.com/playsphere/playsphere/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Registration *handlers.RegistrationHandler
	Player       *handlers.PlayerHandler
	Team         *handlers.TeamHandler
	Cricket      *handlers.CricketMatchHandler
	Football     *handlers.FootballMatchHandler
	Badminton    *handlers.BadmintonMatchHandler
	Profile      *handlers.ProfileHandler
	Live         *handlers.LiveHandler
}

func InitRoutes(h Handlers, jwtSecret []byte) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)
	adminOnly := middleware.Authorize(middleware.RoleAdmin)

	router.Post("/auth/admin/signup", h.Auth.RegisterAdmin)
	router.Post("/auth/admin/signin", h.Auth.LoginAdmin)
	router.Post("/auth/signin", h.Auth.LoginUser)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", h.Player.List)
		r.Get("/{id}", h.Player.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Player.Create)
			r.Put("/{id}", h.Player.Update)
			r.Patch("/{id}/team", h.Player.AssignTeam)
			r.Post("/{id}/photo", h.Player.UploadPhoto)
			r.Delete("/{id}", h.Player.Delete)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.List)
		r.Get("/{id}", h.Team.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Team.Create)
			r.Put("/{id}", h.Team.Update)
			r.Patch("/{id}/captain", h.Team.SetCaptain)
			r.Post("/{id}/photo", h.Team.UploadPhoto)
			r.Delete("/{id}", h.Team.Delete)
		})
	})

	router.Route("/coaches", func(r chi.Router) {
		// Coach registration is an open form.
		r.Post("/", h.Registration.RegisterCoach)
		r.Get("/", h.Registration.ListCoaches)
		r.Get("/{id}", h.Registration.GetCoach)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Delete("/{id}", h.Registration.DeleteCoach)
		})
	})

	router.Route("/registrations", func(r chi.Router) {
		// Player application forms are submitted without an account.
		r.Post("/", h.Registration.SubmitPlayerForm)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Get("/", h.Registration.ListPlayerForms)
			r.Get("/{id}", h.Registration.GetPlayerForm)
			r.Delete("/{id}", h.Registration.DeletePlayerForm)
		})
	})

	router.Route("/matches/cricket", func(r chi.Router) {
		r.Get("/", h.Cricket.List)
		r.Get("/{id}", h.Cricket.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Cricket.Create)
			r.Patch("/{id}/status", h.Cricket.SetStatus)
			r.Post("/{id}/events", h.Cricket.ApplyBall)
			r.Post("/{id}/highlights", h.Cricket.AddHighlight)
			r.Delete("/{id}", h.Cricket.Delete)
		})
	})

	router.Route("/matches/football", func(r chi.Router) {
		r.Get("/", h.Football.List)
		r.Get("/{id}", h.Football.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Football.Create)
			r.Patch("/{id}/status", h.Football.SetStatus)
			r.Post("/{id}/events", h.Football.ApplyEvent)
			r.Post("/{id}/highlights", h.Football.AddHighlight)
			r.Delete("/{id}", h.Football.Delete)
		})
	})

	router.Route("/matches/badminton", func(r chi.Router) {
		r.Get("/", h.Badminton.List)
		r.Get("/{id}", h.Badminton.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(adminOnly)

			r.Post("/", h.Badminton.Create)
			r.Patch("/{id}/status", h.Badminton.SetStatus)
			r.Post("/{id}/events", h.Badminton.ApplyRally)
			r.Post("/{id}/highlights", h.Badminton.AddHighlight)
			r.Delete("/{id}", h.Badminton.Delete)
		})
	})

	router.Get("/matches", h.Profile.Matches)
	router.Get("/matches/live-and-upcoming", h.Profile.LiveAndUpcoming)

	router.Get("/profiles/players/{id}", h.Profile.PlayerProfile)
	router.Get("/profiles/teams/{id}", h.Profile.TeamProfile)
	router.Get("/profiles/compare/{player1ID}/{player2ID}", h.Profile.Compare)
	router.Get("/home", h.Profile.Home)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(adminOnly)

		r.Get("/dashboard", h.Profile.Dashboard)
	})

	router.Get("/live/{sport}/{id}", h.Live.Subscribe)

	return router
}
