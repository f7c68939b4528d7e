package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/apetrov/my-blog-be/internal/api/handlers"
	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/config"
	"github.com/apetrov/my-blog-be/internal/services"
	"github.com/apetrov/my-blog-be/internal/websocket"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	cfg *config.Config,
	tokens *auth.TokenManager,
	hub *websocket.Hub,
	userService services.UserServiceProvider,
	postService services.PostServiceProvider,
	commentService services.CommentServiceProvider,
	photoService services.PhotoServiceProvider,
	eventService services.EventServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, cfg.IsProduction())
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	photoHandler := handlers.NewPhotoHandler(photoService)
	eventHandler := handlers.NewEventHandler(eventService)
	wsHandler := handlers.NewWebSocketHandler(hub)

	authenticated := auth.Middleware(tokens)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.With(authenticated).Get("/me", authHandler.Me)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.With(authenticated).Post("/", postHandler.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", postHandler.Get)
				r.With(authenticated).Put("/", postHandler.Update)
				r.With(authenticated).Delete("/", postHandler.Delete)

				r.Route("/comments", func(r chi.Router) {
					r.Get("/", commentHandler.ListForPost)
					r.With(authenticated).Post("/", commentHandler.Create)
					r.With(authenticated).Delete("/{commentId}", commentHandler.Delete)
				})
			})
		})

		r.Get("/posts-search", postHandler.Search)

		r.Route("/photos", func(r chi.Router) {
			r.Get("/", photoHandler.List)
			r.With(authenticated).Post("/", photoHandler.Create)
			r.With(authenticated, auth.AdminOnly).Delete("/{id}", photoHandler.Delete)
		})

		r.Route("/events", func(r chi.Router) {
			r.With(authenticated, auth.AdminOnly).Get("/", eventHandler.Recent)
			r.With(authenticated).Get("/ws", wsHandler.Serve)
		})
	})

	return r
}
