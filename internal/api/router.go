package api

import (
	"net/http"

	"github.com/dom/ep-app-api/internal/api/handlers"
	"github.com/dom/ep-app-api/internal/api/middleware"
	"github.com/dom/ep-app-api/internal/config"
	"github.com/dom/ep-app-api/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Initialize handlers
	indexHandler := handlers.NewIndexHandler(r, logger)
	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	userHandler := handlers.NewUserHandler(services.User, logger)
	seizureHandler := handlers.NewSeizureHandler(services.Seizure, logger)
	contactHandler := handlers.NewContactHandler(services.Contact, logger)
	vocabularyHandler := handlers.NewVocabularyHandler(services.Vocabulary, logger)

	r.Get("/", indexHandler.List)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Public routes
	r.Post("/users", authHandler.Register)
	r.Post("/sessions", authHandler.Login)
	r.Get("/seizuretypes", vocabularyHandler.SeizureTypes)
	r.Get("/contacttypes", vocabularyHandler.ContactTypes)

	// Protected routes: authenticate, then check the declared owner
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(services.Auth, logger))
		r.Use(middleware.Ownership(logger))

		r.Get("/userdata", userHandler.GetUserData)
		r.Patch("/userdata", userHandler.Update)

		r.Get("/seizures", seizureHandler.List)
		r.Post("/seizures", seizureHandler.Create)
		r.Patch("/seizures", seizureHandler.Update)
		r.Delete("/seizures", seizureHandler.Delete)

		r.Get("/contacts", contactHandler.List)
		r.Post("/contacts", contactHandler.Create)
		r.Patch("/contacts", contactHandler.Update)
		r.Delete("/contacts", contactHandler.Delete)
	})

	return r
}
