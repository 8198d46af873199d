package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"master-student-chatbot/internal/handlers"
	"master-student-chatbot/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	logger *zap.Logger,
	allowedOrigins []string,
	debug bool,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", chatHandler.Health)

	r.Post("/chat", chatHandler.Chat)
	r.Get("/chat/suggestions", chatHandler.Suggestions)

	if debug {
		r.Mount("/debug", chimiddleware.Profiler())
	}

	return r
}
