package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"kioskcheckin/internal/delivery/http/controllers"
	"kioskcheckin/internal/delivery/http/middleware"
	"kioskcheckin/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything under /api requires an unlocked kiosk session.
func NewRouter(
	logger *slog.Logger,
	verifier domain.TokenVerifier,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	searchController *controllers.SearchController,
	checkinController *controllers.CheckinController,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireSession := middleware.RequireSession(verifier, logger)

	// Auth
	mux.HandleFunc("POST /auth/session", authController.StartSession)

	// Kiosk API
	mux.HandleFunc("GET /api/events", requireSession(eventController.ListActive))
	mux.HandleFunc("GET /api/visitors/search", requireSession(searchController.SearchVisitors))
	mux.HandleFunc("POST /api/checkins", requireSession(checkinController.CheckIn))
	mux.HandleFunc("POST /api/checkins/register", requireSession(checkinController.Register))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
