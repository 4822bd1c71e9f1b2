package main

import (
	"net/http"
	"os"
	"time"

	"kioskcheckin/config"
	_ "kioskcheckin/docs"
	"kioskcheckin/internal/adapters/auth"
	"kioskcheckin/internal/adapters/email"
	"kioskcheckin/internal/adapters/sheets"
	"kioskcheckin/internal/adapters/workbook"
	delivery "kioskcheckin/internal/delivery/http"
	"kioskcheckin/internal/delivery/http/controllers"
	"kioskcheckin/internal/delivery/http/middleware"
	"kioskcheckin/internal/domain"
	"kioskcheckin/internal/repository/sheetdb"
	"kioskcheckin/internal/services"
)

// @title Kiosk Check-In API
// @version 1.0
// @description Visitor check-in API for a spreadsheet-backed welcome kiosk.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	var store domain.SheetStore
	switch cfg.StoreProvider {
	case "workbook":
		store, err = workbook.Open(cfg.WorkbookPath)
		if err != nil {
			logger.Error("failed to open workbook", "path", cfg.WorkbookPath, "err", err)
			os.Exit(1)
		}
	default:
		httpClient := &http.Client{Timeout: 15 * time.Second}
		store = sheets.NewValuesClient(httpClient, cfg.SheetsBaseURL, cfg.SpreadsheetID, cfg.SheetsToken)
	}

	// Repositories
	visitorRepo := sheetdb.NewVisitorRepository(store, cfg.VisitorsSheet)
	checkinRepo := sheetdb.NewCheckinLogRepository(store, cfg.CheckinsSheet)
	eventRepo := sheetdb.NewEventRepository(store, cfg.EventsSheet)
	guestListRepo := sheetdb.NewGuestListRepository(store)

	// Email
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to initialize mailer", "provider", cfg.MailProvider, "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	// Services
	resolver := services.NewVisitorResolver(visitorRepo)
	eventService := services.NewEventService(eventRepo)
	searchService := services.NewSearchService(visitorRepo, guestListRepo, checkinRepo)
	checkinService := services.NewCheckinService(resolver, checkinRepo, guestListRepo, emailService, logger)

	// Auth
	issuer, verifier := auth.NewJWTSessions(cfg.JWTSecret)
	authService := services.NewAuthService(auth.NewBcryptComparer(), issuer, cfg.KioskPasscodeHash)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, eventService)
	searchController := controllers.NewSearchController(logger, searchService, eventService)
	checkinController := controllers.NewCheckinController(logger, checkinService, eventService)

	mux := delivery.NewRouter(logger, verifier, authController, eventController, searchController, checkinController)
	handler := middleware.CORS(cfg.AllowedOrigins,
		middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server",
		"port", cfg.Port,
		"env", cfg.Environment,
		"store", cfg.StoreProvider,
	)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
