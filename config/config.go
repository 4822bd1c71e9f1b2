package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the kiosk backend.
type Config struct {
	Environment string
	Port        string

	// Backing store. Provider "sheets" talks to a remote spreadsheet values
	// API over HTTP; "workbook" uses a local .xlsx file (offline kiosks, dev).
	StoreProvider string
	SheetsBaseURL string
	SpreadsheetID string
	SheetsToken   string
	WorkbookPath  string

	// Table (sheet tab) names. Per-event guest list tabs are discovered from
	// the Events table at runtime.
	VisitorsSheet string
	CheckinsSheet string
	EventsSheet   string

	// Kiosk session auth.
	JWTSecret         string
	KioskPasscodeHash string

	AllowedOrigins []string

	// Confirmation email.
	MailProvider       string
	MailFromAddress    string
	MailFromName       string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file when not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually does not exist; system environment
	// variables are the source of truth there.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               os.Getenv("PORT"),
		StoreProvider:      os.Getenv("STORE_PROVIDER"),
		SheetsBaseURL:      os.Getenv("SHEETS_BASE_URL"),
		SpreadsheetID:      os.Getenv("SPREADSHEET_ID"),
		SheetsToken:        os.Getenv("SHEETS_TOKEN"),
		WorkbookPath:       os.Getenv("WORKBOOK_PATH"),
		VisitorsSheet:      os.Getenv("VISITORS_SHEET"),
		CheckinsSheet:      os.Getenv("CHECKINS_SHEET"),
		EventsSheet:        os.Getenv("EVENTS_SHEET"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		KioskPasscodeHash:  os.Getenv("KIOSK_PASSCODE_HASH"),
		MailProvider:       os.Getenv("MAIL_PROVIDER"),
		MailFromAddress:    os.Getenv("MAIL_FROM_ADDRESS"),
		MailFromName:       os.Getenv("MAIL_FROM_NAME"),
		SESRegion:          os.Getenv("SES_REGION"),
		SESAccessKeyID:     os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey: os.Getenv("SES_SECRET_ACCESS_KEY"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Defaults.
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StoreProvider == "" {
		cfg.StoreProvider = "sheets"
	}
	if cfg.SheetsBaseURL == "" {
		cfg.SheetsBaseURL = "https://sheets.googleapis.com/v4"
	}
	if cfg.VisitorsSheet == "" {
		cfg.VisitorsSheet = "Visitors"
	}
	if cfg.CheckinsSheet == "" {
		cfg.CheckinsSheet = "Checkins"
	}
	if cfg.EventsSheet == "" {
		cfg.EventsSheet = "Events"
	}
	if cfg.MailProvider == "" {
		cfg.MailProvider = "noop"
	}

	switch cfg.StoreProvider {
	case "sheets":
		if cfg.SpreadsheetID == "" {
			return nil, fmt.Errorf("SPREADSHEET_ID is required when STORE_PROVIDER=sheets")
		}
	case "workbook":
		if cfg.WorkbookPath == "" {
			return nil, fmt.Errorf("WORKBOOK_PATH is required when STORE_PROVIDER=workbook")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_PROVIDER %q (want \"sheets\" or \"workbook\")", cfg.StoreProvider)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.KioskPasscodeHash == "" {
		return nil, fmt.Errorf("KIOSK_PASSCODE_HASH is required")
	}

	return cfg, nil
}
