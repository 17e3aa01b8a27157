package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port         string // HTTP listen port (default: 8000)
	Env          string // "development" or "production", selects log format
	DatabaseURL  string // MongoDB connection string
	DatabaseName string // MongoDB database name

	// Google Sheets lead mirroring (optional).
	SheetsSpreadsheetID      string
	SheetsServiceAccountJSON string // literal JSON or base64-encoded JSON
	SheetsLeadsRange         string // A1 range, default "Leads!A:F"

	// Stripe checkout (optional; mock checkout URLs are used when unset).
	StripeSecretKey    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string
}

// Load reads configuration from the environment. A .env file is honored when
// present. Nothing is hard-required: integrations simply stay disabled when
// their options are missing.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8000"),
		Env:          getEnv("ENV", "development"),
		DatabaseURL:  getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "storefront"),

		SheetsSpreadsheetID:      os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"),
		SheetsServiceAccountJSON: os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON"),
		SheetsLeadsRange:         getEnv("GOOGLE_SHEETS_LEADS_RANGE", "Leads!A:F"),

		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		CheckoutSuccessURL: getEnv("CHECKOUT_SUCCESS_URL", "https://example.com/success"),
		CheckoutCancelURL:  getEnv("CHECKOUT_CANCEL_URL", "https://example.com/cancel"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
