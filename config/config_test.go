package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "DATABASE_URL", "DATABASE_NAME",
		"GOOGLE_SHEETS_SPREADSHEET_ID", "GOOGLE_SHEETS_SERVICE_ACCOUNT_JSON", "GOOGLE_SHEETS_LEADS_RANGE",
		"STRIPE_SECRET_KEY", "CHECKOUT_SUCCESS_URL", "CHECKOUT_CANCEL_URL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "storefront", cfg.DatabaseName)
	assert.Equal(t, "Leads!A:F", cfg.SheetsLeadsRange)
	assert.Equal(t, "https://example.com/success", cfg.CheckoutSuccessURL)
	assert.Equal(t, "https://example.com/cancel", cfg.CheckoutCancelURL)
	assert.Empty(t, cfg.StripeSecretKey)
	assert.Empty(t, cfg.SheetsSpreadsheetID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("ENV", "production")
	t.Setenv("DATABASE_URL", "mongodb://db.internal:27017")
	t.Setenv("DATABASE_NAME", "shop")
	t.Setenv("GOOGLE_SHEETS_LEADS_RANGE", "Prospects!A:F")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.DatabaseURL)
	assert.Equal(t, "shop", cfg.DatabaseName)
	assert.Equal(t, "Prospects!A:F", cfg.SheetsLeadsRange)
	assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
}
