package config

import (
	"log"
	"os"
	"pedido_venda/internal/adapter/persistence/repository"
	"pedido_venda/internal/infrastructure/submission"
	"pedido_venda/internal/layout"
	"strconv"
	"strings"
	"time"
)

const DefaultPort = 8080

// Config is the runtime configuration read from the environment. Values from
// a local .env file are picked up by godotenv/autoload in cmd/api.
type Config struct {
	Port    int
	GinMode string

	Variant  layout.Variant
	LogoPath string
	Company  layout.Company

	SubmissionURL       string
	SubmissionTimeout   time.Duration
	SubmissionMock      bool
	SubmissionRecipient string

	SessionTTL time.Duration
}

// Load reads the environment and falls back to defaults for missing or
// malformed values. Bad values are logged, never fatal.
func Load() Config {
	cfg := Config{
		Port:                intEnv("PORT", DefaultPort),
		GinMode:             strings.TrimSpace(os.Getenv("GIN_MODE")),
		LogoPath:            strings.TrimSpace(os.Getenv("LOGO_PATH")),
		SubmissionURL:       strings.TrimSpace(os.Getenv("SUBMISSION_URL")),
		SubmissionTimeout:   durationEnv("SUBMISSION_TIMEOUT", submission.DefaultTimeout),
		SubmissionMock:      boolEnv("SUBMISSION_MOCK"),
		SubmissionRecipient: strings.TrimSpace(os.Getenv("SUBMISSION_RECIPIENT")),
		SessionTTL:          durationEnv("SESSION_TTL", repository.DefaultSessionTTL),
		Company:             companyEnv(),
	}

	variant, err := layout.ParseVariant(os.Getenv("LAYOUT_VARIANT"))
	if err != nil {
		log.Printf("[config] %v; using %s", err, variant)
	}
	cfg.Variant = variant

	return cfg
}

func companyEnv() layout.Company {
	c := layout.DefaultCompany
	if v := strings.TrimSpace(os.Getenv("COMPANY_NAME")); v != "" {
		c.Name = v
	}
	if v := strings.TrimSpace(os.Getenv("COMPANY_LEGAL_NAME")); v != "" {
		c.LegalName = v
	}
	if v := strings.TrimSpace(os.Getenv("COMPANY_TAX_INFO")); v != "" {
		c.TaxInfo = v
	}
	if v := strings.TrimSpace(os.Getenv("COMPANY_CONTACT")); v != "" {
		c.Contact = v
	}
	return c
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("[config] invalid %s=%q; using %d", key, raw, def)
		return def
	}
	return n
}

// durationEnv accepts Go durations ("15s", "2m") or a bare number of seconds.
func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("[config] invalid %s=%q; using %s", key, raw, def)
		return def
	}
	return d
}

func boolEnv(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
