package config

import (
	"testing"
	"time"

	"pedido_venda/internal/layout"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GIN_MODE", "LAYOUT_VARIANT", "LOGO_PATH",
		"SUBMISSION_URL", "SUBMISSION_TIMEOUT", "SUBMISSION_MOCK", "SUBMISSION_RECIPIENT",
		"SESSION_TTL", "COMPANY_NAME", "COMPANY_LEGAL_NAME", "COMPANY_TAX_INFO", "COMPANY_CONTACT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Fatalf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.Variant != layout.VariantForm {
		t.Fatalf("expected form variant, got %s", cfg.Variant)
	}
	if cfg.SubmissionTimeout != 15*time.Second {
		t.Fatalf("expected 15s timeout, got %s", cfg.SubmissionTimeout)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Fatalf("expected 8h ttl, got %s", cfg.SessionTTL)
	}
	if cfg.SubmissionMock {
		t.Fatalf("expected mock disabled")
	}
	if cfg.SubmissionURL != "" || cfg.LogoPath != "" {
		t.Fatalf("expected optional values empty, got url=%q logo=%q", cfg.SubmissionURL, cfg.LogoPath)
	}
	if cfg.Company != layout.DefaultCompany {
		t.Fatalf("expected default company, got %+v", cfg.Company)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LAYOUT_VARIANT", " Table ")
	t.Setenv("SUBMISSION_URL", " https://finance.example/submit ")
	t.Setenv("SUBMISSION_TIMEOUT", "30")
	t.Setenv("SUBMISSION_MOCK", "yes")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("COMPANY_NAME", "ACME AGRO")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Fatalf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.Variant != layout.VariantTable {
		t.Fatalf("expected table variant, got %s", cfg.Variant)
	}
	if cfg.SubmissionURL != "https://finance.example/submit" {
		t.Fatalf("expected trimmed url, got %q", cfg.SubmissionURL)
	}
	if cfg.SubmissionTimeout != 30*time.Second {
		t.Fatalf("expected 30s, got %s", cfg.SubmissionTimeout)
	}
	if !cfg.SubmissionMock {
		t.Fatalf("expected mock enabled")
	}
	if cfg.SessionTTL != 90*time.Minute {
		t.Fatalf("expected 90m, got %s", cfg.SessionTTL)
	}
	if cfg.Company.Name != "ACME AGRO" {
		t.Fatalf("expected company name override, got %q", cfg.Company.Name)
	}
	if cfg.Company.LegalName != layout.DefaultCompany.LegalName {
		t.Fatalf("expected legal name kept, got %q", cfg.Company.LegalName)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "http")
	t.Setenv("LAYOUT_VARIANT", "poster")
	t.Setenv("SUBMISSION_TIMEOUT", "-5s")
	t.Setenv("SESSION_TTL", "forever")

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port, got %d", cfg.Port)
	}
	if cfg.Variant != layout.VariantForm {
		t.Fatalf("expected form variant, got %s", cfg.Variant)
	}
	if cfg.SubmissionTimeout != 15*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.SubmissionTimeout)
	}
	if cfg.SessionTTL != 8*time.Hour {
		t.Fatalf("expected default ttl, got %s", cfg.SessionTTL)
	}
}

func TestBoolEnv(t *testing.T) {
	cases := map[string]bool{"1": true, "TRUE": true, "on": true, "mock": true, "0": false, "no": false, "": false}
	for raw, want := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("SUBMISSION_MOCK", raw)
			if got := boolEnv("SUBMISSION_MOCK"); got != want {
				t.Fatalf("expected %v for %q, got %v", want, raw, got)
			}
		})
	}
}
