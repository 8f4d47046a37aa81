package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port: expected 8080, got %q", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env: expected development, got %q", cfg.Env)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir: expected data, got %q", cfg.DataDir)
	}
	if cfg.Webhooks.Timeout != 5*time.Second {
		t.Errorf("Webhooks.Timeout: expected 5s, got %v", cfg.Webhooks.Timeout)
	}
	if cfg.Webhooks.Workers != 2 {
		t.Errorf("Webhooks.Workers: expected 2, got %d", cfg.Webhooks.Workers)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/atlante/fixtures")
	t.Setenv("CRM_WEBHOOK_URL", "https://crm.example.com/hook")
	t.Setenv("WEBHOOK_TIMEOUT", "250ms")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Port: expected 9090, got %q", cfg.Port)
	}
	if cfg.DataDir != "/var/lib/atlante/fixtures" {
		t.Errorf("DataDir: got %q", cfg.DataDir)
	}
	if cfg.Webhooks.CRMURL != "https://crm.example.com/hook" {
		t.Errorf("Webhooks.CRMURL: got %q", cfg.Webhooks.CRMURL)
	}
	if cfg.Webhooks.Timeout != 250*time.Millisecond {
		t.Errorf("Webhooks.Timeout: got %v", cfg.Webhooks.Timeout)
	}
}
