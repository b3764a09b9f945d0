package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	if config.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", config.Server.Port)
	}
	if config.Clients.AlphaVantage.BaseURL != "https://www.alphavantage.co" {
		t.Errorf("base URL = %q", config.Clients.AlphaVantage.BaseURL)
	}
	if got := config.Clients.AlphaVantage.GetRateInterval(); got != 12*time.Second {
		t.Errorf("rate interval = %v, want 12s", got)
	}
	if got := config.Auth.GetTokenExpiry(); got != 24*time.Hour {
		t.Errorf("token expiry = %v, want 24h", got)
	}
	if config.IsProduction() {
		t.Error("default config must not be production")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stockpulse.toml")

	content := `
environment = "production"

[server]
port = 9090

[clients.alphavantage]
api_key = "file-key"
rate_interval = "1s"

[auth]
jwt_secret = "file-secret"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if !config.IsProduction() {
		t.Error("environment override not applied")
	}
	if config.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", config.Server.Port)
	}
	if config.Clients.AlphaVantage.APIKey != "file-key" {
		t.Errorf("api key = %q", config.Clients.AlphaVantage.APIKey)
	}
	if got := config.Clients.AlphaVantage.GetRateInterval(); got != time.Second {
		t.Errorf("rate interval = %v, want 1s", got)
	}
	// Unset fields keep their defaults.
	if config.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q, want default", config.Server.Host)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig("/nonexistent/stockpulse.toml")
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if config.Server.Port != 8080 {
		t.Errorf("port = %d, want default 8080", config.Server.Port)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STOCKPULSE_PORT", "7070")
	t.Setenv("STOCKPULSE_ENV", "production")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "env-key")

	config, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if config.Server.Port != 7070 {
		t.Errorf("port = %d, want 7070", config.Server.Port)
	}
	if !config.IsProduction() {
		t.Error("STOCKPULSE_ENV override not applied")
	}
	if config.Clients.AlphaVantage.APIKey != "env-key" {
		t.Errorf("api key = %q, want env-key", config.Clients.AlphaVantage.APIKey)
	}
}

func TestInvalidDurationsFallBack(t *testing.T) {
	c := AlphaVantageConfig{RateInterval: "garbage", Timeout: ""}
	if got := c.GetRateInterval(); got != 12*time.Second {
		t.Errorf("rate interval fallback = %v, want 12s", got)
	}
	if got := c.GetTimeout(); got != 30*time.Second {
		t.Errorf("timeout fallback = %v, want 30s", got)
	}

	a := AuthConfig{TokenExpiry: "never"}
	if got := a.GetTokenExpiry(); got != 24*time.Hour {
		t.Errorf("token expiry fallback = %v, want 24h", got)
	}
}
