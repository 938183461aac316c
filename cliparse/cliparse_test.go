// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseServerFlags_EnvVars(t *testing.T) {
	// Set env vars
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("PUBLISH_KEY_SALT", "test-salt")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := ParseServerFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.CacheTTL != 30*time.Second {
		t.Errorf("expected 30s cache TTL, got %v", cfg.CacheTTL)
	}
}

func TestParseServerFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")

	cfg, err := ParseServerFlags([]string{"-p", "8081", "-d", "file:test.db", "--publish-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8081 {
		t.Errorf("CLI should override env: expected 8081, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseServerFlags_Errors(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("PUBLISH_KEY_SALT")
	os.Unsetenv("DATABASE_TYPE")

	tests := []struct {
		name string
		args []string
	}{
		{"missing database", []string{"--publish-salt", "s"}},
		{"missing salt", []string{"-d", "file:test.db"}},
		{"bad database type", []string{"-d", "x", "-t", "mysql", "--publish-salt", "s"}},
		{"unknown flag", []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseServerFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestParseClientFlags(t *testing.T) {
	os.Unsetenv("POPULAR_API_URL")
	os.Unsetenv("SEARCH_HOST")

	cfg, err := ParseClientFlags([]string{"-f", "#weekly"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("unexpected default API URL %s", cfg.APIURL)
	}
	if cfg.SearchHost != "hypnohub.net" {
		t.Errorf("unexpected default search host %s", cfg.SearchHost)
	}
	if cfg.Fragment != "weekly" {
		t.Errorf("expected fragment without '#', got %q", cfg.Fragment)
	}

	t.Setenv("POPULAR_API_URL", "http://api.test")
	cfg, err = ParseClientFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "http://api.test" {
		t.Errorf("expected env API URL, got %s", cfg.APIURL)
	}
}
