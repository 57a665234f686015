package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const minimalConfig = `
database:
  host: "localhost"
  dbname: "content_generator"
auth:
  jwt_secret: "test-secret-key-32-chars-minimum"
openrouter:
  api_key: "test-key"
`

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, minimalConfig)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Errorf("Server.Address = %q, want :8080", cfg.Server.Address)
	}
	if cfg.Server.WriteTimeout != config.DefaultWriteTimeout {
		t.Errorf("Server.WriteTimeout = %v, want %v", cfg.Server.WriteTimeout, config.DefaultWriteTimeout)
	}
	if cfg.Database.Port != "5432" {
		t.Errorf("Database.Port = %q, want 5432", cfg.Database.Port)
	}
	if cfg.Redis.CacheTTL != 5*time.Minute {
		t.Errorf("Redis.CacheTTL = %v, want 5m", cfg.Redis.CacheTTL)
	}
	if cfg.Auth.TokenExpiry != 24*time.Hour {
		t.Errorf("Auth.TokenExpiry = %v, want 24h", cfg.Auth.TokenExpiry)
	}
	if cfg.OpenRouter.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("OpenRouter.BaseURL = %q, want the OpenRouter endpoint", cfg.OpenRouter.BaseURL)
	}
	if cfg.OpenRouter.Model != "openai/gpt-3.5-turbo" {
		t.Errorf("OpenRouter.Model = %q, want openai/gpt-3.5-turbo", cfg.OpenRouter.Model)
	}
	if cfg.OpenRouter.MaxTokens != 500 {
		t.Errorf("OpenRouter.MaxTokens = %d, want 500", cfg.OpenRouter.MaxTokens)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, minimalConfig)

	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("DATABASE_PASSWORD", "s3cret")
	t.Setenv("JWT_SECRET", "env-secret-key-32-chars-minimum!")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q, want env override :9090", cfg.Server.Address)
	}
	if cfg.Database.Password != "s3cret" {
		t.Errorf("Database.Password = %q, want env override", cfg.Database.Password)
	}
	if cfg.Auth.JWTSecret != "env-secret-key-32-chars-minimum!" {
		t.Errorf("Auth.JWTSecret = %q, want env override", cfg.Auth.JWTSecret)
	}
	if cfg.OpenRouter.Model != "openai/gpt-4o-mini" {
		t.Errorf("OpenRouter.Model = %q, want env override", cfg.OpenRouter.Model)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true from APP_DEBUG")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "server: [not a mapping")

	if _, err := config.Load(path); err == nil {
		t.Error("Load() expected error for invalid yaml")
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name: "missing jwt secret",
			content: `
database:
  host: "localhost"
  dbname: "content_generator"
openrouter:
  api_key: "test-key"
`,
		},
		{
			name: "missing api key without allow_mock",
			content: `
database:
  host: "localhost"
  dbname: "content_generator"
auth:
  jwt_secret: "test-secret-key-32-chars-minimum"
`,
		},
		{
			name: "temperature out of range",
			content: minimalConfig + `
  temperature: 3.5
`,
		},
		{
			name: "top_p out of range",
			content: minimalConfig + `
  top_p: 1.5
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfigFile(t, tc.content)

			if _, err := config.Load(path); err == nil {
				t.Error("Load() expected validation error")
			}
		})
	}
}

func TestLoad_AllowMockWithoutKey(t *testing.T) {
	path := writeConfigFile(t, `
database:
  host: "localhost"
  dbname: "content_generator"
auth:
  jwt_secret: "test-secret-key-32-chars-minimum"
openrouter:
  allow_mock: true
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.OpenRouter.AllowMock {
		t.Error("OpenRouter.AllowMock = false, want true")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "s3cret",
		DBName:   "content_generator",
		SSLMode:  "disable",
	}

	want := "host=localhost port=5432 user=postgres password=s3cret dbname=content_generator sslmode=disable"
	if got := dbCfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
