package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// clearEnv blanks the overrides so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"MONGO_URI", "DB_DRIVER", "JWT_SECRET", "GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET",
		"GOOGLE_REDIRECT_URL", "CLIENT_URL", "GIN_MODE", "REDIS_ADDR", "REDIS_PASSWORD", "LOG_MODE", "PORT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  clientUrl: http://localhost:5173
database:
  uri: mongodb://localhost:27017/brainscript
jwt:
  secret: s3cret
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("port: got %d want 8000", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mongo" {
		t.Errorf("driver: got %q want mongo", cfg.Database.Driver)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:5173" {
		t.Errorf("allowed origins: got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Google.RedirectURL != "http://localhost:5173/auth/google/callback" {
		t.Errorf("redirect url: got %q", cfg.Google.RedirectURL)
	}
	if cfg.GoogleEnabled() {
		t.Errorf("google login should be disabled without client credentials")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: memory
jwt:
  secret: from-file
`)
	clearEnv(t)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.JWT.Secret != "from-env" {
		t.Errorf("jwt secret: got %q want from-env", cfg.JWT.Secret)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d want 9090", cfg.Server.Port)
	}
}

func TestLoadConfigRejectsMissingSecret(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: memory
`)
	clearEnv(t)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error when jwt.secret is missing")
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
jwt:
  secret: x
`)
	clearEnv(t)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for an unknown driver")
	}
}
