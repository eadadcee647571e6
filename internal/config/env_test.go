package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoadEnvDefaultsWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ADDR", "DB_NAME", "JWT_TTL_HOURS", "CORS_ALLOWED_ORIGINS"} {
		unsetEnv(t, k)
	}

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("missing .env must not be an error, got %v", err)
	}
	if env.AppAddr != ":8080" || env.DBName != "luggage_billing" {
		t.Fatalf("unexpected defaults: %+v", env)
	}
	if env.JWTTTL != 24*time.Hour {
		t.Fatalf("ttl = %v", env.JWTTTL)
	}
	if len(env.CORSAllowedOrigins) != 3 {
		t.Fatalf("origins = %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "DB_NAME")
	unsetEnv(t, "JWT_TTL_HOURS")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_NAME=from_file\nJWT_TTL_HOURS=2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.DBName != "from_file" || env.JWTTTL != 2*time.Hour {
		t.Fatalf("dotenv values not applied: %+v", env)
	}
}

func TestLoadEnvReturnsUnreadableDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t, "APP_ADDR")
	// A directory named .env exists but cannot be parsed as a file.
	if err := os.Mkdir(filepath.Join(dir, ".env"), 0o755); err != nil {
		t.Fatal(err)
	}

	env, err := LoadEnv()
	if err == nil {
		t.Fatal("expected the .env read error to be returned")
	}
	if env.AppAddr != ":8080" {
		t.Fatalf("env should still fall back to defaults, got %q", env.AppAddr)
	}
}
