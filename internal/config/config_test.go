package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DATABASE_URI", "ACCESS_POLICY", "UPLOAD_DIR", "UPLOAD_MAX_MB", "PUBLIC_BASE_URL",
		"CORS_ORIGINS", "S3_BUCKET", "BASE_URL", "ENABLE_HTTPS", "USER_FILE",
	} {
		t.Setenv(k, "")
	}
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	clearEnv(t)

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.DatabaseDSN != "recipebox.sqlite" {
		t.Fatalf("DatabaseDSN default expected 'recipebox.sqlite', got %q", cfg.DatabaseDSN)
	}
	if cfg.AccessPolicy != "owner" {
		t.Fatalf("AccessPolicy default expected 'owner', got %q", cfg.AccessPolicy)
	}
	if cfg.UploadDir != "uploads" || cfg.UploadMaxMB != 10 {
		t.Fatalf("upload defaults expected uploads/10, got %q/%d", cfg.UploadDir, cfg.UploadMaxMB)
	}
	if cfg.UploadMaxBytes() != 10*1024*1024 {
		t.Fatalf("UploadMaxBytes expected 10MiB, got %d", cfg.UploadMaxBytes())
	}
	if cfg.BaseURL != "localhost:3001" {
		t.Fatalf("BaseURL default expected 'localhost:3001', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:3001" {
		t.Fatalf("ServerURL default expected 'http://localhost:3001', got %q", cfg.ServerURL)
	}
	if cfg.PublicBaseURL != cfg.ServerURL {
		t.Fatalf("PublicBaseURL must default to ServerURL, got %q", cfg.PublicBaseURL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins default expected [*], got %v", cfg.CORSOrigins)
	}
	if cfg.UseS3() {
		t.Fatalf("S3 must be disabled without S3_BUCKET")
	}
	if filepath.Base(cfg.UserFile) != "last_login" {
		t.Fatalf("UserFile default expected .../last_login, got %q", cfg.UserFile)
	}
}

func TestNewConfig_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("ACCESS_POLICY", " OPEN ")
	t.Setenv("UPLOAD_MAX_MB", "3")
	t.Setenv("PUBLIC_BASE_URL", "https://cdn.example.com/")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("S3_BUCKET", "recipes")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AccessPolicy != "open" {
		t.Fatalf("AccessPolicy expected 'open', got %q", cfg.AccessPolicy)
	}
	if cfg.UploadMaxMB != 3 {
		t.Fatalf("UploadMaxMB expected 3, got %d", cfg.UploadMaxMB)
	}
	if cfg.PublicBaseURL != "https://cdn.example.com" {
		t.Fatalf("PublicBaseURL expected without trailing slash, got %q", cfg.PublicBaseURL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins expected 2 trimmed entries, got %v", cfg.CORSOrigins)
	}
	if !cfg.UseS3() {
		t.Fatalf("S3 must be enabled with S3_BUCKET")
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:3001
	clearEnv(t)
	t.Setenv("BASE_URL", "http://example.com:8080/path")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:3001" {
		t.Fatalf("BaseURL fallback expected 'localhost:3001', got %q", cfg.BaseURL)
	}
}

func TestNewConfig_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URI", "env.sqlite")

	resetFlagSet(t)
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{oldArgs[0], "-d", "flag.sqlite", "-policy", "open", "-base-url", "0.0.0.0:9000"}

	cfg := NewConfig()

	if cfg.DatabaseDSN != "flag.sqlite" {
		t.Fatalf("DatabaseDSN expected from flag, got %q", cfg.DatabaseDSN)
	}
	if cfg.AccessPolicy != "open" {
		t.Fatalf("AccessPolicy expected from flag, got %q", cfg.AccessPolicy)
	}
	if cfg.BaseURL != "0.0.0.0:9000" {
		t.Fatalf("BaseURL expected from flag, got %q", cfg.BaseURL)
	}
}
