package commands

import (
	"bytes"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"RecipeBox/internal/config"
)

// testConfig: конфиг с временным файлом логина и адресом тестового сервера.
func testConfig(t *testing.T, ts *httptest.Server) *config.Config {
	t.Helper()
	cfg := &config.Config{UserFile: filepath.Join(t.TempDir(), "last_login")}
	if ts != nil {
		cfg.ServerURL = ts.URL
	}
	return cfg
}

// captureOut перенаправляет Out в буфер до конца теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func saveLogin(t *testing.T, cfg *config.Config, name string) {
	t.Helper()
	if err := os.WriteFile(cfg.UserFile, []byte(name+"\n"), 0o600); err != nil {
		t.Fatalf("write login: %v", err)
	}
}
