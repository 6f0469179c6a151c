package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"RecipeBox/internal/config"
)

func TestPrintVersion(t *testing.T) {
	cfg := &config.Config{
		ServerURL: "http://localhost:3001",
		UserFile:  filepath.Join(t.TempDir(), "last_login"),
	}

	var buf bytes.Buffer
	printVersion(&buf, cfg)
	out := buf.String()
	if !strings.HasPrefix(out, "RecipeBox CLI dev") {
		t.Fatalf("unexpected banner: %q", out)
	}
	if !strings.Contains(out, "Server:    http://localhost:3001") || !strings.Contains(out, "(not logged in)") {
		t.Fatalf("unexpected output: %q", out)
	}

	if err := os.WriteFile(cfg.UserFile, []byte("alice\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	printVersion(&buf, cfg)
	if !strings.Contains(buf.String(), "User:      alice") {
		t.Fatalf("stored login not reported: %q", buf.String())
	}
}
