package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"RecipeBox/internal/cli/commands"
	fsrepo "RecipeBox/internal/cli/repo/fs"
	"RecipeBox/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()

	if cfg.Version {
		printVersion(os.Stdout, cfg)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if code := commands.Dispatch(ctx, cfg, flag.Args()); code != 0 {
		cancel()
		os.Exit(code)
	}
}

// printVersion печатает версию сборки, адрес сервера и текущего пользователя.
func printVersion(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "RecipeBox CLI %s (built %s)\n", version, buildDate)
	fmt.Fprintf(w, "Server:    %s\n", cfg.ServerURL)

	login, err := fsrepo.UserFSStore{Path: cfg.UserFile}.LoadLogin()
	switch {
	case err == nil:
		fmt.Fprintf(w, "User:      %s\n", login)
	case errors.Is(err, fsrepo.ErrNoLogin):
		fmt.Fprintln(w, "User:      (not logged in)")
	default:
		fmt.Fprintf(w, "User:      (unreadable: %v)\n", err)
	}
	fmt.Fprintf(w, "User file: %s\n", cfg.UserFile)
}
