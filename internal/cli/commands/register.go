package commands

import (
	"context"
	"fmt"

	"RecipeBox/internal/config"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Register a username and make it current" }
func (registerCmd) Usage() string       { return "register <username>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	u, err := authService(cfg).Register(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Registered %s (id %d)\n", u.Username, u.ID)
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
