package commands

import (
	"context"
	"fmt"

	"RecipeBox/internal/config"
)

type uploadCmd struct{}

func (uploadCmd) Name() string        { return "upload" }
func (uploadCmd) Description() string { return "Upload an image and print its URL" }
func (uploadCmd) Usage() string       { return "upload <file>" }

func (uploadCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	c, err := client(cfg)
	if err != nil {
		return err
	}
	var res struct {
		URL string `json:"url"`
	}
	if err := c.Upload(ctx, "/api/upload", args[0], &res); err != nil {
		return err
	}
	fmt.Fprintln(Out, res.URL)
	return nil
}

func init() { RegisterCmd(uploadCmd{}) }
