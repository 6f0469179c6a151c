package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"RecipeBox/internal/cli/service"
	"RecipeBox/internal/config"
	"RecipeBox/internal/model"
)

type recipesCmd struct{}

func (recipesCmd) Name() string        { return "recipes" }
func (recipesCmd) Description() string { return "List or search recipes, newest first" }
func (recipesCmd) Usage() string {
	return "recipes [--q text] [--stickers a,b] [--include a,b] [--exclude a,b]"
}

func (recipesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("recipes", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	q := fs.String("q", "", "text in title or description")
	stickers := fs.String("stickers", "", "required stickers, comma separated")
	include := fs.String("include", "", "required ingredients, comma separated")
	exclude := fs.String("exclude", "", "forbidden ingredients, comma separated")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return ErrUsage
	}

	params := url.Values{}
	for k, v := range map[string]string{"q": *q, "stickers": *stickers, "include": *include, "exclude": *exclude} {
		if v != "" {
			params.Set(k, v)
		}
	}
	path := "/api/recipes"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	c, err := client(cfg)
	if err != nil {
		return err
	}
	var list []model.RecipeView
	if err := c.Get(ctx, path, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No recipes")
		return nil
	}
	for _, r := range list {
		service.RenderRecipeLine(Out, r)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type recipeGetCmd struct{}

func (recipeGetCmd) Name() string        { return "recipe-get" }
func (recipeGetCmd) Description() string { return "Show one recipe" }
func (recipeGetCmd) Usage() string       { return "recipe-get <id>" }

func (recipeGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := client(cfg)
	if err != nil {
		return err
	}
	var r model.RecipeView
	if err := c.Get(ctx, fmt.Sprintf("/api/recipes/%d", id), &r); err != nil {
		return err
	}
	service.RenderRecipe(Out, r)
	return nil
}

type recipeDeleteCmd struct{}

func (recipeDeleteCmd) Name() string        { return "recipe-delete" }
func (recipeDeleteCmd) Description() string { return "Delete a recipe" }
func (recipeDeleteCmd) Usage() string       { return "recipe-delete <id>" }

func (recipeDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	c, err := client(cfg)
	if err != nil {
		return err
	}
	if err := c.Do(ctx, "DELETE", fmt.Sprintf("/api/recipes/%d", id), nil, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted #%d\n", id)
	return nil
}

type stickersCmd struct{}

func (stickersCmd) Name() string        { return "stickers" }
func (stickersCmd) Description() string { return "List known dietary stickers" }
func (stickersCmd) Usage() string       { return "stickers" }

func (stickersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := client(cfg)
	if err != nil {
		return err
	}
	var list []model.Sticker
	if err := c.Get(ctx, "/api/stickers", &list); err != nil {
		return err
	}
	for _, s := range list {
		fmt.Fprintf(Out, "  %-14s %s\n", s.Value, s.Label)
	}
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUsage
	}
	return id, nil
}

func init() {
	RegisterCmd(recipesCmd{})
	RegisterCmd(recipeGetCmd{})
	RegisterCmd(recipeDeleteCmd{})
	RegisterCmd(stickersCmd{})
}
