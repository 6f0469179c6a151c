package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"RecipeBox/internal/cli/service"
	"RecipeBox/internal/config"
	"RecipeBox/internal/model"
)

// recipeFlags: общие флаги recipe-add и recipe-edit.
type recipeFlags struct {
	fs          *flag.FlagSet
	title       *string
	description *string
	ingredients *string
	steps       *string
	stickers    *string
	images      *string
}

func newRecipeFlags(name string) *recipeFlags {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return &recipeFlags{
		fs:          fs,
		title:       fs.String("title", "", "recipe title"),
		description: fs.String("description", "", "short description"),
		ingredients: fs.String("ingredients", "", "ingredients separated by ';'"),
		steps:       fs.String("steps", "", `steps separated by ';', e.g. "1. mix;2. bake"`),
		stickers:    fs.String("stickers", "", "stickers separated by ','"),
		images:      fs.String("images", "", "image URLs separated by ','"),
	}
}

// payload собирает тело запроса. onlySet=true: только явно переданные флаги.
func (f *recipeFlags) payload(onlySet bool) map[string]any {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	use := func(name string) bool { return !onlySet || set[name] }

	body := map[string]any{}
	if use("title") {
		body["title"] = *f.title
	}
	if use("description") {
		body["description"] = *f.description
	}
	if use("ingredients") {
		body["ingredients"] = service.SplitList(*f.ingredients, ";")
	}
	if use("steps") {
		body["steps"] = service.ParseSteps(*f.steps)
	}
	if use("stickers") {
		body["stickers"] = service.SplitList(*f.stickers, ",")
	}
	if use("images") {
		body["images"] = service.SplitList(*f.images, ",")
	}
	return body
}

// warnUnknownStickers предупреждает о стикерах вне словаря (сервер их примет).
func warnUnknownStickers(body map[string]any) {
	list, _ := body["stickers"].([]string)
	var unknown []string
	for _, s := range list {
		if !model.IsKnownSticker(s) {
			unknown = append(unknown, s)
		}
	}
	if len(unknown) > 0 {
		fmt.Fprintf(Out, "note: unknown stickers %s\n", strings.Join(unknown, ", "))
	}
}

type recipeAddCmd struct{}

func (recipeAddCmd) Name() string        { return "recipe-add" }
func (recipeAddCmd) Description() string { return "Create a recipe" }
func (recipeAddCmd) Usage() string {
	return "recipe-add --title <t> [--description d] [--ingredients a;b] [--steps \"1. x;2. y\"] [--stickers a,b] [--images u1,u2]"
}

func (recipeAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	f := newRecipeFlags("recipe-add")
	if err := f.fs.Parse(args); err != nil || f.fs.NArg() != 0 {
		return ErrUsage
	}
	if strings.TrimSpace(*f.title) == "" {
		return ErrUsage
	}
	body := f.payload(false)
	warnUnknownStickers(body)

	c, err := client(cfg)
	if err != nil {
		return err
	}
	var r model.RecipeView
	if err := c.Post(ctx, "/api/recipes", body, &r); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	service.RenderRecipe(Out, r)
	return nil
}

type recipeEditCmd struct{}

func (recipeEditCmd) Name() string        { return "recipe-edit" }
func (recipeEditCmd) Description() string { return "Update a recipe; only given fields change" }
func (recipeEditCmd) Usage() string {
	return "recipe-edit <id> [--title t] [--description d] [--ingredients a;b] [--steps ..] [--stickers ..] [--images ..]"
}

func (recipeEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	// id допускается как до, так и после флагов
	var rawID string
	if !strings.HasPrefix(args[0], "-") {
		rawID, args = args[0], args[1:]
	}
	f := newRecipeFlags("recipe-edit")
	if err := f.fs.Parse(args); err != nil {
		return ErrUsage
	}
	if rawID == "" {
		if f.fs.NArg() != 1 {
			return ErrUsage
		}
		rawID = f.fs.Arg(0)
	} else if f.fs.NArg() != 0 {
		return ErrUsage
	}
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	body := f.payload(true)
	if len(body) == 0 {
		return ErrUsage
	}
	warnUnknownStickers(body)

	c, err := client(cfg)
	if err != nil {
		return err
	}
	var r model.RecipeView
	if err := c.Do(ctx, "PUT", fmt.Sprintf("/api/recipes/%d", id), body, &r); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Updated:")
	service.RenderRecipe(Out, r)
	return nil
}

func init() {
	RegisterCmd(recipeAddCmd{})
	RegisterCmd(recipeEditCmd{})
}
