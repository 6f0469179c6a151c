package service

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"RecipeBox/internal/model"
)

// stepPrefix: нумерация шага вида "1. ", "2) ".
var stepPrefix = regexp.MustCompile(`^\s*\d+[.)]\s*`)

// SplitList разбивает строку по sep, обрезает пробелы и выбрасывает пустые элементы.
func SplitList(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseSteps разбирает шаги, разделённые ';' или переводом строки,
// снимая числовые префиксы ("1. ") и пропуская пустые строки.
func ParseSteps(raw string) []string {
	raw = strings.ReplaceAll(raw, "\n", ";")
	out := []string{}
	for _, line := range SplitList(raw, ";") {
		if line = strings.TrimSpace(stepPrefix.ReplaceAllString(line, "")); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// StickerLabels возвращает подписи стикеров для вывода.
func StickerLabels(stickers []string) []string {
	out := make([]string, 0, len(stickers))
	for _, s := range stickers {
		out = append(out, model.StickerLabel(s))
	}
	return out
}

// RenderRecipe печатает рецепт целиком.
func RenderRecipe(w io.Writer, r model.RecipeView) {
	fmt.Fprintf(w, "#%d %s", r.ID, r.Title)
	if len(r.Stickers) > 0 {
		fmt.Fprintf(w, "  [%s]", strings.Join(StickerLabels(r.Stickers), ", "))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  by: %s\n", r.Owner)
	if r.Description != "" {
		fmt.Fprintf(w, "  %s\n", r.Description)
	}
	if len(r.Ingredients) > 0 {
		fmt.Fprintln(w, "  Ingredients:")
		for _, i := range r.Ingredients {
			fmt.Fprintf(w, "    - %s\n", i)
		}
	}
	if len(r.Steps) > 0 {
		fmt.Fprintln(w, "  Steps:")
		for n, s := range r.Steps {
			fmt.Fprintf(w, "    %d. %s\n", n+1, s)
		}
	}
	if len(r.Images) > 0 {
		fmt.Fprintln(w, "  Images:")
		for _, u := range r.Images {
			fmt.Fprintf(w, "    %s\n", u)
		}
	}
}

// RenderRecipeLine печатает рецепт одной строкой для списков.
func RenderRecipeLine(w io.Writer, r model.RecipeView) {
	line := fmt.Sprintf("- #%d %s (by %s)", r.ID, r.Title, r.Owner)
	if len(r.Stickers) > 0 {
		line += "  [" + strings.Join(StickerLabels(r.Stickers), ", ") + "]"
	}
	fmt.Fprintln(w, line)
}
