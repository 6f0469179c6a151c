package service

import (
	"RecipeBox/internal/model"
	"strings"
)

// SearchFilter: условия поиска рецептов. Все условия объединяются через AND,
// пустое условие ничего не ограничивает.
type SearchFilter struct {
	Query    string   // подстрока title + description, в нижнем регистре
	Stickers []string // нужны все, сравнение с учётом регистра
	Include  []string // нужны все ингредиенты, в нижнем регистре
	Exclude  []string // ни одного из ингредиентов, в нижнем регистре
}

// ParseSearchFilter разбирает параметры запроса (списки через запятую).
func ParseSearchFilter(q, stickers, include, exclude string) SearchFilter {
	return SearchFilter{
		Query:    strings.ToLower(strings.TrimSpace(q)),
		Stickers: splitList(stickers, false),
		Include:  splitList(include, true),
		Exclude:  splitList(exclude, true),
	}
}

// IsEmpty: фильтр без условий.
func (f SearchFilter) IsEmpty() bool {
	return f.Query == "" && len(f.Stickers) == 0 && len(f.Include) == 0 && len(f.Exclude) == 0
}

// Match проверяет рецепт на соответствие всем условиям.
func (f SearchFilter) Match(v *model.RecipeView) bool {
	if f.Query != "" {
		text := strings.ToLower(v.Title + " " + v.Description)
		if !strings.Contains(text, f.Query) {
			return false
		}
	}
	if len(f.Stickers) > 0 {
		tags := toSet(v.Stickers, false)
		for _, s := range f.Stickers {
			if _, ok := tags[s]; !ok {
				return false
			}
		}
	}
	if len(f.Include) == 0 && len(f.Exclude) == 0 {
		return true
	}

	ings := toSet(v.Ingredients, true)
	for _, i := range f.Include {
		if _, ok := ings[i]; !ok {
			return false
		}
	}
	for _, x := range f.Exclude {
		if _, ok := ings[x]; ok {
			return false
		}
	}
	return true
}

func splitList(raw string, lower bool) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lower {
			part = strings.ToLower(part)
		}
		out = append(out, part)
	}
	return out
}

func toSet(values []string, lower bool) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if lower {
			v = strings.ToLower(v)
		}
		set[v] = struct{}{}
	}
	return set
}
