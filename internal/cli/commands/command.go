package commands

import (
	"RecipeBox/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ErrUsage: аргументы неверны, Dispatch печатает строку Usage команды.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "login".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "login <username>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — куда команды печатают результат. В тестах подменяется буфером.
var Out io.Writer = os.Stdout

// RegisterCmd регистрирует команду; вызывается из init() файла команды.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// accountCommands выводятся в справке отдельным разделом, остальные идут в раздел рецептов.
var accountCommands = map[string]bool{
	"register":   true,
	"login":      true,
	"logout":     true,
	"whoami":     true,
	"me":         true,
	"friend-add": true,
}

// FormatGlobalUsage строит справку по всем командам, разбитую на разделы.
func FormatGlobalUsage() string {
	lines := []string{
		"RecipeBox CLI",
		"",
		"Usage:",
		"  rbcli [--base-url <host:port>] [--https] <command> [args]",
	}
	var account, recipes []string
	for _, c := range List() {
		line := fmt.Sprintf("  %-44s %s", c.Usage(), c.Description())
		if accountCommands[c.Name()] {
			account = append(account, line)
		} else {
			recipes = append(recipes, line)
		}
	}
	if len(account) > 0 {
		lines = append(lines, "", "Account:")
		lines = append(lines, account...)
	}
	if len(recipes) > 0 {
		lines = append(lines, "", "Recipes:")
		lines = append(lines, recipes...)
	}
	lines = append(lines, "", "The current username is kept in USER_FILE (--user-file) and sent as X-User.")
	return strings.Join(lines, "\n") + "\n"
}
