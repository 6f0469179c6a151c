package commands

import (
	"context"
	"fmt"
	"strings"

	"RecipeBox/internal/config"
)

type meResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Friends  []int64 `json:"friends"`
}

type meCmd struct{}

func (meCmd) Name() string        { return "me" }
func (meCmd) Description() string { return "Show the current user and friend ids" }
func (meCmd) Usage() string       { return "me" }

func (meCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	c, err := requireClient(cfg)
	if err != nil {
		return err
	}
	var me meResponse
	if err := c.Get(ctx, "/api/me", &me); err != nil {
		return err
	}
	fmt.Fprintf(Out, "id:       %d\n", me.ID)
	fmt.Fprintf(Out, "username: %s\n", me.Username)
	if len(me.Friends) == 0 {
		fmt.Fprintln(Out, "friends:  none")
		return nil
	}
	ids := make([]string, 0, len(me.Friends))
	for _, id := range me.Friends {
		ids = append(ids, fmt.Sprint(id))
	}
	fmt.Fprintf(Out, "friends:  %s\n", strings.Join(ids, ", "))
	return nil
}

type friendAddCmd struct{}

func (friendAddCmd) Name() string        { return "friend-add" }
func (friendAddCmd) Description() string { return "Become mutual friends with another user" }
func (friendAddCmd) Usage() string       { return "friend-add <username>" }

func (friendAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return ErrUsage
	}
	c, err := requireClient(cfg)
	if err != nil {
		return err
	}
	if err := c.Post(ctx, "/api/friends/add", map[string]string{"friendUsername": args[0]}, nil); err != nil {
		return err
	}
	fmt.Fprintf(Out, "You and %s are now friends\n", args[0])
	return nil
}

func init() {
	RegisterCmd(meCmd{})
	RegisterCmd(friendAddCmd{})
}
