package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"socialuni/internal/core"
	"socialuni/internal/reactions"
)

var reactCmd = &cli.Command{
	Name:      "react",
	Usage:     "Toggle a reaction on a post or comment",
	ArgsUsage: "<post|comment> <id> <LIKE|LOVE|HAHA|WOW|SAD|ANGRY>",
	Flags:     commonFlags,
	Action: func(ctx context.Context, c *cli.Command) error {
		target, rtype, err := parseReactArgs(c)
		if err != nil {
			return err
		}

		client, store, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		manager := reactions.NewManager(client, store, slog.Default())
		manager.Notify = func(message string) { fmt.Println(message) }

		manager.Load(ctx, target)

		view, err := manager.React(ctx, target, rtype)
		if err != nil {
			return err
		}

		if view.Current == nil {
			fmt.Printf("reaction removed, %d left on the %s\n", view.Count, target.Kind)
		} else {
			fmt.Printf("reacted %s, %d reactions on the %s\n", view.Current.Type, view.Count, target.Kind)
		}
		return nil
	},
}

func parseReactArgs(c *cli.Command) (core.Target, core.ReactionType, error) {
	kind := core.TargetKind(c.Args().Get(0))
	if kind != core.TargetPost && kind != core.TargetComment {
		return core.Target{}, "", fmt.Errorf("bad target kind %q, want post or comment", c.Args().Get(0))
	}

	id, err := strconv.ParseInt(c.Args().Get(1), 10, 64)
	if err != nil {
		return core.Target{}, "", fmt.Errorf("bad target id: %w", err)
	}

	rtype := core.ReactionType(strings.ToUpper(c.Args().Get(2)))
	switch rtype {
	case core.ReactionLike, core.ReactionLove, core.ReactionHaha,
		core.ReactionWow, core.ReactionSad, core.ReactionAngry:
	default:
		return core.Target{}, "", fmt.Errorf("unknown reaction type %q", c.Args().Get(2))
	}

	return core.Target{Kind: kind, ID: id}, rtype, nil
}
