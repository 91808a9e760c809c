package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/k0kubun/pp"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"socialuni/internal/core"
	"socialuni/pkg/socialuni"
)

var feedCmd = &cli.Command{
	Name:  "feed",
	Usage: "List posts: the whole feed, a category, a date range or trending",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "category"},
		&cli.TimestampFlag{Name: "from", Config: cli.TimestampConfig{Layouts: []string{time.RFC3339, time.DateOnly}}},
		&cli.TimestampFlag{Name: "to", Config: cli.TimestampConfig{Layouts: []string{time.RFC3339, time.DateOnly}}},
		&cli.BoolFlag{Name: "trending"},
	}, commonFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		posts, err := fetchFeed(ctx, c, client)
		if err != nil {
			return err
		}

		for _, line := range lo.Map(posts, func(post *core.Post, _ int) string {
			return fmt.Sprintf("#%-6d %-12s %-40s by %s (%d reactions)",
				post.ID, post.Category, post.Title, post.AuthorUsername, post.ReactionCount)
		}) {
			fmt.Println(line)
		}
		return nil
	},
}

func fetchFeed(ctx context.Context, c *cli.Command, client *socialuni.Client) ([]*core.Post, error) {
	switch {
	case c.Bool("trending"):
		return client.TrendingPosts(ctx)
	case c.String("category") != "":
		return client.PostsByCategory(ctx, c.String("category"))
	case !c.Timestamp("from").IsZero():
		to := c.Timestamp("to")
		if to.IsZero() {
			to = time.Now()
		}
		return client.PostsByDateRange(ctx, c.Timestamp("from"), to)
	default:
		return client.Posts(ctx)
	}
}

var postCmd = &cli.Command{
	Name:  "post",
	Usage: "Fetch, create or delete a post",
	Commands: []*cli.Command{
		{
			Name:      "get",
			ArgsUsage: "<id>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad post id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				post, err := client.Post(ctx, id)
				if err != nil {
					return err
				}

				pp.Println(post)
				return nil
			},
		},
		{
			Name: "create",
			Flags: append([]cli.Flag{
				&cli.StringFlag{Name: "title", Required: true},
				&cli.StringFlag{Name: "content", Required: true},
				&cli.StringFlag{Name: "category"},
				&cli.IntFlag{Name: "group"},
			}, commonFlags...),
			Action: func(ctx context.Context, c *cli.Command) error {
				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				post, err := client.CreatePost(ctx, &socialuni.PostInput{
					Title:    c.String("title"),
					Content:  c.String("content"),
					Category: c.String("category"),
					GroupID:  int64(c.Int("group")),
				})
				if err != nil {
					return err
				}

				fmt.Printf("created post #%d\n", post.ID)
				return nil
			},
		},
		{
			Name:      "delete",
			ArgsUsage: "<id>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad post id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				return client.DeletePost(ctx, id)
			},
		},
	},
}
