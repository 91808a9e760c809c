package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
)

var groupsCmd = &cli.Command{
	Name:  "groups",
	Usage: "List groups, or join/leave one",
	Flags: commonFlags,
	Commands: []*cli.Command{
		{
			Name:      "join",
			ArgsUsage: "<id>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad group id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				return client.JoinGroup(ctx, id)
			},
		},
		{
			Name:      "leave",
			ArgsUsage: "<id>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad group id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				return client.LeaveGroup(ctx, id)
			},
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		groups, err := client.Groups(ctx)
		if err != nil {
			return err
		}

		pp.Println(groups)
		return nil
	},
}

var eventsCmd = &cli.Command{
	Name:  "events",
	Usage: "List upcoming events, or RSVP to one",
	Flags: commonFlags,
	Commands: []*cli.Command{
		{
			Name:      "rsvp",
			ArgsUsage: "<id> <going|maybe|declined>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad event id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				return client.RSVP(ctx, id, c.Args().Get(1))
			},
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		events, err := client.Events(ctx)
		if err != nil {
			return err
		}

		pp.Println(events)
		return nil
	},
}

var notificationsCmd = &cli.Command{
	Name:  "notifications",
	Usage: "List notifications, or mark one read",
	Flags: commonFlags,
	Commands: []*cli.Command{
		{
			Name:      "read",
			ArgsUsage: "<id>",
			Flags:     commonFlags,
			Action: func(ctx context.Context, c *cli.Command) error {
				id, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
				if err != nil {
					return fmt.Errorf("bad notification id: %w", err)
				}

				client, _, err := buildClient(c)
				if err != nil {
					return err
				}
				defer client.Close() //nolint:errcheck

				return client.MarkNotificationRead(ctx, id)
			},
		},
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		notifications, err := client.Notifications(ctx)
		if err != nil {
			return err
		}

		pp.Println(notifications)
		return nil
	},
}
