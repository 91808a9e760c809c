package cmd

import (
	"context"
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"

	"socialuni/pkg/socialuni"
)

var loginCmd = &cli.Command{
	Name:  "login",
	Usage: "Log in and persist the session token",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
	}, commonFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		claims, err := client.Login(ctx, c.String("email"), c.String("password"))
		if err != nil {
			return err
		}

		fmt.Printf("logged in as %s (%s), landing at %s\n",
			claims.Email, claims.Role, socialuni.LandingRoute(claims.Role))
		return nil
	},
}

var logoutCmd = &cli.Command{
	Name:  "logout",
	Usage: "Log out and discard the session token",
	Flags: commonFlags,
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		return client.Logout(ctx)
	},
}

var registerCmd = &cli.Command{
	Name:  "register",
	Usage: "Create an account",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "username", Required: true},
		&cli.StringFlag{Name: "email", Required: true},
		&cli.StringFlag{Name: "password", Required: true},
	}, commonFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		claims, err := client.Register(ctx, c.String("username"), c.String("email"), c.String("password"))
		if err != nil {
			return err
		}

		fmt.Printf("registered %s, check your inbox for the verification code\n", claims.Email)
		return nil
	},
}

var verifyCmd = &cli.Command{
	Name:      "verify",
	Usage:     "Submit the emailed verification code",
	ArgsUsage: "<code>",
	Flags:     commonFlags,
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		return client.Verify(ctx, c.Args().Get(0))
	},
}

var whoamiCmd = &cli.Command{
	Name:  "whoami",
	Usage: "Show the current session's user",
	Flags: commonFlags,
	Action: func(ctx context.Context, c *cli.Command) error {
		client, _, err := buildClient(c)
		if err != nil {
			return err
		}
		defer client.Close() //nolint:errcheck

		user, err := client.CurrentUser(ctx)
		if err != nil {
			return err
		}

		pp.Println(user)
		return nil
	},
}
