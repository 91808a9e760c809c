// Package cmd is the terminal front end: it stands in for the original
// browser views and drives the client library underneath.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"socialuni/internal/cmd/flags"
	"socialuni/internal/config"
	"socialuni/internal/session"
	"socialuni/pkg/clicfg"
	"socialuni/pkg/socialuni"
)

const VERSION = "0.1.0"

var commonFlags = []cli.Flag{flags.BaseURL, flags.TokenPath}

var cmd = &cli.Command{
	Name:    "socialuni",
	Usage:   "SocialUni is a terminal client for the SocialUni social network",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
	},
	Commands: []*cli.Command{
		loginCmd,
		logoutCmd,
		registerCmd,
		verifyCmd,
		whoamiCmd,
		feedCmd,
		postCmd,
		reactCmd,
		groupsCmd,
		eventsCmd,
		notificationsCmd,
		watchCmd,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run wires a long-running command through the DI container.
func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg, err := parseConfig(c)
	if err != nil {
		return err
	}

	store, err := openSession(cfg)
	if err != nil {
		return err
	}

	services = append(services, pal.Provide(cfg), pal.Provide(store))

	return pal.New(services...).
		InjectSlog().
		InitTimeout(2*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(10*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}

func parseConfig(c *cli.Command) (*config.Config, error) {
	cfg := config.Config{}
	if err := clicfg.ParseFlags(c, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func openSession(cfg *config.Config) (*session.Store, error) {
	storage, err := session.NewFileStorage(cfg.TokenPath)
	if err != nil {
		return nil, err
	}
	return session.New(storage)
}

// buildClient assembles the one-shot command plumbing: config, session and
// the API client with a terminal navigator.
func buildClient(c *cli.Command) (*socialuni.Client, *session.Store, error) {
	cfg, err := parseConfig(c)
	if err != nil {
		return nil, nil, err
	}

	store, err := openSession(cfg)
	if err != nil {
		return nil, nil, err
	}

	client := socialuni.New(&socialuni.Config{
		BaseURL:   cfg.BaseURL,
		Session:   store,
		Navigator: &terminalNavigator{route: "/home"},
		Logger:    slog.Default(),
	})

	return client, store, nil
}

// terminalNavigator stands in for the browser's router: it remembers the
// route and tells the user about forced view changes.
type terminalNavigator struct {
	mu    sync.Mutex
	route string
}

func (n *terminalNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.route
}

func (n *terminalNavigator) Navigate(route string) {
	n.mu.Lock()
	n.route = route
	n.mu.Unlock()

	slog.Info("navigating", "route", route)
}
