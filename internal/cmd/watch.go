package cmd

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	"socialuni/internal/cmd/flags"
	"socialuni/internal/core"
	"socialuni/internal/metrics"
	"socialuni/internal/notifications"
)

var watchCmd = &cli.Command{
	Name:  "watch",
	Usage: "Stay connected and stream live notifications to the terminal",
	Flags: append([]cli.Flag{flags.MetricsAddr}, commonFlags...),
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&notifications.Stream{}),
			pal.Provide(&watcher{}),
			pal.Provide(&metrics.Server{}),
		)
	},
}

type watcher struct {
	Logger *slog.Logger
	Stream *notifications.Stream
}

func (w *watcher) Init(context.Context) error {
	w.Logger = w.Logger.With("component", "cmd.watcher")
	return nil
}

func (w *watcher) Run(ctx context.Context) error {
	return pips.New[*core.Notification, any]().
		Then(apply.Each(metrics.CountNotification)).
		Then(apply.Map(func(_ context.Context, n *core.Notification) (any, error) {
			w.Logger.Info("notification", "type", n.Type, "message", n.Message)
			return n, nil
		})).
		Run(ctx, w.Stream.C()).
		Wait(ctx)
}
