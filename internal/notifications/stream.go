// Package notifications consumes the backend's live notification push over
// a websocket and exposes it as a channel of results.
package notifications

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/zhulik/pips"

	"socialuni/internal/config"
	"socialuni/internal/core"
	"socialuni/internal/session"
	"socialuni/pkg/retry"
)

const wsPath = "/ws/notifications"

type Stream struct {
	Logger  *slog.Logger
	Config  *config.Config
	Session *session.Store

	ch chan pips.D[*core.Notification]
}

var _ core.NotificationSource = (*Stream)(nil)

func (s *Stream) Init(context.Context) error {
	s.ch = make(chan pips.D[*core.Notification])
	s.Logger = s.Logger.With("component", "notifications.Stream")
	return nil
}

func (s *Stream) Shutdown(context.Context) error {
	close(s.ch)
	return nil
}

func (s *Stream) C() <-chan pips.D[*core.Notification] {
	return s.ch
}

// Run consumes the stream until the context is canceled, reconnecting on
// transient failures.
func (s *Stream) Run(ctx context.Context) error {
	err := retry.WrapWithRetry(func() error {
		return s.consume(ctx)
	}, func(err error, _ int) bool {
		if errors.Is(err, context.Canceled) {
			return false
		}
		s.Logger.Error("notification stream dropped, reconnecting", "error", err)
		return true
	}, 10)()

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (s *Stream) consume(ctx context.Context) error {
	header := http.Header{}
	if token := s.Session.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL(s.Config.BaseURL), header)
	if err != nil {
		return err
	}
	defer conn.Close()

	// Unblocks the blocking read below on cancellation.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	s.Logger.Info("subscribed to notifications")

	for {
		notification := core.Notification{}
		if err := conn.ReadJSON(&notification); err != nil {
			if ctx.Err() != nil {
				return context.Canceled
			}
			return err
		}

		s.ch <- pips.NewD(&notification)
	}
}

func wsURL(baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/")
	u = strings.Replace(u, "https://", "wss://", 1)
	u = strings.Replace(u, "http://", "ws://", 1)
	return u + wsPath
}
