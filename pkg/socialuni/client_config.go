package socialuni

import (
	"log/slog"
	"time"

	"resty.dev/v3"

	"socialuni/internal/core"
	"socialuni/internal/session"
)

// DefaultTimeout bounds every request; a request running past it settles
// as a network error.
const DefaultTimeout = 10 * time.Second

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Session is required: the client reads the token on every
	// authenticated request and clears it on detected expiry.
	Session *session.Store

	// Navigator receives the view changes the error policy forces. Nil
	// means NopNavigator.
	Navigator core.Navigator

	Logger *slog.Logger

	TransportSettings *resty.TransportSettings

	ResponseMiddlewares []resty.ResponseMiddleware
	RequestMiddlewares  []resty.RequestMiddleware
}

var DefaultTransportSettings = &resty.TransportSettings{
	DialerTimeout:         2 * time.Second,
	DialerKeepAlive:       2 * time.Second,
	IdleConnTimeout:       2 * time.Second,
	TLSHandshakeTimeout:   2 * time.Second,
	ExpectContinueTimeout: 2 * time.Second,
	ResponseHeaderTimeout: 2 * time.Second,
}
