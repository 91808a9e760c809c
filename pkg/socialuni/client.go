// Package socialuni is a typed client for the SocialUni REST backend. It
// owns the session-aware HTTP transport, the error classification boundary
// and the role-aware endpoint selection; callers work with plain entities
// and typed errors and never probe response shapes themselves.
package socialuni

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"resty.dev/v3"

	"socialuni/internal/core"
	"socialuni/internal/session"
)

const (
	routeLogin        = "/login"
	routeLoginExpired = "/login?expired=1"
	routeHome         = "/home"
	routeAdminHome    = "/admin/home"

	adminNamespace     = "/admin"
	reactionsNamespace = "/reactions"
)

var errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "socialuni_client_errors_total",
	Help: "Classified request failures by kind.",
}, []string{"kind"})

type Client struct {
	// auth attaches the bearer token when a session exists; public never
	// does, so logged-out browsing cannot leak a stale token.
	auth   *resty.Client
	public *resty.Client

	session *session.Store
	nav     core.Navigator
	logger  *slog.Logger
}

func New(cfg *Config) *Client {
	transport := cfg.TransportSettings
	if transport == nil {
		transport = DefaultTransportSettings
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	nav := cfg.Navigator
	if nav == nil {
		nav = NopNavigator{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "socialuni.Client")

	c := &Client{
		session: cfg.Session,
		nav:     nav,
		logger:  logger,
	}

	build := func() *resty.Client {
		rc := resty.NewWithTransportSettings(transport).
			SetBaseURL(cfg.BaseURL).
			SetTimeout(timeout)

		for _, m := range cfg.RequestMiddlewares {
			rc.AddRequestMiddleware(m)
		}
		for _, m := range cfg.ResponseMiddlewares {
			rc.AddResponseMiddleware(m)
		}
		return rc
	}

	c.public = build()

	c.auth = build()
	c.auth.AddRequestMiddleware(func(_ *resty.Client, req *resty.Request) error {
		if token := c.session.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	})

	return c
}

func (c *Client) Close() error {
	return errors.Join(c.auth.Close(), c.public.Close())
}

// r is an authenticated request.
func (c *Client) r(ctx context.Context) *resty.Request {
	return c.auth.R().WithContext(ctx)
}

// pub is an explicitly anonymous request.
func (c *Client) pub(ctx context.Context) *resty.Request {
	return c.public.R().WithContext(ctx)
}

// req picks the authenticated client when a session exists and the
// anonymous one otherwise.
func (c *Client) req(ctx context.Context) *resty.Request {
	if c.session.Token() == "" {
		return c.pub(ctx)
	}
	return c.r(ctx)
}

// role reads the normalized role of the current session. Reading also
// performs the lazy expiry check, so an expired session degrades to
// anonymous here.
func (c *Client) role() core.Role {
	claims, err := c.session.Claims()
	if err != nil {
		return core.RoleAnonymous
	}
	return claims.Role
}

// check classifies the outcome of a request and applies the boundary
// policy on failure. Every endpoint method funnels through here; no other
// layer inspects status codes.
func (c *Client) check(path string, res *resty.Response, err error) error {
	apiErr := classify(path, res, err)
	if apiErr == nil {
		return nil
	}

	c.fail(apiErr)
	return apiErr
}

func (c *Client) fail(apiErr *APIError) {
	errorsTotal.WithLabelValues(string(apiErr.Kind)).Inc()

	switch apiErr.Kind {
	case KindUnauthenticated:
		if err := c.session.ClearToken(); err != nil {
			c.logger.Error("clearing rejected session", "error", err)
		}
		if !strings.HasPrefix(c.nav.Current(), routeLogin) {
			c.nav.Navigate(routeLoginExpired)
		}
	case KindForbidden:
		if strings.HasPrefix(apiErr.Path, adminNamespace) && strings.HasPrefix(c.nav.Current(), adminNamespace) {
			c.nav.Navigate(routeHome)
		}
	}

	// Reaction endpoints fail transiently in normal use, and Forbidden and
	// NotFound are ordinary navigation outcomes. None of them get logged.
	if strings.HasPrefix(apiErr.Path, reactionsNamespace) {
		return
	}
	if apiErr.Kind == KindForbidden || apiErr.Kind == KindNotFound {
		return
	}

	c.logger.Error("request failed",
		"path", apiErr.Path, "kind", apiErr.Kind, "status", apiErr.Status, "message", apiErr.Message)
}
