package socialuni_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"socialuni/internal/session"
	"socialuni/pkg/socialuni"
)

func signToken(t *testing.T, role string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "7",
		"email": "a@b.com",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func newStore(t *testing.T, token string) *session.Store {
	t.Helper()

	store, err := session.New(&session.MemoryStorage{})
	require.NoError(t, err)

	if token != "" {
		require.NoError(t, store.SetToken(token))
	}
	return store
}

// recorder is a navigator that remembers where the client sent it.
type recorder struct {
	mu      sync.Mutex
	route   string
	visited []string
}

func (r *recorder) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.route
}

func (r *recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.route = route
	r.visited = append(r.visited, route)
}

func (r *recorder) Visited() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.visited...)
}

func newClient(t *testing.T, handler http.Handler, token string) (*socialuni.Client, *session.Store, *recorder) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := newStore(t, token)
	nav := &recorder{route: "/posts"}

	client := socialuni.New(&socialuni.Config{
		BaseURL:   srv.URL,
		Session:   store,
		Navigator: nav,
	})
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	return client, store, nav
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	})
}
