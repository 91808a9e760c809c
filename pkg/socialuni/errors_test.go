package socialuni_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"socialuni/internal/core"
	"socialuni/pkg/socialuni"
)

func TestClassificationByStatus(t *testing.T) {
	t.Parallel()

	cases := map[int]socialuni.Kind{
		401: socialuni.KindUnauthenticated,
		403: socialuni.KindForbidden,
		404: socialuni.KindNotFound,
		405: socialuni.KindMethodNotSupported,
		409: socialuni.KindConflict,
		429: socialuni.KindRateLimited,
		500: socialuni.KindServerError,
		400: socialuni.KindServerError,
	}

	for status, kind := range cases {
		client, _, _ := newClient(t, jsonHandler(status, `{"message":"nope"}`), "")

		_, err := client.Posts(t.Context())
		require.Error(t, err, status)
		require.Equal(t, kind, socialuni.KindOf(err), status)

		apiErr := &socialuni.APIError{}
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, status, apiErr.Status)
		require.Equal(t, "nope", apiErr.Message)
	}
}

func TestJWTExpiredMarkerIsUnauthenticated(t *testing.T) {
	t.Parallel()

	client, store, _ := newClient(t,
		jsonHandler(500, `{"message":"JWT expired at 2026-08-30"}`), signToken(t, "USER"))

	_, err := client.Posts(t.Context())
	require.Equal(t, socialuni.KindUnauthenticated, socialuni.KindOf(err))
	require.Empty(t, store.Token())
}

func TestConflictOnReactionEndpoint(t *testing.T) {
	t.Parallel()

	client, _, _ := newClient(t,
		jsonHandler(400, `{"message":"duplicate reaction"}`), signToken(t, "USER"))

	_, err := client.React(t.Context(), core.Target{Kind: core.TargetPost, ID: 7}, core.ReactionLike)
	require.Equal(t, socialuni.KindConflict, socialuni.KindOf(err))
}

func TestUnauthenticatedClearsSessionAndRedirects(t *testing.T) {
	t.Parallel()

	client, store, nav := newClient(t, jsonHandler(401, `{}`), signToken(t, "USER"))

	_, err := client.Posts(t.Context())
	require.Equal(t, socialuni.KindUnauthenticated, socialuni.KindOf(err))

	require.Empty(t, store.Token())
	require.Equal(t, []string{"/login?expired=1"}, nav.Visited())
}

func TestUnauthenticatedOnLoginViewDoesNotRedirect(t *testing.T) {
	t.Parallel()

	client, _, nav := newClient(t, jsonHandler(401, `{}`), signToken(t, "USER"))
	nav.Navigate("/login")
	before := len(nav.Visited())

	_, err := client.Posts(t.Context())
	require.Error(t, err)
	require.Len(t, nav.Visited(), before)
}

func TestForbiddenInsideAdminAreaRedirectsHome(t *testing.T) {
	t.Parallel()

	client, _, nav := newClient(t, jsonHandler(403, `{}`), signToken(t, "ROLE_ADMIN"))
	nav.Navigate("/admin/home")

	// Admin role resolves to /admin/posts, so the failed path and the
	// current view are both inside the admin namespace.
	_, err := client.Posts(t.Context())
	require.Equal(t, socialuni.KindForbidden, socialuni.KindOf(err))
	require.Equal(t, "/home", nav.Current())
}

func TestForbiddenOutsideAdminAreaStaysPut(t *testing.T) {
	t.Parallel()

	client, _, nav := newClient(t, jsonHandler(403, `{}`), signToken(t, "USER"))

	_, err := client.Posts(t.Context())
	require.Equal(t, socialuni.KindForbidden, socialuni.KindOf(err))
	require.Equal(t, "/posts", nav.Current())
}

func TestOfflineClassification(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	store := newStore(t, "")
	client := socialuni.New(&socialuni.Config{BaseURL: url, Session: store})
	defer client.Close() //nolint:errcheck

	_, err := client.Posts(t.Context())
	require.Equal(t, socialuni.KindOffline, socialuni.KindOf(err))
}
