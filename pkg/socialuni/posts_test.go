package socialuni_test

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"socialuni/pkg/socialuni"
)

func TestPostFallsBackToPublicOnForbidden(t *testing.T) {
	t.Parallel()

	var scopedHits, publicHits atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/42", func(w http.ResponseWriter, _ *http.Request) {
		scopedHits.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("GET /posts/42/public", func(w http.ResponseWriter, r *http.Request) {
		publicHits.Add(1)
		require.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "title": "hello"}) //nolint:errcheck
	})

	client, _, _ := newClient(t, mux, signToken(t, "USER"))

	post, err := client.Post(t.Context(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), post.ID)
	require.Equal(t, "hello", post.Title)
	require.Equal(t, int64(1), scopedHits.Load())
	require.Equal(t, int64(1), publicHits.Load())
}

func TestPostAnonymousGoesStraightToPublic(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/42/public", func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 42}) //nolint:errcheck
	})
	mux.HandleFunc("GET /posts/42", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("scoped endpoint hit without a session")
	})

	client, _, _ := newClient(t, mux, "")

	post, err := client.Post(t.Context(), 42)
	require.NoError(t, err)
	require.Equal(t, int64(42), post.ID)
}

func TestPostAdminDoesNotFallBack(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/posts/42", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("GET /posts/42/public", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("public fallback hit for an admin")
	})

	client, _, _ := newClient(t, mux, signToken(t, "ADMIN"))

	_, err := client.Post(t.Context(), 42)
	require.Equal(t, socialuni.KindForbidden, socialuni.KindOf(err))
}

func TestPostNotFoundDoesNotFallBack(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/42", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /posts/42/public", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("public fallback hit on NotFound")
	})

	client, _, _ := newClient(t, mux, signToken(t, "USER"))

	_, err := client.Post(t.Context(), 42)
	require.Equal(t, socialuni.KindNotFound, socialuni.KindOf(err))
}

func TestPostsAttachBearerToken(t *testing.T) {
	t.Parallel()

	token := signToken(t, "USER")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	client, _, _ := newClient(t, mux, token)

	posts, err := client.Posts(t.Context())
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestPostsAdminUsesAdminEndpoint(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/posts", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"id":1},{"id":2}]`)) //nolint:errcheck
	})

	client, _, _ := newClient(t, mux, signToken(t, "ADMIN"))

	posts, err := client.Posts(t.Context())
	require.NoError(t, err)
	require.Len(t, posts, 2)
}

func TestPostsByDateRangeSerializesParams(t *testing.T) {
	t.Parallel()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/range", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, from.Format(time.RFC3339), r.URL.Query().Get("from"))
		require.Equal(t, to.Format(time.RFC3339), r.URL.Query().Get("to"))
		w.Write([]byte(`[]`)) //nolint:errcheck
	})

	client, _, _ := newClient(t, mux, signToken(t, "USER"))

	_, err := client.PostsByDateRange(t.Context(), from, to)
	require.NoError(t, err)
}

func TestCreatePost(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		input := socialuni.PostInput{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		require.Equal(t, "title", input.Title)

		json.NewEncoder(w).Encode(map[string]any{"id": 9, "title": input.Title}) //nolint:errcheck
	})

	client, _, _ := newClient(t, mux, signToken(t, "USER"))

	post, err := client.CreatePost(t.Context(), &socialuni.PostInput{Title: "title", Content: "body"})
	require.NoError(t, err)
	require.Equal(t, int64(9), post.ID)
}
