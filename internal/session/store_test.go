package session_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"socialuni/internal/core"
	"socialuni/internal/session"
)

func signToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "7",
		"email": "a@b.com",
		"role":  "USER",
		"exp":   expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestStoreLifecycle(t *testing.T) {
	t.Parallel()

	store, err := session.New(&session.MemoryStorage{})
	require.NoError(t, err)

	require.Empty(t, store.Token())

	require.NoError(t, store.SetToken("T"))
	require.Equal(t, "T", store.Token())

	require.NoError(t, store.ClearToken())
	require.Empty(t, store.Token())
}

func TestStoreHydrates(t *testing.T) {
	t.Parallel()

	storage := &session.MemoryStorage{}
	require.NoError(t, storage.Put("persisted"))

	store, err := session.New(storage)
	require.NoError(t, err)
	require.Equal(t, "persisted", store.Token())
}

func TestFileStorageRoundTrip(t *testing.T) {
	t.Parallel()

	storage, err := session.NewFileStorage(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, err)

	token, err := storage.Get()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, storage.Put("T"))

	token, err = storage.Get()
	require.NoError(t, err)
	require.Equal(t, "T", token)

	require.NoError(t, storage.Delete())
	require.NoError(t, storage.Delete())

	token, err = storage.Get()
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestClaims(t *testing.T) {
	t.Parallel()

	store, err := session.New(&session.MemoryStorage{})
	require.NoError(t, err)

	_, err = store.Claims()
	require.ErrorIs(t, err, session.ErrNoSession)

	require.NoError(t, store.SetToken(signToken(t, time.Now().Add(time.Hour))))

	claims, err := store.Claims()
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.Subject)
	require.Equal(t, core.RoleUser, claims.Role)
}

func TestClaimsExpiredClearsToken(t *testing.T) {
	t.Parallel()

	store, err := session.New(&session.MemoryStorage{})
	require.NoError(t, err)

	require.NoError(t, store.SetToken(signToken(t, time.Now().Add(-time.Minute))))

	_, err = store.Claims()
	require.ErrorIs(t, err, session.ErrSessionExpired)
	require.Empty(t, store.Token())
}

func TestExpired(t *testing.T) {
	t.Parallel()

	now := time.Now()

	require.True(t, session.Expired(core.Claims{ExpiresAt: now.Add(-time.Second)}, now))
	require.False(t, session.Expired(core.Claims{ExpiresAt: now.Add(time.Second)}, now))
	require.False(t, session.Expired(core.Claims{}, now))
}
