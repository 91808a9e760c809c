package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"socialuni/internal/auth"
	"socialuni/internal/core"
)

func signToken(t *testing.T, role string, expiresAt time.Time) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   "7",
		"email": "a@b.com",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestDecodeClaims(t *testing.T) {
	t.Parallel()

	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	claims, err := auth.DecodeClaims(signToken(t, "ROLE_ADMIN", expiresAt))
	require.NoError(t, err)

	require.Equal(t, int64(7), claims.Subject)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, core.RoleAdmin, claims.Role)
	require.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestDecodeClaimsMalformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := auth.DecodeClaims(token)
		require.ErrorIs(t, err, auth.ErrDecode)
	}
}

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"ADMIN", "ROLE_ADMIN", " admin ", "role_admin"} {
		require.Equal(t, core.RoleAdmin, auth.NormalizeRole(raw), raw)
	}

	for _, raw := range []string{"USER", "ROLE_USER", "", "ADMINISTRATOR", "banana"} {
		require.NotEqual(t, core.RoleAdmin, auth.NormalizeRole(raw), raw)
	}

	require.Equal(t, core.RoleModerator, auth.NormalizeRole("ROLE_MODERATOR"))
	require.Equal(t, core.RoleUser, auth.NormalizeRole("ROLE_USER"))
}
