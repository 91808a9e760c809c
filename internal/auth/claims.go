// Package auth reads session token claims client-side. Decoding never
// verifies the signature: that is the server's job on every request, this
// is a convenience read of advisory data.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"socialuni/internal/core"
)

var ErrDecode = errors.New("cannot decode token")

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims parses the payload of a bearer token without verifying it.
// The role claim is normalized here and nowhere else: the backend encodes
// it inconsistently as "ADMIN" or "ROLE_ADMIN", sometimes padded.
func DecodeClaims(token string) (core.Claims, error) {
	tc := tokenClaims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, &tc)
	if err != nil {
		return core.Claims{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	subject, err := strconv.ParseInt(tc.Subject, 10, 64)
	if err != nil {
		return core.Claims{}, fmt.Errorf("%w: bad subject %q", ErrDecode, tc.Subject)
	}

	claims := core.Claims{
		Subject: subject,
		Email:   tc.Email,
		Role:    NormalizeRole(tc.Role),
	}
	if tc.IssuedAt != nil {
		claims.IssuedAt = tc.IssuedAt.Time
	}
	if tc.ExpiresAt != nil {
		claims.ExpiresAt = tc.ExpiresAt.Time
	}

	return claims, nil
}

// NormalizeRole maps a raw role claim to its canonical form. Anything
// unrecognized degrades to the ordinary user role, never to admin.
func NormalizeRole(raw string) core.Role {
	role := strings.ToUpper(strings.TrimSpace(raw))
	role = strings.TrimPrefix(role, "ROLE_")

	switch core.Role(role) {
	case core.RoleAdmin:
		return core.RoleAdmin
	case core.RoleModerator:
		return core.RoleModerator
	default:
		return core.RoleUser
	}
}
