package socialuni

import (
	"context"
	"errors"
	"strings"

	"socialuni/internal/auth"
	"socialuni/internal/core"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	VerificationCode string `json:"verificationCode"`
}

// Login authenticates, stores the returned token and navigates to the
// landing route of the decoded role. It goes through the anonymous client:
// a stale token must never ride along on a login attempt.
func (c *Client) Login(ctx context.Context, email, password string) (core.Claims, error) {
	const path = "/auth/login"

	res, err := c.pub(ctx).
		SetBody(&loginRequest{Email: email, Password: password}).
		SetResult(&loginResponse{}).
		Post(path)
	if err := c.check(path, res, err); err != nil {
		return core.Claims{}, err
	}

	token := res.Result().(*loginResponse).Token

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		return core.Claims{}, err
	}

	if err := c.session.SetToken(token); err != nil {
		return core.Claims{}, err
	}

	c.nav.Navigate(LandingRoute(claims.Role))

	return claims, nil
}

// Register signs up a new account. The backend answers this one with a raw
// token string rather than a JSON envelope.
func (c *Client) Register(ctx context.Context, username, email, password string) (core.Claims, error) {
	const path = "/auth/signup"

	res, err := c.pub(ctx).
		SetBody(&registerRequest{Username: username, Email: email, Password: password}).
		Post(path)
	if err := c.check(path, res, err); err != nil {
		return core.Claims{}, err
	}

	token := strings.TrimSpace(res.String())

	claims, err := auth.DecodeClaims(token)
	if err != nil {
		return core.Claims{}, err
	}

	if err := c.session.SetToken(token); err != nil {
		return core.Claims{}, err
	}

	return claims, nil
}

// Logout tells the backend and clears the local session either way.
func (c *Client) Logout(ctx context.Context) error {
	const path = "/auth/logout"

	res, err := c.r(ctx).Post(path)

	clearErr := c.session.ClearToken()
	if err := c.check(path, res, err); err != nil {
		return errors.Join(err, clearErr)
	}
	return clearErr
}

// Verify submits the emailed verification code for the current account.
func (c *Client) Verify(ctx context.Context, code string) error {
	const path = "/auth/verify"

	res, err := c.r(ctx).SetBody(&verifyRequest{VerificationCode: code}).Post(path)
	return c.check(path, res, err)
}
