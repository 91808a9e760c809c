package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

// CurrentUser resolves the session subject to a full user record, through
// the admin variant when the session carries the admin role.
func (c *Client) CurrentUser(ctx context.Context) (*core.User, error) {
	claims, err := c.session.Claims()
	if err != nil {
		return nil, ErrAuthRequired
	}

	path := fmt.Sprintf(resolve(opFetchUserByID, claims.Role), claims.Subject)

	res, err := c.r(ctx).SetResult(&core.User{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.User), nil
}

// Profile fetches another user's public profile. Best-effort: a nil user
// with a nil error means the profile is unavailable.
func (c *Client) Profile(ctx context.Context, id int64) (*core.User, error) {
	path := fmt.Sprintf("/users/%d/profile", id)

	res, err := c.pub(ctx).SetResult(&core.User{}).Get(path)
	if cerr := c.check(path, res, err); cerr != nil {
		c.logger.Debug("profile unavailable", "user", id, "kind", KindOf(cerr))
		return nil, nil
	}
	return res.Result().(*core.User), nil
}
