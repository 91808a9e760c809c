package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

func (c *Client) Notifications(ctx context.Context) ([]*core.Notification, error) {
	const path = "/notifications"

	res, err := c.r(ctx).SetResult(&[]*core.Notification{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]*core.Notification), nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/notifications/%d/read", id)

	res, err := c.r(ctx).Put(path)
	return c.check(path, res, err)
}
