package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

func (c *Client) Groups(ctx context.Context) ([]*core.Group, error) {
	path := resolve(opFetchAllGroups, c.role())

	res, err := c.req(ctx).SetResult(&[]*core.Group{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]*core.Group), nil
}

func (c *Client) Group(ctx context.Context, id int64) (*core.Group, error) {
	path := fmt.Sprintf(resolve(opFetchGroupByID, c.role()), id)

	res, err := c.req(ctx).SetResult(&core.Group{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Group), nil
}

func (c *Client) JoinGroup(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/groups/%d/join", id)

	res, err := c.r(ctx).Post(path)
	return c.check(path, res, err)
}

func (c *Client) LeaveGroup(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/groups/%d/leave", id)

	res, err := c.r(ctx).Delete(path)
	return c.check(path, res, err)
}
