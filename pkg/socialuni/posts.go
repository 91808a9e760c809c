package socialuni

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"resty.dev/v3"

	"socialuni/internal/core"
)

type PostInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	GroupID  int64  `json:"groupId,omitempty"`
}

// Posts lists the feed: every post for an admin, the visible scope for
// everyone else.
func (c *Client) Posts(ctx context.Context) ([]*core.Post, error) {
	return c.listPosts(ctx, resolve(opFetchAllPosts, c.role()), nil)
}

// PostsByCategory filters the feed server-side by category.
func (c *Client) PostsByCategory(ctx context.Context, category string) ([]*core.Post, error) {
	return c.listPosts(ctx, fmt.Sprintf(resolve(opFilterPostsByCategory, c.role()), category), nil)
}

// PostsByDateRange lists posts created within [from, to].
func (c *Client) PostsByDateRange(ctx context.Context, from, to time.Time) ([]*core.Post, error) {
	params := Params(map[string]any{
		"from": from.Format(time.RFC3339),
		"to":   to.Format(time.RFC3339),
	})
	return c.listPosts(ctx, resolve(opFetchPostsByDateRange, c.role()), params)
}

// TrendingPosts lists the posts the backend currently ranks highest.
func (c *Client) TrendingPosts(ctx context.Context) ([]*core.Post, error) {
	return c.listPosts(ctx, resolve(opFetchTrendingPosts, c.role()), nil)
}

func (c *Client) listPosts(ctx context.Context, path string, params url.Values) ([]*core.Post, error) {
	req := c.req(ctx).SetResult(&[]*core.Post{})
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	res, err := req.Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]*core.Post), nil
}

// Post fetches one post, probing progressively less privileged endpoints:
// the client cannot mirror the backend's visibility rules, so a Forbidden
// on the scoped path retries once against the explicitly public one.
func (c *Client) Post(ctx context.Context, id int64) (*core.Post, error) {
	role := c.role()

	if role == core.RoleAnonymous {
		return c.fetchPost(c.pub(ctx), fmt.Sprintf(publicPostPath, id))
	}

	post, err := c.fetchPost(c.r(ctx), fmt.Sprintf(resolve(opFetchPostByID, role), id))
	if err != nil && role != core.RoleAdmin && KindOf(err) == KindForbidden {
		return c.fetchPost(c.pub(ctx), fmt.Sprintf(publicPostPath, id))
	}
	return post, err
}

func (c *Client) fetchPost(req *resty.Request, path string) (*core.Post, error) {
	res, err := req.SetResult(&core.Post{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Post), nil
}

func (c *Client) CreatePost(ctx context.Context, input *PostInput) (*core.Post, error) {
	path := resolve(opFetchAllPosts, c.role())

	res, err := c.r(ctx).SetBody(input).SetResult(&core.Post{}).Post(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Post), nil
}

func (c *Client) UpdatePost(ctx context.Context, id int64, input *PostInput) (*core.Post, error) {
	path := fmt.Sprintf(resolve(opFetchPostByID, c.role()), id)

	res, err := c.r(ctx).SetBody(input).SetResult(&core.Post{}).Put(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Post), nil
}

func (c *Client) DeletePost(ctx context.Context, id int64) error {
	path := fmt.Sprintf(resolve(opFetchPostByID, c.role()), id)

	res, err := c.r(ctx).Delete(path)
	return c.check(path, res, err)
}
