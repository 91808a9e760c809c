package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

type CommentInput struct {
	Content string `json:"content"`
}

func (c *Client) Comments(ctx context.Context, postID int64) ([]*core.Comment, error) {
	path := fmt.Sprintf("/posts/%d/comments", postID)

	res, err := c.req(ctx).SetResult(&[]*core.Comment{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]*core.Comment), nil
}

func (c *Client) CreateComment(ctx context.Context, postID int64, input *CommentInput) (*core.Comment, error) {
	path := fmt.Sprintf("/posts/%d/comments", postID)

	res, err := c.r(ctx).SetBody(input).SetResult(&core.Comment{}).Post(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Comment), nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/comments/%d", id)

	res, err := c.r(ctx).Delete(path)
	return c.check(path, res, err)
}
