package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

var _ core.ReactionAPI = (*Client)(nil)

type reactRequest struct {
	Type      core.ReactionType `json:"type"`
	PostID    int64             `json:"postId,omitempty"`
	CommentID int64             `json:"commentId,omitempty"`
}

// React creates or replaces the caller's reaction on target. The backend
// keeps at most one reaction per (user, target); reacting again with a
// different type is an update in place, not a second row.
func (c *Client) React(ctx context.Context, target core.Target, rtype core.ReactionType) (*core.Reaction, error) {
	const path = "/reactions/react"

	body := &reactRequest{Type: rtype}
	switch target.Kind {
	case core.TargetPost:
		body.PostID = target.ID
	case core.TargetComment:
		body.CommentID = target.ID
	}

	res, err := c.r(ctx).SetBody(body).SetResult(&core.Reaction{}).Post(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.Reaction), nil
}

// RemoveReaction deletes the caller's reaction on target, if any.
func (c *Client) RemoveReaction(ctx context.Context, target core.Target) error {
	path := fmt.Sprintf("/reactions/user/%s/%d", target.Kind, target.ID)

	res, err := c.r(ctx).Delete(path)
	return c.check(path, res, err)
}

// ReactionState reads the authoritative count and the caller's own
// reaction for target.
func (c *Client) ReactionState(ctx context.Context, target core.Target) (*core.ReactionState, error) {
	path := fmt.Sprintf("/reactions/%s/%d", target.Kind, target.ID)

	res, err := c.req(ctx).SetResult(&core.ReactionState{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return res.Result().(*core.ReactionState), nil
}
