package socialuni

import (
	"context"
	"fmt"

	"socialuni/internal/core"
)

type rsvpRequest struct {
	Status string `json:"status"`
}

// Events lists upcoming events, newest first.
func (c *Client) Events(ctx context.Context) ([]*core.Event, error) {
	const path = "/events/upcoming"

	res, err := c.req(ctx).SetResult(&[]*core.Event{}).Get(path)
	if err := c.check(path, res, err); err != nil {
		return nil, err
	}
	return *res.Result().(*[]*core.Event), nil
}

func (c *Client) RSVP(ctx context.Context, eventID int64, status string) error {
	path := fmt.Sprintf("/events/%d/rsvp", eventID)

	res, err := c.r(ctx).SetBody(&rsvpRequest{Status: status}).Post(path)
	return c.check(path, res, err)
}
