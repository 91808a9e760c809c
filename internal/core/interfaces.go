package core

import (
	"context"

	"github.com/zhulik/pips"
)

// TokenStorage is the durable key-value slot the session token lives in.
type TokenStorage interface {
	Get() (string, error)
	Put(token string) error
	Delete() error
}

// Navigator is what the client boundary drives when a classified error
// forces a view change: session expiry sends the user to the login route,
// an admin-area Forbidden sends them home.
type Navigator interface {
	Current() string
	Navigate(route string)
}

// ReactionAPI is the slice of the backend client the optimistic reaction
// manager talks to.
type ReactionAPI interface {
	React(ctx context.Context, target Target, rtype ReactionType) (*Reaction, error)
	RemoveReaction(ctx context.Context, target Target) error
	ReactionState(ctx context.Context, target Target) (*ReactionState, error)
}

type NotificationSource interface {
	C() <-chan pips.D[*Notification]
}
