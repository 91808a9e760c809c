package core

import (
	"time"
)

// Role is the normalized role claim carried by a session token. The backend
// emits both bare ("ADMIN") and prefixed ("ROLE_ADMIN") forms; normalization
// happens once, at decode time, and the rest of the code only ever sees
// these values.
type Role string

const (
	RoleAnonymous Role = ""
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Claims are the decoded payload fields of a session token. They are
// advisory only: authorization is enforced server-side on every request.
type Claims struct {
	Subject   int64
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type ReactionType string

const (
	ReactionLike  ReactionType = "LIKE"
	ReactionLove  ReactionType = "LOVE"
	ReactionHaha  ReactionType = "HAHA"
	ReactionWow   ReactionType = "WOW"
	ReactionSad   ReactionType = "SAD"
	ReactionAngry ReactionType = "ANGRY"
)

type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// Target identifies the single post or comment a reaction is attached to.
type Target struct {
	Kind TargetKind
	ID   int64
}

// Reaction is one user's affective response to exactly one target. ID 0
// marks a not-yet-persisted optimistic placeholder.
type Reaction struct {
	ID        int64        `json:"id"`
	Type      ReactionType `json:"type"`
	UserID    int64        `json:"userId"`
	Username  string       `json:"username"`
	PostID    int64        `json:"postId,omitempty"`
	CommentID int64        `json:"commentId,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// ReactionState is the authoritative per-target snapshot served by the
// backend: the total count plus the requesting user's own reaction.
type ReactionState struct {
	Count        int64     `json:"count"`
	UserReaction *Reaction `json:"userReaction"`
}

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Category       string    `json:"category"`
	AuthorID       int64     `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	GroupID        int64     `json:"groupId,omitempty"`
	ReactionCount  int64     `json:"reactionCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"postId"`
	AuthorID       int64     `json:"authorId"`
	AuthorUsername string    `json:"authorUsername"`
	Content        string    `json:"content"`
	ReactionCount  int64     `json:"reactionCount"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"ownerId"`
	MemberCount int64     `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Event struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"groupId,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
}

type Notification struct {
	ID          int64      `json:"id"`
	Type        string     `json:"type"`
	Message     string     `json:"message"`
	RecipientID int64      `json:"recipientId"`
	ReadAt      *time.Time `json:"readAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}
