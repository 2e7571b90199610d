package entity

import "time"

// TargetKind identifies what kind of entity a reaction is attached to.
type TargetKind string

const (
	TargetKindPost    TargetKind = "post"
	TargetKindComment TargetKind = "comment"
)

// Valid reports whether k is a known target kind.
func (k TargetKind) Valid() bool {
	return k == TargetKindPost || k == TargetKindComment
}

// ReactionType is the direction of a reaction.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Valid reports whether t is like or dislike.
func (t ReactionType) Valid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// Opposite returns the other direction.
func (t ReactionType) Opposite() ReactionType {
	if t == ReactionLike {
		return ReactionDislike
	}
	return ReactionLike
}

// Reaction is a single user's like or dislike on a post or comment.
type Reaction struct {
	ID         string       `bson:"_id,omitempty" json:"id"`
	UserID     string       `bson:"user_id" json:"user_id"`
	TargetID   string       `bson:"target_id" json:"target_id"`
	TargetKind TargetKind   `bson:"target_type" json:"target_type"`
	Type       ReactionType `bson:"type" json:"type"`
	IsDeleted  bool         `bson:"is_deleted" json:"-"`
	CreatedAt  time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time    `bson:"updated_at" json:"updated_at"`
}

// ReactionCounts is the aggregate state of one target.
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
