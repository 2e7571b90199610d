package contract

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// ILikeRepository defines the interface for reaction data persistence.
type ILikeRepository interface {
	// UpsertReaction creates or revives the user's reaction on a target with the given type.
	UpsertReaction(ctx context.Context, reaction *entity.Reaction) error
	DeleteReaction(ctx context.Context, reactionID string) error
	GetReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error)
	CountByType(ctx context.Context, targetID string, kind entity.TargetKind, reactionType entity.ReactionType) (int64, error)
}
