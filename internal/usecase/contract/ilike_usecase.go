package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

type ILikeUseCase interface {
	// Toggle applies the user's like or dislike to a target and returns the resulting counts.
	Toggle(ctx context.Context, userID, targetID string, kind entity.TargetKind, direction entity.ReactionType) (*entity.ReactionCounts, error)
	GetUserReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error)
	GetReactionCounts(ctx context.Context, targetID string, kind entity.TargetKind) (*entity.ReactionCounts, error)
}
