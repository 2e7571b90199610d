package contract

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// IReactionCountCache caches aggregate counts per target.
type IReactionCountCache interface {
	GetCounts(ctx context.Context, kind entity.TargetKind, targetID string) (*entity.ReactionCounts, bool, error)
	SetCounts(ctx context.Context, kind entity.TargetKind, targetID string, counts *entity.ReactionCounts) error
	InvalidateCounts(ctx context.Context, kind entity.TargetKind, targetID string) error
}
