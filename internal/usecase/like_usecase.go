package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

var (
	// ErrInvalidDirection is returned for reactions other than like or dislike.
	ErrInvalidDirection = errors.New("invalid reaction direction")
	// ErrInvalidTargetKind is returned for targets other than posts or comments.
	ErrInvalidTargetKind = errors.New("invalid reaction target")
)

// LikeUsecase handles the business logic for managing likes and dislikes.
type LikeUsecase struct {
	likeRepo contract.ILikeRepository
	cache    contract.IReactionCountCache
	logger   usecasecontract.IAppLogger
}

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(likeRepo contract.ILikeRepository, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		likeRepo: likeRepo,
		logger:   logger,
	}
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// SetCountCache enables the optional counts cache.
func (u *LikeUsecase) SetCountCache(cache contract.IReactionCountCache) {
	u.cache = cache
}

// Toggle applies a like or dislike from a user on a target.
// Repeating the user's current reaction removes it, the opposite reaction
// replaces it, and no reaction creates one. The fresh counts are returned.
func (u *LikeUsecase) Toggle(ctx context.Context, userID, targetID string, kind entity.TargetKind, direction entity.ReactionType) (*entity.ReactionCounts, error) {
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}
	if !kind.Valid() {
		return nil, ErrInvalidTargetKind
	}

	existing, err := u.GetUserReaction(ctx, userID, targetID, kind)
	if err != nil {
		return nil, err
	}

	switch {
	case existing != nil && existing.Type == direction:
		if err := u.likeRepo.DeleteReaction(ctx, existing.ID); err != nil && !errors.Is(err, contract.ErrReactionNotFound) {
			return nil, fmt.Errorf("failed to remove %s: %w", direction, err)
		}
	case existing != nil:
		existing.Type = direction
		if err := u.likeRepo.UpsertReaction(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to change %s to %s: %w", direction.Opposite(), direction, err)
		}
	default:
		reaction := &entity.Reaction{
			UserID:     userID,
			TargetID:   targetID,
			TargetKind: kind,
			Type:       direction,
		}
		if err := u.likeRepo.UpsertReaction(ctx, reaction); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", direction, err)
		}
	}

	if u.cache != nil {
		if err := u.cache.InvalidateCounts(ctx, kind, targetID); err != nil {
			u.logger.Warnf("failed to invalidate counts for %s %s: %v", kind, targetID, err)
		}
	}
	return u.GetReactionCounts(ctx, targetID, kind)
}

// GetUserReaction retrieves the active reaction (if any) a user has on a specific target.
func (u *LikeUsecase) GetUserReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error) {
	reaction, err := u.likeRepo.GetReaction(ctx, userID, targetID, kind)
	if err != nil {
		if errors.Is(err, contract.ErrReactionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user's reaction: %w", err)
	}
	return reaction, nil
}

// GetReactionCounts retrieves the total number of likes and dislikes for a specific target.
func (u *LikeUsecase) GetReactionCounts(ctx context.Context, targetID string, kind entity.TargetKind) (*entity.ReactionCounts, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTargetKind
	}
	if u.cache != nil {
		counts, ok, err := u.cache.GetCounts(ctx, kind, targetID)
		if err != nil {
			u.logger.Warnf("count cache read failed for %s %s: %v", kind, targetID, err)
		} else if ok {
			return counts, nil
		}
	}

	likes, err := u.likeRepo.CountByType(ctx, targetID, kind, entity.ReactionLike)
	if err != nil {
		return nil, fmt.Errorf("failed to count likes for %s %s: %w", kind, targetID, err)
	}
	dislikes, err := u.likeRepo.CountByType(ctx, targetID, kind, entity.ReactionDislike)
	if err != nil {
		return nil, fmt.Errorf("failed to count dislikes for %s %s: %w", kind, targetID, err)
	}
	counts := &entity.ReactionCounts{Likes: likes, Dislikes: dislikes}

	if u.cache != nil {
		if err := u.cache.SetCounts(ctx, kind, targetID, counts); err != nil {
			u.logger.Warnf("count cache write failed for %s %s: %v", kind, targetID, err)
		}
	}
	return counts, nil
}
