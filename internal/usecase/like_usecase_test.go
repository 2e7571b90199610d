package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLikeRepo struct {
	reactions map[string]*entity.Reaction
	nextID    int
	failCount bool
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{reactions: map[string]*entity.Reaction{}}
}

func (r *fakeLikeRepo) UpsertReaction(ctx context.Context, reaction *entity.Reaction) error {
	for _, existing := range r.reactions {
		if existing.UserID == reaction.UserID && existing.TargetID == reaction.TargetID && existing.TargetKind == reaction.TargetKind {
			existing.Type = reaction.Type
			existing.IsDeleted = false
			reaction.ID = existing.ID
			return nil
		}
	}
	r.nextID++
	reaction.ID = fmt.Sprintf("r%d", r.nextID)
	stored := *reaction
	r.reactions[reaction.ID] = &stored
	return nil
}

func (r *fakeLikeRepo) DeleteReaction(ctx context.Context, reactionID string) error {
	reaction, ok := r.reactions[reactionID]
	if !ok || reaction.IsDeleted {
		return contract.ErrReactionNotFound
	}
	reaction.IsDeleted = true
	return nil
}

func (r *fakeLikeRepo) GetReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error) {
	for _, reaction := range r.reactions {
		if reaction.UserID == userID && reaction.TargetID == targetID && reaction.TargetKind == kind && !reaction.IsDeleted {
			copied := *reaction
			return &copied, nil
		}
	}
	return nil, contract.ErrReactionNotFound
}

func (r *fakeLikeRepo) CountByType(ctx context.Context, targetID string, kind entity.TargetKind, reactionType entity.ReactionType) (int64, error) {
	if r.failCount {
		return 0, errors.New("db down")
	}
	var n int64
	for _, reaction := range r.reactions {
		if reaction.TargetID == targetID && reaction.TargetKind == kind && reaction.Type == reactionType && !reaction.IsDeleted {
			n++
		}
	}
	return n, nil
}

type fakeCountCache struct {
	counts      map[string]*entity.ReactionCounts
	invalidated int
}

func (c *fakeCountCache) key(kind entity.TargetKind, id string) string { return string(kind) + ":" + id }

func (c *fakeCountCache) GetCounts(ctx context.Context, kind entity.TargetKind, targetID string) (*entity.ReactionCounts, bool, error) {
	counts, ok := c.counts[c.key(kind, targetID)]
	return counts, ok, nil
}

func (c *fakeCountCache) SetCounts(ctx context.Context, kind entity.TargetKind, targetID string, counts *entity.ReactionCounts) error {
	c.counts[c.key(kind, targetID)] = counts
	return nil
}

func (c *fakeCountCache) InvalidateCounts(ctx context.Context, kind entity.TargetKind, targetID string) error {
	c.invalidated++
	delete(c.counts, c.key(kind, targetID))
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

func TestToggle_LikeThenUnlike(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), nopLogger{})
	ctx := context.Background()

	counts, err := uc.Toggle(ctx, "u1", "42", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionCounts{Likes: 1, Dislikes: 0}, *counts)

	counts, err = uc.Toggle(ctx, "u1", "42", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionCounts{Likes: 0, Dislikes: 0}, *counts)
}

func TestToggle_SwitchesDirection(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), nopLogger{})
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "u1", "42", entity.TargetKindPost, entity.ReactionDislike)
	require.NoError(t, err)
	_, err = uc.Toggle(ctx, "u2", "42", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)

	counts, err := uc.Toggle(ctx, "u1", "42", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionCounts{Likes: 2, Dislikes: 0}, *counts)

	reaction, err := uc.GetUserReaction(ctx, "u1", "42", entity.TargetKindPost)
	require.NoError(t, err)
	require.NotNil(t, reaction)
	assert.Equal(t, entity.ReactionLike, reaction.Type)
}

func TestToggle_TargetsAreScopedByKind(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), nopLogger{})
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "u1", "7", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)

	counts, err := uc.GetReactionCounts(ctx, "7", entity.TargetKindComment)
	require.NoError(t, err)
	assert.Equal(t, entity.ReactionCounts{}, *counts)
}

func TestToggle_RejectsUnknownDirectionAndKind(t *testing.T) {
	uc := usecase.NewLikeUsecase(newFakeLikeRepo(), nopLogger{})

	_, err := uc.Toggle(context.Background(), "u1", "42", entity.TargetKindPost, entity.ReactionType("love"))
	assert.ErrorIs(t, err, usecase.ErrInvalidDirection)

	_, err = uc.Toggle(context.Background(), "u1", "42", entity.TargetKind("blog"), entity.ReactionLike)
	assert.ErrorIs(t, err, usecase.ErrInvalidTargetKind)
}

func TestToggle_CountFailureIsReturned(t *testing.T) {
	repo := newFakeLikeRepo()
	repo.failCount = true
	uc := usecase.NewLikeUsecase(repo, nopLogger{})

	_, err := uc.Toggle(context.Background(), "u1", "42", entity.TargetKindPost, entity.ReactionLike)
	assert.Error(t, err)
}

func TestGetReactionCounts_UsesCache(t *testing.T) {
	repo := newFakeLikeRepo()
	cache := &fakeCountCache{counts: map[string]*entity.ReactionCounts{}}
	uc := usecase.NewLikeUsecase(repo, nopLogger{})
	uc.SetCountCache(cache)
	ctx := context.Background()

	_, err := uc.Toggle(ctx, "u1", "42", entity.TargetKindPost, entity.ReactionLike)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	// Served from the cache even though the repository can no longer count.
	repo.failCount = true
	counts, err := uc.GetReactionCounts(ctx, "42", entity.TargetKindPost)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Likes)
}
