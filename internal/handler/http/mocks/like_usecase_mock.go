package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// MockLikeUsecase is a mock implementation of ILikeUseCase for testing
type MockLikeUsecase struct {
	Counts     entity.ReactionCounts
	ToggleErr  error
	ShouldFail bool

	ToggleCalls   int
	LastUserID    string
	LastTargetID  string
	LastKind      entity.TargetKind
	LastDirection entity.ReactionType
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func (m *MockLikeUsecase) Toggle(ctx context.Context, userID, targetID string, kind entity.TargetKind, direction entity.ReactionType) (*entity.ReactionCounts, error) {
	m.ToggleCalls++
	m.LastUserID = userID
	m.LastTargetID = targetID
	m.LastKind = kind
	m.LastDirection = direction
	if m.ToggleErr != nil {
		return nil, m.ToggleErr
	}
	if m.ShouldFail {
		return nil, errors.New("mock error")
	}
	counts := m.Counts
	return &counts, nil
}

func (m *MockLikeUsecase) GetUserReaction(ctx context.Context, userID, targetID string, kind entity.TargetKind) (*entity.Reaction, error) {
	if m.ShouldFail {
		return nil, errors.New("mock error")
	}
	return nil, nil
}

func (m *MockLikeUsecase) GetReactionCounts(ctx context.Context, targetID string, kind entity.TargetKind) (*entity.ReactionCounts, error) {
	if m.ShouldFail {
		return nil, errors.New("mock error")
	}
	m.LastTargetID = targetID
	m.LastKind = kind
	counts := m.Counts
	return &counts, nil
}
