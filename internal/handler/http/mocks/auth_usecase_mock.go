package mocks

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

// MockAuthUsecase accepts a single known token and a single set of credentials.
type MockAuthUsecase struct {
	ValidToken string
	User       entity.User
	Password   string
	LoginErr   error
}

var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func (m *MockAuthUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if username == m.User.Username {
		return nil, contract.ErrUsernameTaken
	}
	return &entity.User{ID: "new-user", Username: username, Role: entity.UserRoleUser, IsActive: true}, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	if m.LoginErr != nil {
		return nil, "", m.LoginErr
	}
	if username != m.User.Username || password != m.Password {
		return nil, "", usecase.ErrInvalidCredentials
	}
	user := m.User
	return &user, m.ValidToken, nil
}

func (m *MockAuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	if accessToken == "" || accessToken != m.ValidToken {
		return nil, usecase.ErrUnauthenticated
	}
	return &entity.Claims{UserID: m.User.ID, Role: m.User.Role}, nil
}
