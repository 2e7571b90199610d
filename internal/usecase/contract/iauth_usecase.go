package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

type IAuthUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error)
}
