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
	// ErrInvalidCredentials is returned for unknown users and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountInactive is returned when a deactivated user tries to log in.
	ErrAccountInactive = errors.New("account not active")
	// ErrUnauthenticated is returned when an access token is missing or invalid.
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrInvalidUsername = errors.New("invalid username")
	ErrWeakPassword    = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
)

const MinPasswordLength = 8

// AuthUsecase issues and checks the access tokens that gate reactions.
type AuthUsecase struct {
	userRepo   contract.IUserRepository
	hasher     contract.IHasher
	jwtService JWTService
	uuidGen    contract.IUUIDGenerator
	validator  usecasecontract.IValidator
	logger     usecasecontract.IAppLogger
}

func NewAuthUsecase(userRepo contract.IUserRepository, hasher contract.IHasher, jwtService JWTService, uuidGen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		uuidGen:    uuidGen,
		validator:  validator,
		logger:     logger,
	}
}

var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// Register creates an active user with the default role.
func (uc *AuthUsecase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	if err := uc.validator.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidUsername, err)
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hashed, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{
		ID:           uc.uuidGen.NewUUID(),
		Username:     username,
		PasswordHash: hashed,
		Role:         entity.DefaultRole(),
		IsActive:     true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, contract.ErrUsernameTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	uc.logger.Infof("registered user %s", user.ID)
	return user, nil
}

// Login verifies the credentials and returns the user with a fresh access token.
func (uc *AuthUsecase) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if !user.IsActive {
		return nil, "", ErrAccountInactive
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	accessToken, err := uc.jwtService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, accessToken, nil
}

// Authenticate validates an access token.
func (uc *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	if accessToken == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := uc.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		uc.logger.Debugf("rejected access token: %v", err)
		return nil, ErrUnauthenticated
	}
	user, err := uc.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
