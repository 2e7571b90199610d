package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/domain/contract"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/dto"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/middleware"
	"github.com/mikiasgoitom/reactsync/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

type AuthHandler struct {
	authUsecase usecasecontract.IAuthUseCase
	config      usecasecontract.IConfigProvider
	logger      usecasecontract.IAppLogger
}

func NewAuthHandler(uc usecasecontract.IAuthUseCase, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *AuthHandler {
	return &AuthHandler{
		authUsecase: uc,
		config:      config,
		logger:      logger,
	}
}

// Register creates an account that can then log in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, contract.ErrUsernameTaken):
			ErrorHandler(c, http.StatusConflict, err.Error())
		case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrWeakPassword):
			ErrorHandler(c, http.StatusBadRequest, err.Error())
		default:
			h.logger.Errorf("register %q failed: %v", req.Username, err)
			ErrorHandler(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToUserResponse(*user))
}

// Login checks the credentials, sets the access token cookie and returns the token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, "username and password are required")
		return
	}

	user, accessToken, err := h.authUsecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) || errors.Is(err, usecase.ErrAccountInactive) {
			ErrorHandler(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Errorf("login for %q failed: %v", req.Username, err)
		ErrorHandler(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	expiresIn := int(h.config.GetAccessTokenExpiry().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, accessToken, expiresIn, "/", "", h.config.GetSecureCookies(), true)

	SuccessHandler(c, http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(*user),
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	})
}

// Logout clears the access token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.config.GetSecureCookies(), true)
	MessageHandler(c, http.StatusOK, "Logged out")
}
