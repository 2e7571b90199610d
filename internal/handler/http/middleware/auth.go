package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/reactsync/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

const (
	// AccessTokenCookie carries the access token for browser sessions.
	AccessTokenCookie = "access_token"
	ContextUserID     = "userID"
	ContextUserRole   = "userRole"
)

// AuthMiddleWare authenticates the request from a Bearer header or the
// access token cookie. Anonymous requests are refused with 403, which is
// what reaction clients treat as "go log in".
func AuthMiddleWare(authUsecase usecasecontract.IAuthUseCase, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(AccessTokenCookie)
		}

		claims, err := authUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, usecase.ErrUnauthenticated) {
				logger.Errorf("authentication lookup failed: %v", err)
			}
			metrics.RejectedRequests.WithLabelValues("auth").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
