package jwt

import (
	"testing"
	"time"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(NewJWTManager("secret", time.Minute))

	token, err := svc.GenerateAccessToken("user-1", entity.UserRoleUser)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.UserRoleUser, claims.Role)
}

func TestAccessToken_Rejected(t *testing.T) {
	mgr := NewJWTManager("secret", time.Minute)
	token, err := mgr.GenerateAccessToken("user-1", "user")
	require.NoError(t, err)

	_, err = NewJWTManager("other-secret", time.Minute).VerifyToken(token)
	assert.Error(t, err)

	expired := NewJWTManager("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(time.Hour) }
	_, err = expired.VerifyToken(token)
	assert.Error(t, err)

	_, err = mgr.VerifyToken("not-a-token")
	assert.Error(t, err)
}
