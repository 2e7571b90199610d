package dto

import (
	"time"

	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ReactionCountsResponse is the body every reaction endpoint answers with.
type ReactionCountsResponse struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

func ToReactionCountsResponse(counts entity.ReactionCounts) ReactionCountsResponse {
	return ReactionCountsResponse{Likes: counts.Likes, Dislikes: counts.Dislikes}
}

// CSRFTokenResponse carries a freshly issued anti-forgery token.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrf_token"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
