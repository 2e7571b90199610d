package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/reactsync/internal/domain/entity"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/dto"
	"github.com/mikiasgoitom/reactsync/internal/handler/http/middleware"
	"github.com/mikiasgoitom/reactsync/internal/infrastructure/metrics"
	usecase "github.com/mikiasgoitom/reactsync/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/reactsync/internal/usecase/contract"
)

type InteractionHandler struct {
	likeUsecase usecasecontract.ILikeUseCase
	logger      usecasecontract.IAppLogger
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase, logger usecasecontract.IAppLogger) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase: likeUsecase,
		logger:      logger,
	}
}

// ToggleReactionHandler returns the toggle endpoint for one target kind.
// The response body is always {"likes": n, "dislikes": m} on success.
func (h *InteractionHandler) ToggleReactionHandler(kind entity.TargetKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if userID == "" {
			ErrorHandler(c, http.StatusForbidden, "User not authenticated")
			return
		}

		var uri dto.ReactionTargetURI
		if err := c.ShouldBindUri(&uri); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid target ID")
			return
		}
		var req dto.ToggleReactionRequest
		if err := c.ShouldBind(&req); err != nil {
			metrics.ReactionToggles.WithLabelValues(string(kind), "", "invalid").Inc()
			ErrorHandler(c, http.StatusBadRequest, "direction must be like or dislike")
			return
		}

		direction := entity.ReactionType(req.Direction)
		counts, err := h.likeUsecase.Toggle(c.Request.Context(), userID, uri.TargetID, kind, direction)
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidDirection) || errors.Is(err, usecase.ErrInvalidTargetKind) {
				metrics.ReactionToggles.WithLabelValues(string(kind), req.Direction, "invalid").Inc()
				ErrorHandler(c, http.StatusBadRequest, err.Error())
				return
			}
			h.logger.Errorf("toggle %s on %s %s failed: %v", direction, kind, uri.TargetID, err)
			metrics.ReactionToggles.WithLabelValues(string(kind), req.Direction, "error").Inc()
			ErrorHandler(c, http.StatusInternalServerError, "Failed to update reaction")
			return
		}

		metrics.ReactionToggles.WithLabelValues(string(kind), req.Direction, "ok").Inc()
		SuccessHandler(c, http.StatusOK, dto.ToReactionCountsResponse(*counts))
	}
}

// GetReactionCountsHandler serves the current counts for one target kind.
func (h *InteractionHandler) GetReactionCountsHandler(kind entity.TargetKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri dto.ReactionTargetURI
		if err := c.ShouldBindUri(&uri); err != nil {
			ErrorHandler(c, http.StatusBadRequest, "Invalid target ID")
			return
		}
		counts, err := h.likeUsecase.GetReactionCounts(c.Request.Context(), uri.TargetID, kind)
		if err != nil {
			h.logger.Errorf("count reactions on %s %s failed: %v", kind, uri.TargetID, err)
			ErrorHandler(c, http.StatusInternalServerError, "Failed to load reactions")
			return
		}
		SuccessHandler(c, http.StatusOK, dto.ToReactionCountsResponse(*counts))
	}
}
