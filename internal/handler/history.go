package handler

import (
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetHistory returns everything stored for a user
func (h *Handler) GetHistory(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	hist, err := h.History.Get(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("get_history: failed to load", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Failed to get history", nil)
		return
	}

	response.OK(c, hist)
}

// ClearHistory deletes everything stored for a user
func (h *Handler) ClearHistory(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		response.BadRequest(c, "userId is required")
		return
	}

	if err := h.History.Clear(c.Request.Context(), userID); err != nil {
		h.Logger.Error("clear_history: failed to clear", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Failed to clear history", nil)
		return
	}

	h.Logger.Info("clear_history: history cleared", zap.String("user_id", userID))
	response.Message(c, "History cleared successfully")
}
