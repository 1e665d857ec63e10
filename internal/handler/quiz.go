package handler

import (
	"strings"

	"github.com/Surabhi222005/MentorMe/internal/quiz"
	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateQuiz asks the model for a quiz and always answers with five questions
func (h *Handler) GenerateQuiz(c *gin.Context) {
	var req model.GenerateQuizReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		response.BadRequest(c, "Topic is required")
		return
	}

	raw, err := h.AI.GenerateQuiz(c.Request.Context(), topic)
	if err != nil {
		h.Logger.Error("generate_quiz: completion failed", zap.String("topic", topic), zap.Error(err))
		response.InternalError(c, "Failed to generate quiz", err)
		return
	}
	h.Logger.Debug("generate_quiz: raw response", zap.String("topic", topic), zap.String("raw", raw))

	payload := quiz.Normalize(raw)
	switch {
	case payload.UsedFallback:
		h.Logger.Warn("generate_quiz: unparseable response, using fallback questions",
			zap.String("topic", topic),
			zap.Error(payload.ParseErr),
		)
	case payload.Dropped > 0 || payload.Padded > 0:
		h.Logger.Info("generate_quiz: response adjusted",
			zap.String("topic", topic),
			zap.Int("dropped", payload.Dropped),
			zap.Int("padded", payload.Padded),
		)
	}

	response.OK(c, model.GenerateQuizRes{
		Success:   true,
		Questions: payload.Questions,
		Topic:     topic,
	})
}

// SaveQuizResult records a finished quiz in the user's history
func (h *Handler) SaveQuizResult(c *gin.Context) {
	var req model.SaveQuizResultReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		response.BadRequest(c, "Topic is required")
		return
	}
	if req.TotalQuestions < 0 || req.Score < 0 || req.Score > req.TotalQuestions {
		response.BadRequest(c, "score must be between 0 and totalQuestions")
		return
	}
	if req.Questions == nil {
		req.Questions = []model.AnsweredQuestion{}
	}

	userID := userIDOrDefault(req.UserID)
	entry, err := h.History.SaveQuizResult(c.Request.Context(), userID, model.QuizResultEntry{
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		Questions:      req.Questions,
	})
	if err != nil {
		h.Logger.Error("save_quiz_result: failed to save", zap.String("user_id", userID), zap.Error(err))
		response.InternalError(c, "Failed to save quiz result", nil)
		return
	}

	response.Created(c, entry)
}
