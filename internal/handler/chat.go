package handler

import (
	"errors"
	"strings"

	"github.com/Surabhi222005/MentorMe/internal/document"
	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chat answers a plain tutoring question
func (h *Handler) Chat(c *gin.Context) {
	var req model.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.BadRequest(c, "Message is required")
		return
	}

	reply, err := h.AI.Tutor(c.Request.Context(), req.Message)
	if err != nil {
		h.Logger.Error("chat: completion failed", zap.Error(err))
		response.InternalError(c, "Failed to get response", err)
		return
	}

	userID := userIDOrDefault(req.UserID)
	if _, err := h.History.SaveChat(c.Request.Context(), userID, model.ChatEntry{
		Type:     model.ChatTypePlain,
		Topic:    req.Message,
		Response: reply,
	}); err != nil {
		h.Logger.Warn("chat: failed to save history", zap.String("user_id", userID), zap.Error(err))
	}

	response.OK(c, model.ChatRes{Response: reply})
}

// ChatWithAttachment answers a question about an optional uploaded file
func (h *Handler) ChatWithAttachment(c *gin.Context) {
	file, err := h.readUpload(c, "attachment")
	if err != nil && !errors.Is(err, errNoFile) {
		h.rejectUpload(c, "chat_with_attachment", err)
		return
	}

	message := c.PostForm("message")
	if strings.TrimSpace(message) == "" {
		response.BadRequest(c, "Message is required")
		return
	}

	var docContext string
	if file != nil {
		h.Logger.Info("chat_with_attachment: processing attachment",
			zap.String("file_name", file.Name),
			zap.String("mime_type", file.MimeType),
		)
		docContext, err = document.AttachmentContext(*file)
		if err != nil {
			h.Logger.Error("chat_with_attachment: failed to read attachment", zap.String("file_name", file.Name), zap.Error(err))
			response.InternalError(c, "Failed to process attachment", nil)
			return
		}
	}

	reply, err := h.AI.TutorWithContext(c.Request.Context(), message, docContext)
	if err != nil {
		h.Logger.Error("chat_with_attachment: completion failed", zap.Error(err))
		response.InternalError(c, "Failed to process chat with attachment", nil)
		return
	}

	entry := model.ChatEntry{
		Type:          model.ChatTypeAttachment,
		Message:       message,
		Response:      reply,
		HasAttachment: file != nil,
	}
	if file != nil {
		entry.AttachmentName = file.Name
		entry.AttachmentType = file.MimeType
	}
	userID := userIDOrDefault(c.PostForm("userId"))
	if _, err := h.History.SaveChat(c.Request.Context(), userID, entry); err != nil {
		h.Logger.Warn("chat_with_attachment: failed to save history", zap.String("user_id", userID), zap.Error(err))
	}

	response.OK(c, model.ChatWithAttachmentRes{Response: reply, HasAttachment: file != nil})
}
