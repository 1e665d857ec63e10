package handler

import (
	"github.com/Surabhi222005/MentorMe/internal/document"
	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notesTopic = "Document Analysis"

// UploadDocument turns an uploaded document into study notes
func (h *Handler) UploadDocument(c *gin.Context) {
	file, err := h.readUpload(c, "document")
	if err != nil {
		h.rejectUpload(c, "upload_document", err)
		return
	}

	h.Logger.Info("upload_document: processing file",
		zap.String("file_name", file.Name),
		zap.String("mime_type", file.MimeType),
		zap.Int("size", len(file.Data)),
	)

	content, err := document.NotesSource(*file)
	if err != nil {
		h.Logger.Error("upload_document: failed to extract text", zap.String("file_name", file.Name), zap.Error(err))
		response.InternalError(c, "Failed to process document", err)
		return
	}

	notes, err := h.AI.Summarize(c.Request.Context(), content)
	if err != nil {
		h.Logger.Error("upload_document: completion failed", zap.String("file_name", file.Name), zap.Error(err))
		response.InternalError(c, "Failed to process document", err)
		return
	}

	ctx := c.Request.Context()
	userID := userIDOrDefault(c.PostForm("userId"))
	if _, err := h.History.SaveDocument(ctx, userID, model.DocumentEntry{
		FileName:        file.Name,
		FileType:        file.MimeType,
		OriginalContent: document.Preview(content),
	}); err != nil {
		h.Logger.Warn("upload_document: failed to save document history", zap.String("user_id", userID), zap.Error(err))
	}
	if _, err := h.History.SaveNotes(ctx, userID, model.NotesEntry{
		DocumentName: file.Name,
		Notes:        notes,
		Topic:        notesTopic,
	}); err != nil {
		h.Logger.Warn("upload_document: failed to save notes history", zap.String("user_id", userID), zap.Error(err))
	}

	response.OK(c, model.UploadDocumentRes{
		Success:  true,
		FileName: file.Name,
		FileType: file.MimeType,
		Notes:    notes,
		Message:  "Document processed successfully",
	})
}
