package handler

import (
	"time"

	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	response.OK(c, model.HealthRes{
		Status:    "OK",
		Message:   "MentorMe backend is running",
		Provider:  h.Provider,
		Model:     h.Model,
		Port:      h.Port,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
