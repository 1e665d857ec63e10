package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OK sends a 200 response with the payload as the whole body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response for successfully created resources
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a success response with just a message
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// --- Error Responses ---

func errorResponse(c *gin.Context, status int, message string, details string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Success: false,
		Error:   message,
		Details: details,
	})
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	errorResponse(c, http.StatusBadRequest, message, "")
}

// UnsupportedMediaType sends a 415 response
func UnsupportedMediaType(c *gin.Context, message string) {
	errorResponse(c, http.StatusUnsupportedMediaType, message, "")
}

// PayloadTooLarge sends a 413 response
func PayloadTooLarge(c *gin.Context, message string) {
	errorResponse(c, http.StatusRequestEntityTooLarge, message, "")
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	errorResponse(c, http.StatusNotFound, message, "")
}

// InternalError sends a 500 response. err, when set, is reported as details.
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "internal server error"
	}
	details := ""
	if err != nil {
		details = err.Error()
	}
	errorResponse(c, http.StatusInternalServerError, message, details)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	errorResponse(c, http.StatusTooManyRequests, message, "")
}
