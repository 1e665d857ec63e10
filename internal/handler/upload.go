package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Surabhi222005/MentorMe/internal/document"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errNoFile   = errors.New("no file uploaded")
	errTooLarge = errors.New("file too large")
)

// multipart framing allowance on top of the file size limit
const formOverhead = 1 << 20

// readUpload loads the named multipart file into memory and checks its type.
func (h *Handler) readUpload(c *gin.Context, field string) (*document.File, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+formOverhead)

	fh, err := c.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return nil, errNoFile
		case errors.As(err, &maxErr):
			return nil, errTooLarge
		}
		return nil, fmt.Errorf("parse form: %w", err)
	}
	if fh.Size > h.MaxUploadBytes {
		return nil, errTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > h.MaxUploadBytes {
		return nil, errTooLarge
	}

	file := &document.File{
		Name:     fh.Filename,
		MimeType: document.MediaType(fh.Filename, fh.Header.Get("Content-Type")),
		Data:     data,
	}
	if err := document.Check(*file); err != nil {
		return nil, err
	}
	return file, nil
}

// rejectUpload maps a readUpload error to a response.
func (h *Handler) rejectUpload(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, errNoFile):
		response.BadRequest(c, "No file uploaded")
	case errors.Is(err, errTooLarge):
		response.PayloadTooLarge(c, fmt.Sprintf("File exceeds the %d byte limit", h.MaxUploadBytes))
	case errors.Is(err, document.ErrUnsupportedType):
		response.UnsupportedMediaType(c, "Unsupported file type")
	default:
		h.Logger.Error(op+": failed to read upload", zap.Error(err))
		response.BadRequest(c, "invalid multipart form")
	}
}
