// Package document turns uploaded files into text the tutor can work with.
package document

import (
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// previewLen is how much of a document is kept in history.
const previewLen = 500

var allowedTypes = map[string]bool{}

func init() {
	for _, t := range []string{
		"text/plain",
		"text/html",
		"text/markdown",
		"text/csv",
		"application/json",
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		"audio/mpeg",
		"audio/wav",
		"audio/mp4",
		"image/jpeg",
		"image/png",
		"image/gif",
	} {
		allowedTypes[t] = true
	}
}

// File is an uploaded file held in memory.
type File struct {
	Name     string
	MimeType string
	Data     []byte
}

// MediaType resolves the MIME type of an upload, dropping parameters such as
// charset. The declared header wins; the file extension is the fallback.
func MediaType(name, declared string) string {
	if declared != "" && declared != "application/octet-stream" {
		if mt, _, err := mime.ParseMediaType(declared); err == nil {
			return mt
		}
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		if mt, _, err := mime.ParseMediaType(byExt); err == nil {
			return mt
		}
	}
	return declared
}

// Check rejects file types the service does not accept.
func Check(f File) error {
	if !allowedTypes[f.MimeType] {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, f.MimeType)
	}
	return nil
}

// NotesSource returns the text sent to the notes generator. Text files are
// used as-is (HTML reduced to its visible text); other formats are described
// instead of parsed.
func NotesSource(f File) (string, error) {
	if strings.HasPrefix(f.MimeType, "text/") {
		return readText(f)
	}
	return fmt.Sprintf("Document: %s\nType: %s\n\nThis is a %s document. Please extract the main content and key points from this file.",
		f.Name, f.MimeType, f.MimeType), nil
}

// AttachmentContext returns the text attached to a tutor question.
func AttachmentContext(f File) (string, error) {
	mt := f.MimeType
	switch {
	case strings.HasPrefix(mt, "text/") || mt == "application/json":
		return readText(f)
	case mt == "application/pdf":
		return fmt.Sprintf("[PDF Document: %s] - Content would be extracted here in production", f.Name), nil
	case strings.Contains(mt, "word") || strings.Contains(mt, "document"):
		return fmt.Sprintf("[Word Document: %s] - Content would be extracted here in production", f.Name), nil
	case strings.Contains(mt, "image"):
		return fmt.Sprintf("[Image: %s] - Image content would be analyzed here in production", f.Name), nil
	case strings.Contains(mt, "audio") || strings.Contains(mt, "video"):
		return fmt.Sprintf("[Media: %s] - Audio/Video content would be transcribed here in production", f.Name), nil
	default:
		return fmt.Sprintf("[File: %s] - File content would be processed here in production", f.Name), nil
	}
}

// Preview is the prefix of content stored in history.
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= previewLen {
		return content + "..."
	}
	r := []rune(content)
	return string(r[:previewLen]) + "..."
}

func readText(f File) (string, error) {
	if f.MimeType == "text/html" {
		return htmlText(f.Data)
	}
	if !utf8.Valid(f.Data) {
		return strings.ToValidUTF8(string(f.Data), "�"), nil
	}
	return string(f.Data), nil
}
