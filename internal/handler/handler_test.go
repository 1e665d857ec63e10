package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/Surabhi222005/MentorMe/internal/history"
	"github.com/Surabhi222005/MentorMe/internal/quiz"
	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/Surabhi222005/MentorMe/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// fakeTutor returns canned replies and records what it was asked.
type fakeTutor struct {
	reply      string
	quizRaw    string
	err        error
	lastPrompt string
	lastDoc    string
}

func (f *fakeTutor) Tutor(_ context.Context, message string) (string, error) {
	f.lastPrompt = message
	return f.reply, f.err
}

func (f *fakeTutor) TutorWithContext(_ context.Context, message, docContext string) (string, error) {
	f.lastPrompt, f.lastDoc = message, docContext
	return f.reply, f.err
}

func (f *fakeTutor) GenerateQuiz(_ context.Context, topic string) (string, error) {
	f.lastPrompt = topic
	return f.quizRaw, f.err
}

func (f *fakeTutor) Summarize(_ context.Context, content string) (string, error) {
	f.lastDoc = content
	return f.reply, f.err
}

func newTestHandler(ai *fakeTutor) (*Handler, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	h := &Handler{
		Logger:         zap.NewNop(),
		AI:             ai,
		History:        history.New(history.NewMemoryBackend()),
		Provider:       "Groq",
		Model:          "llama-test",
		Port:           5001,
		MaxUploadBytes: 1024,
	}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/chat", h.Chat)
	api.POST("/chat-with-attachment", h.ChatWithAttachment)
	api.POST("/quiz", h.GenerateQuiz)
	api.POST("/quiz/results", h.SaveQuizResult)
	api.POST("/upload-document", h.UploadDocument)
	api.GET("/history/:userId", h.GetHistory)
	api.DELETE("/history/:userId", h.ClearHistory)
	api.GET("/health", h.Health)
	return h, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type formFile struct {
	field, name, mime string
	data              []byte
}

func doMultipart(t *testing.T, r http.Handler, path string, fields map[string]string, file *formFile) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		hdr := textproto.MIMEHeader{}
		hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.name))
		hdr.Set("Content-Type", file.mime)
		part, err := w.CreatePart(hdr)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(file.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func getHistory(t *testing.T, r http.Handler, userID string) model.History {
	t.Helper()
	rec := doJSON(t, r, http.MethodGet, "/api/history/"+userID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("history: status %d", rec.Code)
	}
	return decode[model.History](t, rec)
}

// TestGenerateQuizPadsParsedQuestions returns five questions with the topic.
func TestGenerateQuizPadsParsedQuestions(t *testing.T) {
	ai := &fakeTutor{quizRaw: `Here is your quiz: {"questions":[{"question":"Q1","options":["a","b","c","d"],"correctAnswer":1}]} Hope you enjoy!`}
	_, r := newTestHandler(ai)

	rec := doJSON(t, r, http.MethodPost, "/api/quiz", model.GenerateQuizReq{Topic: " cells "})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	res := decode[model.GenerateQuizRes](t, rec)
	if !res.Success || res.Topic != "cells" || ai.lastPrompt != "cells" {
		t.Fatalf("unexpected response %+v (prompt %q)", res, ai.lastPrompt)
	}
	if len(res.Questions) != quiz.Size || res.Questions[0].Question != "Q1" {
		t.Fatalf("unexpected questions %+v", res.Questions)
	}
	if res.Questions[1].Question != quiz.Fallback()[1].Question {
		t.Fatalf("expected fallback[1] in slot 1, got %+v", res.Questions[1])
	}
}

// TestGenerateQuizFallsBackOnGarbage answers with the fallback set.
func TestGenerateQuizFallsBackOnGarbage(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{quizRaw: "not json at all"})

	rec := doJSON(t, r, http.MethodPost, "/api/quiz", model.GenerateQuizReq{Topic: "java"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	res := decode[model.GenerateQuizRes](t, rec)
	for i, q := range quiz.Fallback() {
		if res.Questions[i].Question != q.Question || res.Questions[i].CorrectAnswer != q.CorrectAnswer {
			t.Fatalf("slot %d: expected fallback, got %+v", i, res.Questions[i])
		}
	}
}

// TestGenerateQuizErrors covers missing topic and upstream failure.
func TestGenerateQuizErrors(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{})
	if rec := doJSON(t, r, http.MethodPost, "/api/quiz", model.GenerateQuizReq{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing topic, got %d", rec.Code)
	}

	_, r = newTestHandler(&fakeTutor{err: errors.New("upstream down")})
	rec := doJSON(t, r, http.MethodPost, "/api/quiz", model.GenerateQuizReq{Topic: "java"})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decode[response.ErrorBody](t, rec)
	if body.Success || body.Error != "Failed to generate quiz" || body.Details != "upstream down" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

// TestChatSavesHistory replies and records the exchange for the default user.
func TestChatSavesHistory(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{reply: "Great question! 🌟"})

	rec := doJSON(t, r, http.MethodPost, "/api/chat", model.ChatReq{Message: "what is a cell?"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if res := decode[model.ChatRes](t, rec); res.Response != "Great question! 🌟" {
		t.Fatalf("unexpected reply %+v", res)
	}

	h := getHistory(t, r, model.DefaultUserID)
	if len(h.Chats) != 1 || h.Chats[0].Topic != "what is a cell?" || h.Chats[0].Type != model.ChatTypePlain {
		t.Fatalf("unexpected history %+v", h.Chats)
	}
	if h.Chats[0].Message != "" {
		t.Fatalf("plain chats keep the text under topic, got message %q", h.Chats[0].Message)
	}
}

// TestChatRequiresMessage rejects blank messages.
func TestChatRequiresMessage(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{})
	if rec := doJSON(t, r, http.MethodPost, "/api/chat", model.ChatReq{Message: "  "}); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestChatWithAttachmentPassesText sends text attachments as context.
func TestChatWithAttachmentPassesText(t *testing.T) {
	ai := &fakeTutor{reply: "It is about mitosis"}
	_, r := newTestHandler(ai)

	rec := doMultipart(t, r, "/api/chat-with-attachment",
		map[string]string{"message": "what is this about?", "userId": "ana"},
		&formFile{field: "attachment", name: "notes.txt", mime: "text/plain", data: []byte("mitosis phases")})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	res := decode[model.ChatWithAttachmentRes](t, rec)
	if !res.HasAttachment || ai.lastDoc != "mitosis phases" {
		t.Fatalf("unexpected response %+v (doc %q)", res, ai.lastDoc)
	}

	h := getHistory(t, r, "ana")
	if len(h.Chats) != 1 || h.Chats[0].AttachmentName != "notes.txt" || h.Chats[0].Type != model.ChatTypeAttachment || h.Chats[0].Message != "what is this about?" {
		t.Fatalf("unexpected history %+v", h.Chats)
	}
}

// TestChatWithAttachmentWithoutFile works as a plain question.
func TestChatWithAttachmentWithoutFile(t *testing.T) {
	ai := &fakeTutor{reply: "ok"}
	_, r := newTestHandler(ai)

	rec := doMultipart(t, r, "/api/chat-with-attachment", map[string]string{"message": "hi"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if res := decode[model.ChatWithAttachmentRes](t, rec); res.HasAttachment || ai.lastDoc != "" {
		t.Fatalf("unexpected response %+v", res)
	}
}

// TestUploadDocumentCreatesNotes summarizes a text file and stores a preview.
func TestUploadDocumentCreatesNotes(t *testing.T) {
	ai := &fakeTutor{reply: "🎯 **Key Points**"}
	_, r := newTestHandler(ai)

	rec := doMultipart(t, r, "/api/upload-document", map[string]string{"userId": "ana"},
		&formFile{field: "document", name: "bio.txt", mime: "text/plain", data: []byte("Cells are the unit of life.")})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	res := decode[model.UploadDocumentRes](t, rec)
	if !res.Success || res.FileName != "bio.txt" || res.FileType != "text/plain" || res.Notes != "🎯 **Key Points**" {
		t.Fatalf("unexpected response %+v", res)
	}
	if ai.lastDoc != "Cells are the unit of life." {
		t.Fatalf("unexpected summarize input %q", ai.lastDoc)
	}

	h := getHistory(t, r, "ana")
	if len(h.Documents) != 1 || h.Documents[0].OriginalContent != "Cells are the unit of life...." {
		t.Fatalf("unexpected documents %+v", h.Documents)
	}
	if len(h.Notes) != 1 || h.Notes[0].Topic != "Document Analysis" {
		t.Fatalf("unexpected notes %+v", h.Notes)
	}
}

// TestUploadDocumentRejections covers missing, unsupported and oversized files.
func TestUploadDocumentRejections(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{reply: "notes"})

	cases := []struct {
		name string
		file *formFile
		want int
	}{
		{name: "missing", file: nil, want: http.StatusBadRequest},
		{name: "unsupported", file: &formFile{field: "document", name: "a.exe", mime: "application/x-msdownload", data: []byte("MZ")}, want: http.StatusUnsupportedMediaType},
		{name: "too large", file: &formFile{field: "document", name: "big.txt", mime: "text/plain", data: bytes.Repeat([]byte("a"), 2048)}, want: http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doMultipart(t, r, "/api/upload-document", nil, tc.file)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

// TestSaveQuizResultAndClearHistory stores a result and clears it again.
func TestSaveQuizResultAndClearHistory(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{})

	rec := doJSON(t, r, http.MethodPost, "/api/quiz/results", model.SaveQuizResultReq{
		UserID: "ana", Topic: "java", Score: 3, TotalQuestions: 5,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if entry := decode[model.QuizResultEntry](t, rec); entry.ID == "" || entry.Score != 3 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if h := getHistory(t, r, "ana"); len(h.Quizzes) != 1 {
		t.Fatalf("expected 1 quiz, got %+v", h.Quizzes)
	}

	rec = doJSON(t, r, http.MethodDelete, "/api/history/ana", nil)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "History cleared successfully") {
		t.Fatalf("unexpected clear response %d %s", rec.Code, rec.Body.String())
	}
	if h := getHistory(t, r, "ana"); len(h.Quizzes) != 0 {
		t.Fatalf("expected empty history after clear, got %+v", h.Quizzes)
	}
}

// TestSaveQuizResultValidatesScore rejects scores above the total.
func TestSaveQuizResultValidatesScore(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{})
	rec := doJSON(t, r, http.MethodPost, "/api/quiz/results", model.SaveQuizResultReq{Topic: "java", Score: 6, TotalQuestions: 5})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestHealthReportsPortAndModel exposes the bound port for client discovery.
func TestHealthReportsPortAndModel(t *testing.T) {
	_, r := newTestHandler(&fakeTutor{})

	rec := doJSON(t, r, http.MethodGet, "/api/health", nil)
	res := decode[model.HealthRes](t, rec)
	if rec.Code != http.StatusOK || res.Status != "OK" || res.Port != 5001 || res.Model != "llama-test" {
		t.Fatalf("unexpected health %d %+v", rec.Code, res)
	}
}
