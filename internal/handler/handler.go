package handler

import (
	"context"

	"github.com/Surabhi222005/MentorMe/pkg/model"
	"go.uber.org/zap"
)

// Tutor is the language model behind the tutoring features.
type Tutor interface {
	Tutor(ctx context.Context, message string) (string, error)
	TutorWithContext(ctx context.Context, message, docContext string) (string, error)
	GenerateQuiz(ctx context.Context, topic string) (string, error)
	Summarize(ctx context.Context, content string) (string, error)
}

// HistoryStore records per-user activity.
type HistoryStore interface {
	Get(ctx context.Context, userID string) (*model.History, error)
	SaveChat(ctx context.Context, userID string, e model.ChatEntry) (model.ChatEntry, error)
	SaveDocument(ctx context.Context, userID string, e model.DocumentEntry) (model.DocumentEntry, error)
	SaveNotes(ctx context.Context, userID string, e model.NotesEntry) (model.NotesEntry, error)
	SaveQuizResult(ctx context.Context, userID string, e model.QuizResultEntry) (model.QuizResultEntry, error)
	Clear(ctx context.Context, userID string) error
}

type Handler struct {
	Logger         *zap.Logger
	AI             Tutor
	History        HistoryStore
	Provider       string
	Model          string
	Port           int
	MaxUploadBytes int64
}

func userIDOrDefault(id string) string {
	if id == "" {
		return model.DefaultUserID
	}
	return id
}
