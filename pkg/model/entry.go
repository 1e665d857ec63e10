package model

import "time"

// EntryKind names the history list an entry belongs to.
type EntryKind string

const (
	EntryKindChat     EntryKind = "chat"
	EntryKindDocument EntryKind = "document"
	EntryKindNotes    EntryKind = "notes"
	EntryKindQuiz     EntryKind = "quiz"
)

// History is everything remembered for one user.
type History struct {
	Chats     []ChatEntry       `json:"chats"`
	Documents []DocumentEntry   `json:"documents"`
	Notes     []NotesEntry      `json:"notes"`
	Quizzes   []QuizResultEntry `json:"quizzes"`
}

// NewHistory returns a history with every list non-nil so it encodes as [].
func NewHistory() *History {
	return &History{
		Chats:     []ChatEntry{},
		Documents: []DocumentEntry{},
		Notes:     []NotesEntry{},
		Quizzes:   []QuizResultEntry{},
	}
}

// ChatEntry is one tutor exchange. Plain chats keep the user's text in
// Topic, attachment chats in Message.
type ChatEntry struct {
	ID             string    `json:"id" bson:"id"`
	Timestamp      time.Time `json:"timestamp" bson:"timestamp"`
	Type           string    `json:"type" bson:"type"`
	Topic          string    `json:"topic,omitempty" bson:"topic,omitempty"`
	Message        string    `json:"message,omitempty" bson:"message,omitempty"`
	Response       string    `json:"response" bson:"response"`
	HasAttachment  bool      `json:"hasAttachment" bson:"hasAttachment"`
	AttachmentName string    `json:"attachmentName,omitempty" bson:"attachmentName,omitempty"`
	AttachmentType string    `json:"attachmentType,omitempty" bson:"attachmentType,omitempty"`
}

type DocumentEntry struct {
	ID              string    `json:"id" bson:"id"`
	Timestamp       time.Time `json:"timestamp" bson:"timestamp"`
	FileName        string    `json:"fileName" bson:"fileName"`
	FileType        string    `json:"fileType" bson:"fileType"`
	OriginalContent string    `json:"originalContent" bson:"originalContent"`
}

type NotesEntry struct {
	ID           string    `json:"id" bson:"id"`
	Timestamp    time.Time `json:"timestamp" bson:"timestamp"`
	DocumentName string    `json:"documentName" bson:"documentName"`
	Notes        string    `json:"notes" bson:"notes"`
	Topic        string    `json:"topic" bson:"topic"`
}
