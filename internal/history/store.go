// Package history remembers what each user asked and received.
//
// Store stamps and encodes entries; a Backend only keeps ordered records
// per user. Backends exist for process memory, Redis, Postgres and MongoDB.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/google/uuid"
)

var ErrEmptyUserID = errors.New("user id is required")

// Record is one stored history entry. Payload is the JSON form of the entry.
type Record struct {
	ID        string          `json:"id"`
	Kind      model.EntryKind `json:"kind"`
	CreatedAt time.Time       `json:"createdAt"`
	Payload   json.RawMessage `json:"payload"`
}

// Backend keeps records per user in insertion order.
type Backend interface {
	Append(ctx context.Context, userID string, rec Record) error
	Load(ctx context.Context, userID string) ([]Record, error)
	Clear(ctx context.Context, userID string) error
	Close() error
}

type Store struct {
	backend Backend
	now     func() time.Time
	newID   func() string
}

func New(b Backend) *Store {
	return &Store{
		backend: b,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Get returns the user's history. Unknown users get an empty history.
func (s *Store) Get(ctx context.Context, userID string) (*model.History, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	recs, err := s.backend.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return assemble(recs)
}

func (s *Store) SaveChat(ctx context.Context, userID string, e model.ChatEntry) (model.ChatEntry, error) {
	e.ID, e.Timestamp = s.newID(), s.now()
	return e, s.append(ctx, userID, model.EntryKindChat, e.ID, e.Timestamp, e)
}

func (s *Store) SaveDocument(ctx context.Context, userID string, e model.DocumentEntry) (model.DocumentEntry, error) {
	e.ID, e.Timestamp = s.newID(), s.now()
	return e, s.append(ctx, userID, model.EntryKindDocument, e.ID, e.Timestamp, e)
}

func (s *Store) SaveNotes(ctx context.Context, userID string, e model.NotesEntry) (model.NotesEntry, error) {
	e.ID, e.Timestamp = s.newID(), s.now()
	return e, s.append(ctx, userID, model.EntryKindNotes, e.ID, e.Timestamp, e)
}

func (s *Store) SaveQuizResult(ctx context.Context, userID string, e model.QuizResultEntry) (model.QuizResultEntry, error) {
	e.ID, e.Timestamp = s.newID(), s.now()
	return e, s.append(ctx, userID, model.EntryKindQuiz, e.ID, e.Timestamp, e)
}

func (s *Store) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := s.backend.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) append(ctx context.Context, userID string, kind model.EntryKind, id string, ts time.Time, entry any) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode %s entry: %w", kind, err)
	}
	rec := Record{ID: id, Kind: kind, CreatedAt: ts, Payload: payload}
	if err := s.backend.Append(ctx, userID, rec); err != nil {
		return fmt.Errorf("save %s entry: %w", kind, err)
	}
	return nil
}

func assemble(recs []Record) (*model.History, error) {
	h := model.NewHistory()
	for _, r := range recs {
		var err error
		switch r.Kind {
		case model.EntryKindChat:
			var e model.ChatEntry
			if err = json.Unmarshal(r.Payload, &e); err == nil {
				h.Chats = append(h.Chats, e)
			}
		case model.EntryKindDocument:
			var e model.DocumentEntry
			if err = json.Unmarshal(r.Payload, &e); err == nil {
				h.Documents = append(h.Documents, e)
			}
		case model.EntryKindNotes:
			var e model.NotesEntry
			if err = json.Unmarshal(r.Payload, &e); err == nil {
				h.Notes = append(h.Notes, e)
			}
		case model.EntryKindQuiz:
			var e model.QuizResultEntry
			if err = json.Unmarshal(r.Payload, &e); err == nil {
				h.Quizzes = append(h.Quizzes, e)
			}
		default:
			err = fmt.Errorf("unknown kind %q", r.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("decode history entry %s: %w", r.ID, err)
		}
	}
	return h, nil
}
