package history

import (
	"context"
	"fmt"

	"github.com/Surabhi222005/MentorMe/pkg/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps records in the history_entries table.
type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) Append(ctx context.Context, userID string, rec Record) error {
	const q = `
INSERT INTO history_entries (id, user_id, kind, payload, created_at)
VALUES ($1, $2, $3, $4::jsonb, $5)
`
	if _, err := p.db.Exec(ctx, q, rec.ID, userID, string(rec.Kind), string(rec.Payload), rec.CreatedAt); err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Load(ctx context.Context, userID string) ([]Record, error) {
	const q = `
SELECT id, kind, payload, created_at
FROM history_entries
WHERE user_id = $1
ORDER BY seq ASC
`
	rows, err := p.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			kind    string
			payload []byte
		)
		if err := rows.Scan(&rec.ID, &kind, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		rec.Kind = model.EntryKind(kind)
		rec.Payload = payload
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (p *PostgresBackend) Clear(ctx context.Context, userID string) error {
	if _, err := p.db.Exec(ctx, `DELETE FROM history_entries WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	return nil
}

func (p *PostgresBackend) Close() error {
	p.db.Close()
	return nil
}
