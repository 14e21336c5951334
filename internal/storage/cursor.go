package storage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"coverly.com/claimflow/internal/core/domain"
)

// CursorStorage keeps the mailbox cursor as an append-only series of rows.
// Each poll writes a new row; the newest row is the authoritative cursor.
type CursorStorage struct {
	db *PostgresDB
}

func NewCursorStorage(db *PostgresDB) *CursorStorage {
	return &CursorStorage{
		db: db,
	}
}

// Latest returns the most recent cursor, or (nil, nil) when no cursor has
// ever been written. The nil cursor is the bootstrap signal: the caller must
// baseline the mailbox without processing the existing backlog.
func (s *CursorStorage) Latest(ctx context.Context) (*domain.MailCursor, error) {
	var cursor domain.MailCursor
	err := s.db.QueryRow(ctx,
		`SELECT seen_count, polled_at, created_at
		 FROM mail_cursors
		 ORDER BY id DESC
		 LIMIT 1`,
	).Scan(&cursor.SeenCount, &cursor.PolledAt, &cursor.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cursor, nil
}

func (s *CursorStorage) Append(ctx context.Context, cursor *domain.MailCursor) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO mail_cursors (seen_count, polled_at, created_at)
		 VALUES ($1, $2, $3)`,
		cursor.SeenCount,
		cursor.PolledAt,
		time.Now(),
	)

	return err
}
