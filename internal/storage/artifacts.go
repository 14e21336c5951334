package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"coverly.com/claimflow/internal/core/domain"
)

// ArtifactStorage is the durable blob store for archived claim material.
// Each blob is addressed by an opaque uuid reference and tagged with claim
// metadata for later lookup.
type ArtifactStorage struct {
	db *PostgresDB
}

func NewArtifactStorage(db *PostgresDB) *ArtifactStorage {
	return &ArtifactStorage{
		db: db,
	}
}

func (s *ArtifactStorage) Put(ctx context.Context, data []byte, filename string, meta domain.ArtifactMetadata) (uuid.UUID, error) {
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal artifact metadata: %w", err)
	}

	var ref uuid.UUID
	err = s.db.QueryRow(ctx,
		`INSERT INTO artifacts (payload, filename, claim_id, user_email, kind, size_bytes, metadata, uploaded_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		data,
		filename,
		meta.ClaimID,
		meta.UserEmail,
		meta.Kind,
		len(data),
		metaJSON,
		time.Now(),
	).Scan(&ref)

	if err != nil {
		return uuid.Nil, err
	}

	return ref, nil
}

func (s *ArtifactStorage) Get(ctx context.Context, ref uuid.UUID) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow(ctx,
		`SELECT payload FROM artifacts WHERE id = $1`,
		ref,
	).Scan(&payload)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("artifact %s not found", ref)
	}
	if err != nil {
		return nil, err
	}

	return payload, nil
}

func (s *ArtifactStorage) Delete(ctx context.Context, ref uuid.UUID) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM artifacts WHERE id = $1`,
		ref,
	)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
