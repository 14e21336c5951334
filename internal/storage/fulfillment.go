package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coverly.com/claimflow/internal/core/domain"
)

// FulfillmentStorage persists claim assessment outcomes. claim_id carries a
// unique index, so a duplicate Create surfaces as an error instead of a
// silent overwrite.
type FulfillmentStorage struct {
	db *PostgresDB
}

func NewFulfillmentStorage(db *PostgresDB) *FulfillmentStorage {
	return &FulfillmentStorage{
		db: db,
	}
}

func (s *FulfillmentStorage) Create(ctx context.Context, record *domain.FulfillmentRecord) (uuid.UUID, error) {
	now := time.Now()

	var id uuid.UUID
	err := s.db.QueryRow(ctx,
		`INSERT INTO fulfillment_requests
		     (user_mail, claim_id, mail_content, attachment_count, status,
		      missing_items, mail_content_ref, attachment_refs, archived_at,
		      created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		record.UserMail,
		record.ClaimID,
		record.MailContent,
		record.AttachmentCount,
		record.Status,
		nullableText(record.MissingItems),
		record.MailContentRef,
		record.AttachmentRefs,
		record.ArchivedAt,
		now,
		now,
	).Scan(&id)

	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (s *FulfillmentStorage) GetByClaimID(ctx context.Context, claimID string) (*domain.FulfillmentRecord, error) {
	record := &domain.FulfillmentRecord{}
	var missing *string

	err := s.db.QueryRow(ctx,
		`SELECT id, user_mail, claim_id, mail_content, attachment_count, status,
		        missing_items, mail_content_ref, attachment_refs, archived_at,
		        created_at, updated_at
		 FROM fulfillment_requests
		 WHERE claim_id = $1`,
		claimID,
	).Scan(
		&record.ID,
		&record.UserMail,
		&record.ClaimID,
		&record.MailContent,
		&record.AttachmentCount,
		&record.Status,
		&missing,
		&record.MailContentRef,
		&record.AttachmentRefs,
		&record.ArchivedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if missing != nil {
		record.MissingItems = *missing
	}

	return record, nil
}

func (s *FulfillmentStorage) UpdateStatus(ctx context.Context, claimID string, status domain.FulfillmentStatus) error {
	_, err := s.db.Exec(ctx,
		`UPDATE fulfillment_requests
		 SET status = $2, updated_at = $3
		 WHERE claim_id = $1`,
		claimID,
		status,
		time.Now(),
	)

	return err
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
