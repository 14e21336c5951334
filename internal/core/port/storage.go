package port

import (
	"context"

	"github.com/google/uuid"

	"coverly.com/claimflow/internal/core/domain"
)

// CursorStorage persists the mailbox cursor append-only. Latest returns
// (nil, nil) when no cursor has ever been written, which signals bootstrap.
type CursorStorage interface {
	Latest(ctx context.Context) (*domain.MailCursor, error)
	Append(ctx context.Context, cursor *domain.MailCursor) error
}

// FulfillmentStorage persists claim assessment outcomes. ClaimID is unique;
// Create fails on a duplicate rather than silently overwriting.
type FulfillmentStorage interface {
	Create(ctx context.Context, record *domain.FulfillmentRecord) (uuid.UUID, error)
	GetByClaimID(ctx context.Context, claimID string) (*domain.FulfillmentRecord, error)
	UpdateStatus(ctx context.Context, claimID string, status domain.FulfillmentStatus) error
}

// ArtifactStore is content storage for archived claim material. Delete
// reports whether a blob was actually removed.
type ArtifactStore interface {
	Put(ctx context.Context, data []byte, filename string, meta domain.ArtifactMetadata) (uuid.UUID, error)
	Get(ctx context.Context, ref uuid.UUID) ([]byte, error)
	Delete(ctx context.Context, ref uuid.UUID) (bool, error)
}
