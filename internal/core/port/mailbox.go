package port

import (
	"context"

	"coverly.com/claimflow/internal/core/domain"
)

// Mailbox is the minimal contract the ingestion pipeline needs from the mail
// transport. Count reports the live inbox size; Fetch retrieves and decodes
// one message by sequence number.
type Mailbox interface {
	Count(ctx context.Context) (int, error)
	Fetch(ctx context.Context, sequence uint32) (*domain.InboundMail, error)
	Close() error
}
