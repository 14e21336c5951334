package port

import (
	"context"

	"coverly.com/claimflow/internal/core/domain"
)

// ReasoningClient sends a free-text prompt to the remote reasoning backend
// and returns its raw completion text.
type ReasoningClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// DirectoryClient resolves whether a sender address belongs to a registered
// policyholder. A nil holder with a nil error means the sender is not
// registered; transport errors are reported but callers treat them as
// unregistered (fail-closed).
type DirectoryClient interface {
	LookupUser(ctx context.Context, email string) (*domain.PolicyHolder, error)
}

// NotifierClient dispatches one outbound customer email.
type NotifierClient interface {
	SendMail(ctx context.Context, recipient, subject, body string) error
}

// EventPublisher announces pipeline milestones to downstream consumers.
type EventPublisher interface {
	PublishClaimBatchIngested(ctx context.Context, message *domain.ClaimBatchIngestedMessage) error
	PublishClaimAssessed(ctx context.Context, message *domain.ClaimAssessedMessage) error
}
