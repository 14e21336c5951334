package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ClaimsExchange = "claims"

	ClaimEventsQueue = "claims.events"

	RoutingKeyClaimBatchIngested = "claim.batch.ingested"
	RoutingKeyClaimAssessed      = "claim.assessed"
)

// ClaimBatchIngestedMessage is published after each poll cycle that fetched
// at least one new message.
type ClaimBatchIngestedMessage struct {
	BatchID    uuid.UUID `json:"batch_id" validate:"required"`
	Enqueued   int       `json:"enqueued" validate:"min=0"`
	Filtered   int       `json:"filtered" validate:"min=0"`
	MailCount  int       `json:"mail_count" validate:"min=0"`
	IngestedAt time.Time `json:"ingested_at" validate:"required"`
}

// ClaimAssessedMessage is published once a claim reaches a terminal
// fulfillment status and its record has been persisted.
type ClaimAssessedMessage struct {
	ClaimID    string            `json:"claim_id" validate:"required"`
	UserMail   string            `json:"user_mail" validate:"required,email"`
	Status     FulfillmentStatus `json:"status" validate:"required,oneof=pending completed failed"`
	AssessedAt time.Time         `json:"assessed_at" validate:"required"`
}
