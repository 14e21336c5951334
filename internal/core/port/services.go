package port

import (
	"context"

	"coverly.com/claimflow/internal/core/domain"
)

// ClassifierService decides whether an email is claim-relevant. It never
// returns an error: backend or parse failures resolve to the deterministic
// keyword fallback so classification can never block ingestion.
type ClassifierService interface {
	Classify(ctx context.Context, record *domain.EmailRecord) domain.ClassificationResult
}

// IngestionService runs one poll cycle: cursor delta, fetch, extract,
// classify, enqueue.
type IngestionService interface {
	RunCycle(ctx context.Context) (domain.CycleResult, error)
}

// FulfillmentService drives one accepted claim through assessment,
// persistence, archival and customer notification.
type FulfillmentService interface {
	Process(ctx context.Context, record *domain.EmailRecord, holder *domain.PolicyHolder) error
}
