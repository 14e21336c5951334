package client

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"coverly.com/claimflow/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

// AMQPEventPublisher announces pipeline milestones on the claims exchange.
// Messages are validated before they hit the wire so downstream consumers
// never see a half-built event.
type AMQPEventPublisher struct {
	publisher Publisher
	validate  *validator.Validate
}

func NewAMQPEventPublisher(publisher Publisher, validate *validator.Validate) *AMQPEventPublisher {
	return &AMQPEventPublisher{
		publisher: publisher,
		validate:  validate,
	}
}

func (p *AMQPEventPublisher) PublishClaimBatchIngested(ctx context.Context, message *domain.ClaimBatchIngestedMessage) error {
	if err := p.validate.Struct(message); err != nil {
		return fmt.Errorf("invalid claim batch ingested message: %w", err)
	}
	return p.publisher.Publish(ctx, domain.ClaimsExchange, domain.RoutingKeyClaimBatchIngested, message)
}

func (p *AMQPEventPublisher) PublishClaimAssessed(ctx context.Context, message *domain.ClaimAssessedMessage) error {
	if err := p.validate.Struct(message); err != nil {
		return fmt.Errorf("invalid claim assessed message: %w", err)
	}
	return p.publisher.Publish(ctx, domain.ClaimsExchange, domain.RoutingKeyClaimAssessed, message)
}
