package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/core/port"
	"coverly.com/claimflow/internal/queue"
)

// QueueProcessor drains the work queue once per non-empty poll cycle. Each
// record is validated against the user directory before it may enter
// fulfillment assessment; processing is independent per record and a failure
// never stops the drain.
type QueueProcessor struct {
	queue       *queue.Queue
	directory   port.DirectoryClient
	notifier    port.NotifierClient
	fulfillment port.FulfillmentService
	templates   *TemplateSet
	recordDelay time.Duration
}

func NewQueueProcessor(
	q *queue.Queue,
	directory port.DirectoryClient,
	notifier port.NotifierClient,
	fulfillment port.FulfillmentService,
	templates *TemplateSet,
	recordDelay time.Duration,
) *QueueProcessor {
	return &QueueProcessor{
		queue:       q,
		directory:   directory,
		notifier:    notifier,
		fulfillment: fulfillment,
		templates:   templates,
		recordDelay: recordDelay,
	}
}

// Drain pops records until the queue is empty, then returns control to the
// poll loop. A cancelled context stops after the current record; mid-record
// aborts are never attempted.
func (p *QueueProcessor) Drain(ctx context.Context) int {
	processed := 0

	for {
		if ctx.Err() != nil {
			log.Warn("Queue drain stopped by shutdown signal")
			return processed
		}

		record, ok := p.queue.PopOrEmpty()
		if !ok {
			break
		}

		if err := p.processRecord(ctx, record); err != nil {
			log.WithError(err).WithFields(log.Fields{
				"claimID": record.ClaimID,
				"sender":  record.Sender,
			}).Error("Failed to process email record")
		}
		processed++

		// Courtesy delay bounding the outbound call rate.
		if p.queue.Len() > 0 {
			select {
			case <-time.After(p.recordDelay):
			case <-ctx.Done():
			}
		}
	}

	if processed > 0 {
		log.WithField("processed", processed).Info("Queue drain complete")
	}
	return processed
}

func (p *QueueProcessor) processRecord(ctx context.Context, record *domain.EmailRecord) error {
	holder, err := p.directory.LookupUser(ctx, record.Sender)
	if err != nil {
		// Registration is fail-closed: a directory failure is treated as unregistered.
		log.WithError(err).WithField("sender", record.Sender).Warn("User lookup failed, treating sender as unregistered")
	}

	if holder == nil {
		return p.rejectUnregistered(ctx, record)
	}

	log.WithFields(log.Fields{
		"sender":     record.Sender,
		"policyType": holder.PolicyType,
		"claimID":    record.ClaimID,
	}).Info("User registered, proceeding with fulfillment assessment")

	return p.fulfillment.Process(ctx, record, holder)
}

// rejectUnregistered notifies the sender and discards the record. No
// fulfillment record is ever created for an unregistered sender.
func (p *QueueProcessor) rejectUnregistered(ctx context.Context, record *domain.EmailRecord) error {
	log.WithField("sender", record.Sender).Info("User not registered, sending rejection email")

	subject, body := p.templates.RegistrationRequired(record.Sender, record.ClaimID)
	if err := p.notifier.SendMail(ctx, record.Sender, subject, body); err != nil {
		return err
	}

	log.WithField("sender", record.Sender).Info("Rejection email sent to unregistered user")
	return nil
}
