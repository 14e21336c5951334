package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/core/port"
	"coverly.com/claimflow/internal/metrics"
)

// defaultRequirements lists the fulfillment items a claim must cover. The
// sender email is always satisfied: the message itself proves it.
const defaultRequirements = `1. User email address
2. Reason for claim
3. Claim amount
4. Supporting proofs (attachments)`

const mailContentLimit = 1000

// FulfillmentService is the requirements-satisfaction state machine. It asks
// the reasoning backend whether a claim is complete, reconciles that answer
// against ground-truth evidence from the email itself, persists the outcome
// and dispatches exactly one customer notification per terminal state.
type FulfillmentService struct {
	llm       port.ReasoningClient
	store     port.FulfillmentStorage
	artifacts port.ArtifactStore
	notifier  port.NotifierClient
	events    port.EventPublisher
	templates *TemplateSet
}

func NewFulfillmentService(
	llm port.ReasoningClient,
	store port.FulfillmentStorage,
	artifacts port.ArtifactStore,
	notifier port.NotifierClient,
	events port.EventPublisher,
	templates *TemplateSet,
) *FulfillmentService {
	return &FulfillmentService{
		llm:       llm,
		store:     store,
		artifacts: artifacts,
		notifier:  notifier,
		events:    events,
		templates: templates,
	}
}

// Process assesses one accepted claim and drives it to its terminal state.
func (f *FulfillmentService) Process(ctx context.Context, record *domain.EmailRecord, holder *domain.PolicyHolder) error {
	raw, err := f.llm.Complete(ctx, buildAssessmentPrompt(record))
	if err != nil {
		return fmt.Errorf("fulfillment assessment call failed: %w", err)
	}

	assessment := ParseAssessment(raw, record)

	log.WithFields(log.Fields{
		"claimID":   record.ClaimID,
		"status":    assessment.Status,
		"satisfied": len(assessment.SatisfiedItems),
	}).Info("Fulfillment assessment result")

	switch assessment.Status {
	case domain.StatusCompleted:
		err = f.complete(ctx, record, assessment)
	default:
		err = f.pend(ctx, record, assessment)
	}
	if err != nil {
		return err
	}

	metrics.ClaimsAssessed.WithLabelValues(string(assessment.Status)).Inc()
	f.publishAssessed(ctx, record, assessment.Status)
	return nil
}

// pend persists the pending record and asks the customer for the missing
// items. Dispatch failure after a successful persist is reported as a
// failure for this claim, but the record stays pending.
func (f *FulfillmentService) pend(ctx context.Context, record *domain.EmailRecord, assessment *domain.Assessment) error {
	if _, err := f.store.Create(ctx, f.buildRecord(record, domain.StatusPending, assessment.MissingItems, nil)); err != nil {
		return fmt.Errorf("failed to persist pending fulfillment for claim %s: %w", record.ClaimID, err)
	}

	subject, body := f.templates.PendingNotice(record.ClaimID, assessment.SatisfiedItems, assessment.MissingItems)
	if err := f.notifier.SendMail(ctx, record.Sender, subject, body); err != nil {
		return fmt.Errorf("pending fulfillment persisted but notification failed for claim %s: %w", record.ClaimID, err)
	}

	log.WithFields(log.Fields{
		"claimID": record.ClaimID,
		"missing": assessment.MissingItems,
	}).Info("Fulfillment pending, email sent requesting missing information")
	return nil
}

// complete archives the claim material, persists the completed record and
// cleans up the local spool. Archival failure degrades durability but never
// blocks completion: the record is persisted without refs and the local
// files, now the only copy, are kept.
func (f *FulfillmentService) complete(ctx context.Context, record *domain.EmailRecord, assessment *domain.Assessment) error {
	archive, err := f.archive(ctx, record)
	if err != nil {
		log.WithError(err).WithField("claimID", record.ClaimID).Error("Archive upload failed, saving fulfillment without refs")
		archive = nil
	}

	if _, err := f.store.Create(ctx, f.buildRecord(record, domain.StatusCompleted, "", archive)); err != nil {
		return fmt.Errorf("failed to persist completed fulfillment for claim %s: %w", record.ClaimID, err)
	}

	if archive != nil {
		removed, failed := removeLocalAttachments(record.AttachmentPaths)
		removeClaimDirIfEmpty(record.AttachmentPaths)
		log.WithFields(log.Fields{
			"claimID": record.ClaimID,
			"removed": removed,
			"failed":  failed,
		}).Info("Local claim files cleaned up after archive")
	}

	log.WithField("claimID", record.ClaimID).Info("Fulfillment completed")
	return nil
}

// archive uploads the mail content as one blob and every local attachment as
// one blob each, all tagged with claim metadata.
func (f *FulfillmentService) archive(ctx context.Context, record *domain.EmailRecord) (*domain.ArchiveResult, error) {
	mailDoc, err := json.MarshalIndent(map[string]any{
		"claim_id":         record.ClaimID,
		"sender_email":     record.Sender,
		"subject":          record.Subject,
		"content":          record.Body,
		"attachment_count": record.AttachmentCount,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode mail content: %w", err)
	}

	mailRef, err := f.artifacts.Put(ctx, mailDoc, record.ClaimID+"_mail_content.json", domain.ArtifactMetadata{
		ClaimID:   record.ClaimID,
		UserEmail: record.Sender,
		Kind:      domain.ArtifactKindMailContent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to archive mail content: %w", err)
	}

	result := &domain.ArchiveResult{
		MailContentRef: mailRef,
		UploadedAt:     time.Now(),
	}

	for _, path := range record.AttachmentPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warnf("Attachment not found, skipping archive: %s", filepath.Base(path))
				continue
			}
			return nil, fmt.Errorf("failed to read attachment %s: %w", filepath.Base(path), err)
		}

		ref, err := f.artifacts.Put(ctx, data, filepath.Base(path), domain.ArtifactMetadata{
			ClaimID:   record.ClaimID,
			UserEmail: record.Sender,
			Kind:      domain.ArtifactKindAttachment,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to archive attachment %s: %w", filepath.Base(path), err)
		}

		result.Attachments = append(result.Attachments, domain.ArchivedFile{
			Ref:      ref,
			Filename: filepath.Base(path),
			Size:     int64(len(data)),
		})
	}

	return result, nil
}

func (f *FulfillmentService) buildRecord(record *domain.EmailRecord, status domain.FulfillmentStatus, missing string, archive *domain.ArchiveResult) *domain.FulfillmentRecord {
	content := fmt.Sprintf("Subject: %s\nContent: %s", record.Subject, record.Body)
	if len(content) > mailContentLimit {
		cut := mailContentLimit
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut]
	}

	out := &domain.FulfillmentRecord{
		UserMail:        record.Sender,
		ClaimID:         record.ClaimID,
		MailContent:     content,
		AttachmentCount: record.AttachmentCount,
		Status:          status,
		MissingItems:    missing,
	}

	if archive != nil {
		ref := archive.MailContentRef
		out.MailContentRef = &ref
		for _, att := range archive.Attachments {
			out.AttachmentRefs = append(out.AttachmentRefs, att.Ref)
		}
		uploaded := archive.UploadedAt
		out.ArchivedAt = &uploaded
	}

	return out
}

func (f *FulfillmentService) publishAssessed(ctx context.Context, record *domain.EmailRecord, status domain.FulfillmentStatus) {
	message := &domain.ClaimAssessedMessage{
		ClaimID:    record.ClaimID,
		UserMail:   record.Sender,
		Status:     status,
		AssessedAt: time.Now(),
	}
	if err := f.events.PublishClaimAssessed(ctx, message); err != nil {
		log.WithError(err).WithField("claimID", record.ClaimID).Warn("Failed to publish claim assessed event")
	}
}

func buildAssessmentPrompt(record *domain.EmailRecord) string {
	return fmt.Sprintf(`Please assess if this insurance claim email contains all required information for fulfillment.

Required Information:
%s

Email Details:
- From: %s
- Subject: %s
- Content: %s
- Attachments: %d files

Instructions:
1. Check if ALL required information is provided
2. If all requirements are met, respond with: FULFILLMENT_STATUS: COMPLETED
3. If any requirements are missing, respond with:
   FULFILLMENT_STATUS: PENDING
   MISSING_ITEMS:
   - List each missing item`,
		defaultRequirements, record.Sender, record.Subject, record.Body, record.AttachmentCount)
}
