package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/core/port"
	"coverly.com/claimflow/internal/metrics"
	"coverly.com/claimflow/internal/queue"
)

// IngestionService owns the mailbox cursor and the fetch/extract/classify
// stage of the pipeline. One RunCycle fetches every message the cursor has
// not seen, classifies each, and enqueues the claim-relevant ones.
type IngestionService struct {
	mailbox    port.Mailbox
	cursors    port.CursorStorage
	classifier port.ClassifierService
	events     port.EventPublisher
	queue      *queue.Queue
	spoolDir   string
}

func NewIngestionService(
	mailbox port.Mailbox,
	cursors port.CursorStorage,
	classifier port.ClassifierService,
	events port.EventPublisher,
	q *queue.Queue,
	spoolDir string,
) *IngestionService {
	return &IngestionService{
		mailbox:    mailbox,
		cursors:    cursors,
		classifier: classifier,
		events:     events,
		queue:      q,
		spoolDir:   spoolDir,
	}
}

// RunCycle performs one poll: read the live count, compute the delta against
// the stored cursor, fetch the new range, and advance the cursor only after
// the fetch batch has completed. A crash mid-fetch therefore retries the
// whole range next cycle instead of silently skipping mail.
func (s *IngestionService) RunCycle(ctx context.Context) (domain.CycleResult, error) {
	current, err := s.mailbox.Count(ctx)
	if err != nil {
		// Unreachable mailbox means zero delta this cycle, never a fabricated count.
		return domain.CycleResult{}, fmt.Errorf("failed to read mailbox count: %w", err)
	}

	cursor, err := s.cursors.Latest(ctx)
	if err != nil {
		return domain.CycleResult{}, fmt.Errorf("failed to load mail cursor: %w", err)
	}

	if cursor == nil {
		// First-ever run: baseline the mailbox without processing the backlog.
		if err := s.cursors.Append(ctx, &domain.MailCursor{SeenCount: current, PolledAt: time.Now()}); err != nil {
			return domain.CycleResult{}, fmt.Errorf("failed to persist bootstrap cursor: %w", err)
		}
		log.WithField("mailCount", current).Info("First run detected, initialized cursor without processing existing emails")
		return domain.CycleResult{CurrentCount: current, Bootstrapped: true}, nil
	}

	if current <= cursor.SeenCount {
		if current < cursor.SeenCount {
			log.WithFields(log.Fields{
				"stored":  cursor.SeenCount,
				"current": current,
			}).Warn("Mailbox count went backwards, cursor left untouched")
		}
		return domain.CycleResult{CurrentCount: current}, nil
	}

	result := domain.CycleResult{CurrentCount: current}

	// Oldest new messages first, so customers who waited longer are assessed first.
	for seq := cursor.SeenCount + 1; seq <= current; seq++ {
		m, err := s.mailbox.Fetch(ctx, uint32(seq))
		if err != nil {
			log.WithError(err).Errorf("Failed to fetch email %d, skipping", seq)
			continue
		}

		record := s.buildRecord(m)

		classification := s.classifier.Classify(ctx, record)
		record.Classification = &classification

		if classification.IsRelevant {
			s.queue.Push(record)
			result.Enqueued++
			metrics.EmailsIngested.WithLabelValues("enqueued").Inc()
			log.WithFields(log.Fields{
				"sequence":   seq,
				"claimID":    record.ClaimID,
				"category":   classification.Category,
				"confidence": classification.Confidence,
			}).Info("Email enqueued for claim processing")
		} else {
			result.Filtered++
			metrics.EmailsIngested.WithLabelValues("filtered").Inc()
			log.WithFields(log.Fields{
				"sequence":  seq,
				"reasoning": classification.Reasoning,
			}).Info("Email filtered out")
			removeLocalAttachments(record.AttachmentPaths)
			removeClaimDirIfEmpty(record.AttachmentPaths)
		}
	}

	if err := s.cursors.Append(ctx, &domain.MailCursor{SeenCount: current, PolledAt: time.Now()}); err != nil {
		return result, fmt.Errorf("failed to advance mail cursor: %w", err)
	}

	s.publishBatchSummary(ctx, result)

	log.WithFields(log.Fields{
		"enqueued": result.Enqueued,
		"filtered": result.Filtered,
	}).Info("Email filtering summary")

	return result, nil
}

// buildRecord assigns a fresh claim ID, spools attachments under the
// per-claim directory and assembles the queue payload.
func (s *IngestionService) buildRecord(m *domain.InboundMail) *domain.EmailRecord {
	claimID := newClaimID()
	paths := s.spoolAttachments(claimID, m.Attachments)

	return &domain.EmailRecord{
		SequenceID:      m.Sequence,
		Sender:          m.Sender,
		Subject:         m.Subject,
		Body:            m.Body,
		ClaimID:         claimID,
		AttachmentCount: len(paths),
		AttachmentPaths: paths,
	}
}

// spoolAttachments writes each attachment under <spool>/<claimID>/, with a
// millisecond timestamp prefix to keep colliding filenames apart. A failed
// write drops that attachment only.
func (s *IngestionService) spoolAttachments(claimID string, attachments []domain.Attachment) []string {
	if len(attachments) == 0 {
		return nil
	}

	claimDir := filepath.Join(s.spoolDir, claimID)
	if err := os.MkdirAll(claimDir, 0o755); err != nil {
		log.WithError(err).Errorf("Failed to create claim directory %s", claimDir)
		return nil
	}

	var paths []string
	for _, att := range attachments {
		name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(att.Filename))
		path := filepath.Join(claimDir, name)
		if err := os.WriteFile(path, att.Data, 0o644); err != nil {
			log.WithError(err).Errorf("Failed to save attachment %s", att.Filename)
			continue
		}
		paths = append(paths, path)
	}

	return paths
}

func (s *IngestionService) publishBatchSummary(ctx context.Context, result domain.CycleResult) {
	if result.Enqueued+result.Filtered == 0 {
		return
	}
	message := &domain.ClaimBatchIngestedMessage{
		BatchID:    uuid.New(),
		Enqueued:   result.Enqueued,
		Filtered:   result.Filtered,
		MailCount:  result.CurrentCount,
		IngestedAt: time.Now(),
	}
	if err := s.events.PublishClaimBatchIngested(ctx, message); err != nil {
		log.WithError(err).Warn("Failed to publish batch ingested event")
	}
}

// newClaimID returns a short correlation token in the CLAIM_XXXXXXXX form.
// It is scoped to a processing window, not globally unique.
func newClaimID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "CLAIM_" + strings.ToUpper(hex[:8])
}
