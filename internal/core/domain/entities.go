package domain

import (
	"time"

	"github.com/google/uuid"
)

// FulfillmentStatus is the persisted state of a claim assessment.
type FulfillmentStatus string

const (
	StatusPending   FulfillmentStatus = "pending"
	StatusCompleted FulfillmentStatus = "completed"
	StatusFailed    FulfillmentStatus = "failed"
)

// MailCursor is the persisted bookmark of how many mailbox messages have been
// seen. Records are append-only; the latest one wins. A missing cursor means
// the process has never run against this mailbox.
type MailCursor struct {
	SeenCount int
	PolledAt  time.Time
	CreatedAt time.Time
}

// Attachment is an attachment payload as extracted from a fetched message,
// before it is spooled to the local claim directory.
type Attachment struct {
	Filename string
	Data     []byte
}

// InboundMail is one message as fetched and decoded from the mailbox.
type InboundMail struct {
	Sequence    uint32
	Sender      string
	Subject     string
	Body        string
	Attachments []Attachment
}

// ClassificationResult is the relevance judgment for one email. It lives only
// for the processing of that email and is never persisted.
type ClassificationResult struct {
	IsRelevant bool   `json:"is_insurance"`
	Confidence int    `json:"confidence"`
	Reasoning  string `json:"reasoning"`
	Category   string `json:"category"`
}

// EmailRecord is the queue payload handed from ingestion to processing. It is
// owned by the work queue until a consumer pops it, and is discarded after
// terminal handling.
type EmailRecord struct {
	SequenceID      uint32
	Sender          string
	Subject         string
	Body            string
	ClaimID         string
	AttachmentCount int
	AttachmentPaths []string
	Classification  *ClassificationResult
}

// PolicyHolder is the directory's view of a registered user.
type PolicyHolder struct {
	ID               string `json:"_id"`
	MailID           string `json:"mail_id"`
	Name             string `json:"name"`
	PolicyType       string `json:"policy_type"`
	PolicyIssuedDate string `json:"policy_issued_date"`
}

// Assessment is the parsed and reconciled outcome of one fulfillment
// assessment, before persistence.
type Assessment struct {
	Status         FulfillmentStatus
	MissingItems   string
	SatisfiedItems []string
}

// ArchivedFile describes one blob stored for a completed claim.
type ArchivedFile struct {
	Ref      uuid.UUID
	Filename string
	Size     int64
}

// ArchiveResult is produced once per completed claim and consumed to populate
// the fulfillment record's archive references and to drive local cleanup.
type ArchiveResult struct {
	MailContentRef uuid.UUID
	Attachments    []ArchivedFile
	UploadedAt     time.Time
}

// FulfillmentRecord is the persistent entity keyed by claim ID. Status moves
// pending->completed or pending->failed and is never re-opened once completed.
type FulfillmentRecord struct {
	ID              uuid.UUID
	UserMail        string
	ClaimID         string
	MailContent     string
	AttachmentCount int
	Status          FulfillmentStatus
	MissingItems    string
	MailContentRef  *uuid.UUID
	AttachmentRefs  []uuid.UUID
	ArchivedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ArtifactMetadata tags every archived blob with its claim context.
type ArtifactMetadata struct {
	ClaimID   string `json:"claim_id"`
	UserEmail string `json:"user_email"`
	Kind      string `json:"type"`
}

const (
	ArtifactKindMailContent = "mail_content"
	ArtifactKindAttachment  = "attachment"
)

// CycleResult summarizes one poll cycle of the ingestion pipeline.
type CycleResult struct {
	CurrentCount int
	Enqueued     int
	Filtered     int
	Bootstrapped bool
}
