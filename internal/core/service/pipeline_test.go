package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/queue"
	"coverly.com/claimflow/mocks"
)

// PipelineSuite runs the real services end to end with only the leaf ports
// mocked: one poll cycle followed by one drain, the way the monitor drives
// them in production.
type PipelineSuite struct {
	suite.Suite
	mailbox   *mocks.Mailbox
	cursors   *mocks.CursorStorage
	llm       *mocks.ReasoningClient
	directory *mocks.DirectoryClient
	notifier  *mocks.NotifierClient
	store     *mocks.FulfillmentStorage
	artifacts *mocks.ArtifactStore
	events    *mocks.EventPublisher
	queue     *queue.Queue
	ingestion *IngestionService
	processor *QueueProcessor
}

func TestPipeline(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (suite *PipelineSuite) SetupTest() {
	suite.mailbox = &mocks.Mailbox{}
	suite.cursors = &mocks.CursorStorage{}
	suite.llm = &mocks.ReasoningClient{}
	suite.directory = &mocks.DirectoryClient{}
	suite.notifier = &mocks.NotifierClient{}
	suite.store = &mocks.FulfillmentStorage{}
	suite.artifacts = &mocks.ArtifactStore{}
	suite.events = &mocks.EventPublisher{}
	suite.queue = queue.New()

	classifier := NewClassificationService(suite.llm)
	templates := NewTemplateSet(suite.T().TempDir())
	fulfillment := NewFulfillmentService(
		suite.llm, suite.store, suite.artifacts, suite.notifier, suite.events, templates,
	)
	suite.ingestion = NewIngestionService(
		suite.mailbox, suite.cursors, classifier, suite.events, suite.queue, suite.T().TempDir(),
	)
	suite.processor = NewQueueProcessor(
		suite.queue, suite.directory, suite.notifier, fulfillment, templates, 0,
	)
}

func (suite *PipelineSuite) TearDownTest() {
	suite.mailbox.AssertExpectations(suite.T())
	suite.cursors.AssertExpectations(suite.T())
	suite.llm.AssertExpectations(suite.T())
	suite.directory.AssertExpectations(suite.T())
	suite.notifier.AssertExpectations(suite.T())
	suite.store.AssertExpectations(suite.T())
	suite.artifacts.AssertExpectations(suite.T())
	suite.events.AssertExpectations(suite.T())
}

func classifyPrompt(prompt string) bool {
	return strings.Contains(prompt, "insurance email classifier")
}

func assessPrompt(prompt string) bool {
	return strings.HasPrefix(prompt, "Please assess")
}

func (suite *PipelineSuite) expectOneNewMail(m *domain.InboundMail) {
	ctx := context.Background()
	suite.mailbox.EXPECT().Count(ctx).Return(6, nil)
	suite.cursors.EXPECT().Latest(ctx).Return(&domain.MailCursor{SeenCount: 5}, nil)
	suite.mailbox.EXPECT().Fetch(ctx, uint32(6)).Return(m, nil)
	suite.cursors.EXPECT().Append(ctx, mock.Anything).Return(nil)
	suite.events.EXPECT().PublishClaimBatchIngested(ctx, mock.Anything).Return(nil)
}

func (suite *PipelineSuite) TestCompleteClaimEndsCompleted() {
	ctx := context.Background()
	suite.expectOneNewMail(&domain.InboundMail{
		Sequence: 6,
		Sender:   "jane@example.com",
		Subject:  "Insurance claim for car accident",
		Body:     "My insured car was hit. Repair estimate: $2500. Photos attached.",
		Attachments: []domain.Attachment{
			{Filename: "photo.jpg", Data: []byte("jpegbytes")},
		},
	})

	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(classifyPrompt)).
		Return(`{"is_insurance": true, "confidence": 95, "reasoning": "explicit claim", "category": "auto_claim"}`, nil)
	suite.directory.EXPECT().LookupUser(ctx, "jane@example.com").
		Return(&domain.PolicyHolder{MailID: "jane@example.com", Name: "Jane", PolicyType: "auto"}, nil)
	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(assessPrompt)).
		Return("FULFILLMENT_STATUS: COMPLETED", nil)
	suite.artifacts.EXPECT().Put(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.New(), nil).Twice()

	var persisted *domain.FulfillmentRecord
	suite.store.EXPECT().Create(ctx, mock.Anything).
		Run(func(ctx context.Context, r *domain.FulfillmentRecord) { persisted = r }).
		Return(uuid.New(), nil)
	suite.events.EXPECT().PublishClaimAssessed(ctx, mock.Anything).Return(nil)

	result, err := suite.ingestion.RunCycle(ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(1, result.Enqueued)

	suite.processor.Drain(ctx)

	suite.Require().NotNil(persisted)
	assert.Equal(suite.T(), domain.StatusCompleted, persisted.Status)
	assert.NotNil(suite.T(), persisted.MailContentRef)
	assert.Zero(suite.T(), suite.queue.Len())
}

func (suite *PipelineSuite) TestIncompleteClaimEndsPendingWithNotice() {
	ctx := context.Background()
	suite.expectOneNewMail(&domain.InboundMail{
		Sequence: 6,
		Sender:   "jane@example.com",
		Subject:  "Insurance claim",
		Body:     "Something happened to my insured property.",
	})

	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(classifyPrompt)).
		Return(`{"is_insurance": true, "confidence": 90, "reasoning": "claim", "category": "property_claim"}`, nil)
	suite.directory.EXPECT().LookupUser(ctx, "jane@example.com").
		Return(&domain.PolicyHolder{MailID: "jane@example.com"}, nil)
	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(assessPrompt)).
		Return("FULFILLMENT_STATUS: PENDING\nMISSING_ITEMS:\n- Claim amount\n- Supporting documents", nil)

	var persisted *domain.FulfillmentRecord
	suite.store.EXPECT().Create(ctx, mock.Anything).
		Run(func(ctx context.Context, r *domain.FulfillmentRecord) { persisted = r }).
		Return(uuid.New(), nil)
	suite.notifier.EXPECT().SendMail(ctx, "jane@example.com", mock.Anything, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "- Claim amount")
	})).Return(nil)
	suite.events.EXPECT().PublishClaimAssessed(ctx, mock.Anything).Return(nil)

	_, err := suite.ingestion.RunCycle(ctx)
	suite.Require().NoError(err)

	suite.processor.Drain(ctx)

	suite.Require().NotNil(persisted)
	assert.Equal(suite.T(), domain.StatusPending, persisted.Status)
}

func (suite *PipelineSuite) TestUnregisteredSenderRejected() {
	ctx := context.Background()
	suite.expectOneNewMail(&domain.InboundMail{
		Sequence: 6,
		Sender:   "stranger@example.com",
		Subject:  "Insurance claim",
		Body:     "I want to claim damage coverage on my policy.",
	})

	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(classifyPrompt)).
		Return(`{"is_insurance": true, "confidence": 90, "reasoning": "claim", "category": "claim"}`, nil)
	suite.directory.EXPECT().LookupUser(ctx, "stranger@example.com").Return(nil, nil)
	suite.notifier.EXPECT().SendMail(ctx, "stranger@example.com", mock.Anything, mock.Anything).Return(nil)

	_, err := suite.ingestion.RunCycle(ctx)
	suite.Require().NoError(err)

	suite.processor.Drain(ctx)

	suite.store.AssertNotCalled(suite.T(), "Create")
	assert.Zero(suite.T(), suite.queue.Len())
}

func (suite *PipelineSuite) TestIrrelevantMailNeverReachesProcessor() {
	ctx := context.Background()
	suite.expectOneNewMail(&domain.InboundMail{
		Sequence: 6,
		Sender:   "deals@shop.example",
		Subject:  "Huge sale",
		Body:     "Half price on everything this weekend only!",
	})

	suite.llm.EXPECT().Complete(ctx, mock.MatchedBy(classifyPrompt)).
		Return(`{"is_insurance": false, "confidence": 97, "reasoning": "marketing", "category": "spam"}`, nil)

	result, err := suite.ingestion.RunCycle(ctx)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 1, result.Filtered)

	processed := suite.processor.Drain(ctx)
	assert.Zero(suite.T(), processed)
	suite.directory.AssertNotCalled(suite.T(), "LookupUser")
}
