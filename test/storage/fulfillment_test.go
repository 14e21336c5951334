package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/storage"
	"coverly.com/claimflow/test"
)

func TestFulfillment(t *testing.T) {
	suite.Run(t, new(FulfillmentSuite))
}

type FulfillmentSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.FulfillmentStorage
	artifacts        *storage.ArtifactStorage
}

func (suite *FulfillmentSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Fatalf("Could not connect to docker: %s", err)
	}
	suite.dockerPool = pool
	db, port, postgresResource := test.SetupPostgresDB(suite.T(), pool)
	suite.postgresDB = db
	suite.postgresResource = postgresResource

	if !suite.T().Failed() {
		ctx := context.Background()
		postgresDB, err := storage.NewPostgresDB(ctx, test.PostgresHost, port, test.PostgresUser, test.PostgresPassword, test.PostgresDB)
		if err != nil {
			suite.T().Fatalf("Failed to connect to database: %v", err)
		}

		suite.storage = storage.NewFulfillmentStorage(postgresDB)
		suite.artifacts = storage.NewArtifactStorage(postgresDB)
	}
}

func (suite *FulfillmentSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *FulfillmentSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *FulfillmentSuite) pendingRecord(claimID string) *domain.FulfillmentRecord {
	return &domain.FulfillmentRecord{
		UserMail:        "jane@example.com",
		ClaimID:         claimID,
		MailContent:     "Subject: Accident\nContent: My car got hit.",
		AttachmentCount: 1,
		Status:          domain.StatusPending,
		MissingItems:    "- Claim amount",
	}
}

func (suite *FulfillmentSuite) TestCreateAndGetByClaimID() {
	ctx := context.Background()

	id, err := suite.storage.Create(ctx, suite.pendingRecord("CLAIM_1A2B3C4D"))
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, id)

	record, err := suite.storage.GetByClaimID(ctx, "CLAIM_1A2B3C4D")
	suite.NoError(err)
	suite.Require().NotNil(record)
	suite.Assert().Equal("jane@example.com", record.UserMail)
	suite.Assert().Equal(domain.StatusPending, record.Status)
	suite.Assert().Equal("- Claim amount", record.MissingItems)
	suite.Assert().Nil(record.MailContentRef)
}

func (suite *FulfillmentSuite) TestCreate_DuplicateClaimIDFails() {
	ctx := context.Background()

	_, err := suite.storage.Create(ctx, suite.pendingRecord("CLAIM_1A2B3C4D"))
	suite.NoError(err)

	_, err = suite.storage.Create(ctx, suite.pendingRecord("CLAIM_1A2B3C4D"))
	suite.Error(err)
}

func (suite *FulfillmentSuite) TestCreate_CompletedWithArchiveRefs() {
	ctx := context.Background()

	mailRef, err := suite.artifacts.Put(ctx, []byte(`{"claim_id": "CLAIM_1A2B3C4D"}`), "CLAIM_1A2B3C4D_mail_content.json", domain.ArtifactMetadata{
		ClaimID:   "CLAIM_1A2B3C4D",
		UserEmail: "jane@example.com",
		Kind:      domain.ArtifactKindMailContent,
	})
	suite.Require().NoError(err)

	attRef, err := suite.artifacts.Put(ctx, []byte("jpegbytes"), "photo.jpg", domain.ArtifactMetadata{
		ClaimID:   "CLAIM_1A2B3C4D",
		UserEmail: "jane@example.com",
		Kind:      domain.ArtifactKindAttachment,
	})
	suite.Require().NoError(err)

	archivedAt := time.Now()
	record := suite.pendingRecord("CLAIM_1A2B3C4D")
	record.Status = domain.StatusCompleted
	record.MissingItems = ""
	record.MailContentRef = &mailRef
	record.AttachmentRefs = []uuid.UUID{attRef}
	record.ArchivedAt = &archivedAt

	_, err = suite.storage.Create(ctx, record)
	suite.NoError(err)

	stored, err := suite.storage.GetByClaimID(ctx, "CLAIM_1A2B3C4D")
	suite.NoError(err)
	suite.Require().NotNil(stored.MailContentRef)
	suite.Assert().Equal(mailRef, *stored.MailContentRef)
	suite.Assert().Equal([]uuid.UUID{attRef}, stored.AttachmentRefs)
	suite.Require().NotNil(stored.ArchivedAt)
}

func (suite *FulfillmentSuite) TestUpdateStatus() {
	ctx := context.Background()

	_, err := suite.storage.Create(ctx, suite.pendingRecord("CLAIM_1A2B3C4D"))
	suite.NoError(err)

	err = suite.storage.UpdateStatus(ctx, "CLAIM_1A2B3C4D", domain.StatusCompleted)
	suite.NoError(err)

	record, err := suite.storage.GetByClaimID(ctx, "CLAIM_1A2B3C4D")
	suite.NoError(err)
	suite.Assert().Equal(domain.StatusCompleted, record.Status)
}
