package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/suite"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/storage"
	"coverly.com/claimflow/test"
)

func TestArtifacts(t *testing.T) {
	suite.Run(t, new(ArtifactsSuite))
}

type ArtifactsSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	postgresDB       *sql.DB
	storage          *storage.ArtifactStorage
}

func (suite *ArtifactsSuite) SetupSuite() {
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

		suite.storage = storage.NewArtifactStorage(postgresDB)
	}
}

func (suite *ArtifactsSuite) SetupTest() {
	test.ExecFile(suite.T(), suite.postgresDB, "../sql/create_tables.sql")

	if suite.T().Failed() {
		suite.TearDownSuite()
		suite.T().FailNow()
	}
}

func (suite *ArtifactsSuite) TearDownSuite() {
	if suite.postgresDB != nil {
		_ = suite.postgresDB.Close()
	}
	if suite.dockerPool != nil {
		if suite.postgresResource != nil {
			_ = suite.dockerPool.Purge(suite.postgresResource)
		}
	}
}

func (suite *ArtifactsSuite) meta() domain.ArtifactMetadata {
	return domain.ArtifactMetadata{
		ClaimID:   "CLAIM_1A2B3C4D",
		UserEmail: "jane@example.com",
		Kind:      domain.ArtifactKindAttachment,
	}
}

func (suite *ArtifactsSuite) TestPutAndGet() {
	ctx := context.Background()

	ref, err := suite.storage.Put(ctx, []byte("jpegbytes"), "photo.jpg", suite.meta())
	suite.NoError(err)
	suite.NotEqual(uuid.Nil, ref)

	payload, err := suite.storage.Get(ctx, ref)
	suite.NoError(err)
	suite.Assert().Equal([]byte("jpegbytes"), payload)
}

func (suite *ArtifactsSuite) TestGet_UnknownRef() {
	ctx := context.Background()

	_, err := suite.storage.Get(ctx, uuid.New())

	suite.Error(err)
}

func (suite *ArtifactsSuite) TestDelete() {
	ctx := context.Background()

	ref, err := suite.storage.Put(ctx, []byte("pdfbytes"), "estimate.pdf", suite.meta())
	suite.Require().NoError(err)

	deleted, err := suite.storage.Delete(ctx, ref)
	suite.NoError(err)
	suite.True(deleted)

	deleted, err = suite.storage.Delete(ctx, ref)
	suite.NoError(err)
	suite.False(deleted)
}
