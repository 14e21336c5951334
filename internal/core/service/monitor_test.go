package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"coverly.com/claimflow/internal/core/domain"
	"coverly.com/claimflow/internal/queue"
	"coverly.com/claimflow/mocks"
)

type countingDrainer struct {
	calls int
}

func (d *countingDrainer) Drain(ctx context.Context) int {
	d.calls++
	return 0
}

type MonitorSuite struct {
	suite.Suite
	ingestion *mocks.IngestionService
	drainer   *countingDrainer
	queue     *queue.Queue
	spoolDir  string
	monitor   *Monitor
}

func TestMonitor(t *testing.T) {
	suite.Run(t, new(MonitorSuite))
}

func (suite *MonitorSuite) SetupTest() {
	suite.ingestion = &mocks.IngestionService{}
	suite.drainer = &countingDrainer{}
	suite.queue = queue.New()
	suite.spoolDir = suite.T().TempDir()
	suite.monitor = NewMonitor(
		suite.ingestion, suite.drainer, suite.queue, suite.spoolDir,
		time.Minute, time.Hour, 24*time.Hour,
	)
}

func (suite *MonitorSuite) TearDownTest() {
	suite.ingestion.AssertExpectations(suite.T())
}

func (suite *MonitorSuite) TestRunOnce_DrainsAfterEnqueue() {
	ctx := context.Background()

	suite.ingestion.EXPECT().RunCycle(ctx).Return(domain.CycleResult{Enqueued: 2}, nil)

	suite.monitor.RunOnce(ctx)

	assert.Equal(suite.T(), 1, suite.drainer.calls)
	assert.False(suite.T(), suite.monitor.LastPoll().IsZero())
}

func (suite *MonitorSuite) TestRunOnce_NothingEnqueuedSkipsDrain() {
	ctx := context.Background()

	suite.ingestion.EXPECT().RunCycle(ctx).Return(domain.CycleResult{}, nil)

	suite.monitor.RunOnce(ctx)

	assert.Zero(suite.T(), suite.drainer.calls)
}

func (suite *MonitorSuite) TestRunOnce_LeftoverQueueStillDrained() {
	ctx := context.Background()
	suite.queue.Push(&domain.EmailRecord{ClaimID: "CLAIM_1A2B3C4D"})

	suite.ingestion.EXPECT().RunCycle(ctx).Return(domain.CycleResult{}, nil)

	suite.monitor.RunOnce(ctx)

	assert.Equal(suite.T(), 1, suite.drainer.calls)
}

func (suite *MonitorSuite) TestRunOnce_CycleErrorLeavesLastPollUnchanged() {
	ctx := context.Background()

	suite.ingestion.EXPECT().RunCycle(ctx).Return(domain.CycleResult{}, errors.New("mailbox down"))

	suite.monitor.RunOnce(ctx)

	assert.Zero(suite.T(), suite.drainer.calls)
	assert.True(suite.T(), suite.monitor.LastPoll().IsZero())
}

func (suite *MonitorSuite) TestRunOnce_OverlappingTriggerDropped() {
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	suite.ingestion.EXPECT().RunCycle(ctx).Run(func(ctx context.Context) {
		close(entered)
		<-release
	}).Return(domain.CycleResult{Enqueued: 1}, nil).Once()

	done := make(chan struct{})
	go func() {
		suite.monitor.RunOnce(ctx)
		close(done)
	}()

	<-entered
	suite.monitor.RunOnce(ctx)
	close(release)
	<-done

	suite.ingestion.AssertNumberOfCalls(suite.T(), "RunCycle", 1)
	assert.Equal(suite.T(), 1, suite.drainer.calls)
}

func (suite *MonitorSuite) TestSweep_RemovesOnlyStaleClaimDirs() {
	stale := filepath.Join(suite.spoolDir, "CLAIM_AAAAAAAA")
	fresh := filepath.Join(suite.spoolDir, "CLAIM_BBBBBBBB")
	other := filepath.Join(suite.spoolDir, "not_a_claim")
	for _, dir := range []string{stale, fresh, other} {
		require.NoError(suite.T(), os.MkdirAll(dir, 0o755))
	}

	old := time.Now().Add(-48 * time.Hour)
	require.NoError(suite.T(), os.Chtimes(stale, old, old))
	require.NoError(suite.T(), os.Chtimes(other, old, old))

	suite.monitor.Sweep()

	_, err := os.Stat(stale)
	assert.True(suite.T(), os.IsNotExist(err))
	_, err = os.Stat(fresh)
	assert.NoError(suite.T(), err)
	_, err = os.Stat(other)
	assert.NoError(suite.T(), err)
}

func (suite *MonitorSuite) TestSweep_MissingSpoolDirIsNoop() {
	monitor := NewMonitor(
		suite.ingestion, suite.drainer, suite.queue,
		filepath.Join(suite.spoolDir, "does_not_exist"),
		time.Minute, time.Hour, 24*time.Hour,
	)

	monitor.Sweep()
}
