package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"coverly.com/claimflow/internal/core/port"
	"coverly.com/claimflow/internal/metrics"
	"coverly.com/claimflow/internal/queue"
)

type drainer interface {
	Drain(ctx context.Context) int
}

// Monitor owns the long-running loop: it runs one ingestion cycle followed by
// one queue drain at every poll tick, and sweeps orphaned claim directories
// out of the spool on a slower schedule.
type Monitor struct {
	ingestion     port.IngestionService
	processor     drainer
	queue         *queue.Queue
	spoolDir      string
	interval      time.Duration
	sweepInterval time.Duration
	sweepMaxAge   time.Duration

	pollMu sync.Mutex

	mu       sync.Mutex
	lastPoll time.Time
}

func NewMonitor(
	ingestion port.IngestionService,
	processor drainer,
	q *queue.Queue,
	spoolDir string,
	interval, sweepInterval, sweepMaxAge time.Duration,
) *Monitor {
	return &Monitor{
		ingestion:     ingestion,
		processor:     processor,
		queue:         q,
		spoolDir:      spoolDir,
		interval:      interval,
		sweepInterval: sweepInterval,
		sweepMaxAge:   sweepMaxAge,
	}
}

// Run blocks until the context is cancelled. The first poll happens
// immediately so a restart does not wait a full interval to catch up.
func (m *Monitor) Run(ctx context.Context) {
	log.WithFields(log.Fields{
		"pollInterval":  m.interval,
		"sweepInterval": m.sweepInterval,
	}).Info("Claim monitor started")

	m.RunOnce(ctx)

	poll := time.NewTicker(m.interval)
	defer poll.Stop()
	sweep := time.NewTicker(m.sweepInterval)
	defer sweep.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Claim monitor stopping")
			return
		case <-poll.C:
			m.RunOnce(ctx)
		case <-sweep.C:
			m.Sweep()
		}
	}
}

// RunOnce executes a single poll cycle and drains whatever it enqueued.
// Cycles never overlap: a trigger arriving while one is in flight is
// dropped, so the cursor only ever advances under a single reader and the
// mailbox session sees one caller at a time.
func (m *Monitor) RunOnce(ctx context.Context) {
	if !m.pollMu.TryLock() {
		log.Info("Poll cycle already in flight, dropping trigger")
		return
	}
	defer m.pollMu.Unlock()

	result, err := m.ingestion.RunCycle(ctx)
	if err != nil {
		log.WithError(err).Error("Poll cycle failed")
	} else {
		if result.Enqueued > 0 || m.queue.Len() > 0 {
			m.processor.Drain(ctx)
		}

		now := time.Now()
		m.mu.Lock()
		m.lastPoll = now
		m.mu.Unlock()
		metrics.LastPollTimestamp.Set(float64(now.Unix()))
	}

	metrics.QueueDepth.Set(float64(m.queue.Len()))
}

// Sweep removes claim directories in the spool older than the configured
// age. These are left behind when a process dies between spooling and
// completion; anything younger may still be in flight.
func (m *Monitor) Sweep() {
	cutoff := time.Now().Add(-m.sweepMaxAge)

	entries, err := os.ReadDir(m.spoolDir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("Spool sweep could not read directory")
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "CLAIM_") {
			continue
		}

		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}

		path := filepath.Join(m.spoolDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.WithError(err).WithField("dir", entry.Name()).Warn("Failed to remove stale claim directory")
			continue
		}
		removed++
	}

	if removed > 0 {
		log.WithField("removed", removed).Info("Spool sweep removed stale claim directories")
	}
}

// LastPoll reports when the most recent successful poll cycle finished. It
// stays put while the mailbox is unreachable so liveness reflects the outage.
func (m *Monitor) LastPoll() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastPoll
}
