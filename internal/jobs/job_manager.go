package jobs

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob *OrderStatsJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	counter OrderCounter,
	recorder OrderTotalsRecorder,
	statsInterval time.Duration,
	logger *logrus.Entry,
) *JobManager {
	return &JobManager{
		orderStatsJob: NewOrderStatsJob(counter, recorder, statsInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order statistics job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderStatsJob.Stop()
}
