package jobs

import (
	"context"
	"fmt"
	"time"

	"sales/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const DefaultStatsInterval = 30 * time.Second

type (
	// OrderCounter totals orders per status.
	OrderCounter interface {
		Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (queries.OrderStatusCounts, error)
	}

	// OrderTotalsRecorder receives the totals of each run.
	OrderTotalsRecorder interface {
		SetOrderTotals(active, canceled int64)
	}
)

// OrderStatsJob periodically counts active and canceled orders and publishes
// the totals to a recorder, normally the Prometheus order gauges.
type OrderStatsJob struct {
	counter  OrderCounter
	recorder OrderTotalsRecorder
	interval time.Duration
	cron     *cron.Cron
	logger   *logrus.Entry
}

// NewOrderStatsJob creates the job. A non-positive interval falls back to DefaultStatsInterval.
func NewOrderStatsJob(
	counter OrderCounter,
	recorder OrderTotalsRecorder,
	interval time.Duration,
	logger *logrus.Entry,
) *OrderStatsJob {
	if interval <= 0 {
		interval = DefaultStatsInterval
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &OrderStatsJob{
		counter:  counter,
		recorder: recorder,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.WithField("component", "order_stats_job"),
	}
}

// Start refreshes the totals once and then on every interval.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.interval)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.WithError(err).Error("Order statistics refresh failed")
		}
	})
	if err != nil {
		return err
	}

	if err := j.Run(context.Background()); err != nil {
		j.logger.WithError(err).Warn("Initial order statistics refresh failed")
	}

	j.cron.Start()
	j.logger.WithField("interval", j.interval.String()).Info("Order statistics job started")
	return nil
}

// Run performs one refresh. Totals are left untouched when counting fails.
func (j *OrderStatsJob) Run(ctx context.Context) error {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		return err
	}

	j.recorder.SetOrderTotals(counts.Active, counts.Canceled)
	j.logger.WithFields(logrus.Fields{
		"active":   counts.Active,
		"canceled": counts.Canceled,
	}).Debug("Order statistics refreshed")
	return nil
}

// Stop stops scheduling and waits for a running refresh to finish.
func (j *OrderStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Order statistics job stopped")
}
