// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are scheduled with github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderStatsJob counts active and canceled orders on a fixed interval
// ("@every 30s" unless configured otherwise) and hands the totals to the
// order metrics gauges.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(countHandler, orderMetrics, cfg.StatsInterval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and keeps the previous totals; the next tick tries again.
package jobs
