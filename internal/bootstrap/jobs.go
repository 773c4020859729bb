package bootstrap

import (
	"log/slog"
	"time"

	"github.com/osse101/Scoreline_Go/internal/config"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
	"github.com/osse101/Scoreline_Go/internal/server"
	"github.com/osse101/Scoreline_Go/internal/worker"
)

// ScheduleJobs registers the periodic scoring, leaderboard and event log
// retention jobs. A zero interval in config leaves that job off.
func ScheduleJobs(cfg *config.Config, scheduler *worker.Scheduler, svc server.Services) error {
	jobs := []struct {
		interval time.Duration
		job      worker.Job
	}{
		{cfg.AutoScoreInterval, worker.NewAutoScoreJob(svc.Scoring)},
		{cfg.LeaderboardRecomputeInterval, worker.NewLeaderboardRecomputeJob(svc.Leaderboard)},
		{cfg.EventLogCleanupInterval, eventlog.NewCleanupJob(svc.EventLog, cfg.EventLogRetention)},
	}

	for _, j := range jobs {
		if err := scheduler.Schedule(j.interval, j.job); err != nil {
			return err
		}
	}

	slog.Info(LogMsgJobsScheduled,
		"auto_score_interval", cfg.AutoScoreInterval,
		"leaderboard_recompute_interval", cfg.LeaderboardRecomputeInterval,
		"event_log_cleanup_interval", cfg.EventLogCleanupInterval)
	return nil
}
