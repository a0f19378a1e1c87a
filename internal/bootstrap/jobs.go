package bootstrap

import (
	"log/slog"

	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/scheduler"
	"github.com/osse101/IdleForge_Go/internal/worker"
)

// InitializeJobs creates the worker pool and a scheduler that tops up the
// bonus pool every econ.Bonus.Interval, starting with one run at Start.
// Neither is started here.
func InitializeJobs(cfg *config.Config, econ config.Economy, generator worker.BonusGenerator) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	sched := scheduler.New(pool)
	sched.ScheduleImmediate(econ.Bonus.Interval, worker.NewBonusGenerationJob(generator))
	slog.Info(LogMsgBonusJobScheduled, "interval", econ.Bonus.Interval.String())
	return pool, sched
}
