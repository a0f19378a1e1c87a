package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/IdleForge_Go/internal/worker"
)

// Enqueuer accepts jobs without blocking; *worker.Pool satisfies it
type Enqueuer interface {
	Enqueue(job worker.Job) bool
}

type entry struct {
	interval  time.Duration
	job       worker.Job
	immediate bool
}

// Scheduler enqueues jobs on fixed intervals
type Scheduler struct {
	pool     Enqueuer
	entries  []entry
	quit     chan struct{}
	wg       sync.WaitGroup
	started  bool
	mu       sync.Mutex
	stopOnce sync.Once
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule registers a job to run every interval once Start is called
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.add(entry{interval: interval, job: job})
}

// ScheduleImmediate is Schedule with one extra run at Start
func (s *Scheduler) ScheduleImmediate(interval time.Duration, job worker.Job) {
	s.add(entry{interval: interval, job: job, immediate: true})
}

func (s *Scheduler) add(e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if s.started {
		s.launch(e)
	}
}

// Start begins ticking every registered job
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.launch(e)
	}
}

func (s *Scheduler) launch(e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		if e.immediate {
			s.enqueue(e.job)
		}
		for {
			select {
			case <-ticker.C:
				s.enqueue(e.job)
			case <-s.quit:
				return
			}
		}
	}()
}

// enqueue skips the tick when the pool is saturated so the ticker never blocks
func (s *Scheduler) enqueue(job worker.Job) {
	if !s.pool.Enqueue(job) {
		slog.Default().Debug(LogMsgTickSkipped, "job", job.Name())
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
