package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/osse101/Scoreline_Go/internal/logger"
)

// Job represents a task run on a fixed interval
type Job interface {
	Name() string
	Process(ctx context.Context) error
}

// Scheduler runs Jobs on gocron duration schedules. A job never overlaps
// itself: a tick that arrives while the previous run is still going is
// skipped.
type Scheduler struct {
	cron    gocron.Scheduler
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration

	mu      sync.Mutex
	stopped bool
}

// NewScheduler creates a stopped scheduler. timeout bounds each job run;
// zero means DefaultJobTimeout.
func NewScheduler(timeout time.Duration) (*Scheduler, error) {
	cron, err := gocron.NewScheduler(
		gocron.WithLogger(logger.FromContext(context.Background())),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCreateSchedulerFailed, err)
	}
	if timeout <= 0 {
		timeout = DefaultJobTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:    cron,
		ctx:     ctx,
		cancel:  cancel,
		timeout: timeout,
	}, nil
}

// Schedule registers job to run every interval. A non-positive interval
// disables the job.
func (s *Scheduler) Schedule(interval time.Duration, job Job) error {
	log := logger.FromContext(s.ctx)
	if interval <= 0 {
		log.Info(LogMsgJobDisabled, "job", job.Name())
		return nil
	}

	_, err := s.cron.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() { s.run(job) }),
		gocron.WithName(job.Name()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf(ErrMsgRegisterJobFailed, job.Name(), err)
	}

	log.Info(LogMsgJobScheduled, "job", job.Name(), "interval", interval)
	return nil
}

// run executes one tick; errors are logged, never returned to gocron
func (s *Scheduler) run(job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed, "job", job.Name(), "error", err)
	}
}

// Start begins firing scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.FromContext(s.ctx).Info(LogMsgSchedulerStarted, "jobs", len(s.cron.Jobs()))
}

// Shutdown cancels in-flight runs and waits for them to return, or for ctx
// to expire. Calling it twice is a no-op.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	log.Info(LogMsgSchedulerStopping)

	s.cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.cron.Shutdown()
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf(ErrMsgShutdownFailed, err)
		}
		log.Info(LogMsgSchedulerStopped)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgSchedulerStopTimeout)
		return ctx.Err()
	}
}
