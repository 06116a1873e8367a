package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"glowfolio-backend/pkg/logger"
)

type SchedulerConfig struct {
	WorkerCount int
	QueueSize   int
}

// Job is a named unit of background work. A failed run is retried up to
// Retries more times, waiting Backoff between attempts.
type Job struct {
	Name    string
	Run     func(ctx context.Context) error
	Timeout time.Duration
	Retries int
	Backoff time.Duration
}

var (
	ErrSchedulerNotStarted = errors.New("scheduler not started")
	ErrJobPending          = errors.New("job already pending")
	ErrSchedulerStopped    = errors.New("scheduler stopped")
)

// Scheduler runs jobs on a fixed worker pool. Each job name holds at most one
// slot: it is taken when the job is queued and released once the job has
// succeeded, run out of retries or been canceled.
type Scheduler struct {
	config SchedulerConfig
	queue  chan attempt

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	pending map[string]struct{}

	wg sync.WaitGroup
}

type attempt struct {
	job Job
	n   int
}

var (
	metricsOnce     sync.Once
	jobRuns         *prometheus.CounterVec
	jobDuration     *prometheus.HistogramVec
	jobLastSuccess  *prometheus.GaugeVec
	jobQueueBacklog prometheus.Gauge
)

func initMetrics() {
	metricsOnce.Do(func() {
		jobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "glowfolio",
			Subsystem: "background",
			Name:      "job_runs_total",
			Help:      "Background job attempts by outcome",
		}, []string{"job", "status"})

		jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "glowfolio",
			Subsystem: "background",
			Name:      "job_duration_seconds",
			Help:      "Duration of background job attempts",
			Buckets:   prometheus.DefBuckets,
		}, []string{"job"})

		jobLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "glowfolio",
			Subsystem: "background",
			Name:      "job_last_success_timestamp",
			Help:      "Unix time of the last successful run",
		}, []string{"job"})

		jobQueueBacklog = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "glowfolio",
			Subsystem: "background",
			Name:      "pending_jobs",
			Help:      "Jobs queued, running or waiting to retry",
		})
	})
}

func NewScheduler(cfg SchedulerConfig) *Scheduler {
	initMetrics()

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 32
	}

	return &Scheduler{
		config:  cfg,
		queue:   make(chan attempt, cfg.QueueSize),
		pending: make(map[string]struct{}),
	}
}

// Start launches the workers. Calling it twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return
	}
	s.ctx, s.cancel = context.WithCancel(ctx)

	for i := 0; i < s.config.WorkerCount; i++ {
		s.wg.Add(1)
		go s.work()
	}
}

func (s *Scheduler) work() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		case a := <-s.queue:
			s.handle(a)
		}
	}
}

func (s *Scheduler) handle(a attempt) {
	err := s.run(a)
	switch {
	case err == nil:
		logger.Info("Background job completed", map[string]interface{}{"job": a.job.Name, "attempt": a.n})
	case errors.Is(err, context.Canceled):
		logger.Warn("Background job canceled", map[string]interface{}{"job": a.job.Name, "attempt": a.n})
	case a.n <= a.job.Retries:
		s.retry(a)
		return
	default:
		logger.Error(err, "Background job gave up", map[string]interface{}{"job": a.job.Name, "attempts": a.n})
	}
	s.release(a.job.Name)
}

// run executes one attempt. Panics are reported as errors.
func (s *Scheduler) run(a attempt) (err error) {
	start := time.Now()
	status := "success"

	ctx := s.ctx
	if a.job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.job.Timeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		switch {
		case err == nil:
			jobLastSuccess.WithLabelValues(a.job.Name).SetToCurrentTime()
		case errors.Is(err, context.Canceled):
			status = "canceled"
		default:
			status = "failure"
			logger.Error(err, "Background job failed", map[string]interface{}{"job": a.job.Name, "attempt": a.n})
		}
		jobRuns.WithLabelValues(a.job.Name, status).Inc()
		jobDuration.WithLabelValues(a.job.Name).Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return a.job.Run(ctx)
}

// retry requeues a after its backoff without holding a worker.
func (s *Scheduler) retry(a attempt) {
	next := attempt{job: a.job, n: a.n + 1}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if a.job.Backoff > 0 {
			timer := time.NewTimer(a.job.Backoff)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-s.ctx.Done():
				s.release(a.job.Name)
				return
			}
		}
		if !s.push(next) {
			s.release(a.job.Name)
		}
	}()
}

func (s *Scheduler) push(a attempt) bool {
	select {
	case <-s.ctx.Done():
		return false
	case s.queue <- a:
		return true
	}
}

func (s *Scheduler) release(name string) {
	s.mu.Lock()
	delete(s.pending, name)
	jobQueueBacklog.Set(float64(len(s.pending)))
	s.mu.Unlock()
}

// Enqueue queues job unless a run of the same name is still pending.
func (s *Scheduler) Enqueue(job Job) error {
	if job.Name == "" {
		return errors.New("job name is required")
	}
	if job.Run == nil {
		return errors.New("job runner is required")
	}

	s.mu.Lock()
	if s.ctx == nil {
		s.mu.Unlock()
		return ErrSchedulerNotStarted
	}
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return ErrSchedulerStopped
	}
	if _, ok := s.pending[job.Name]; ok {
		s.mu.Unlock()
		return ErrJobPending
	}
	s.pending[job.Name] = struct{}{}
	jobQueueBacklog.Set(float64(len(s.pending)))
	s.mu.Unlock()

	if !s.push(attempt{job: job, n: 1}) {
		s.release(job.Name)
		return ErrSchedulerStopped
	}
	return nil
}

// Every queues job now and on each interval tick until shutdown. Ticks that
// find the previous run still pending are skipped.
func (s *Scheduler) Every(job Job, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("interval must be positive")
	}
	if err := s.Enqueue(job); err != nil && !errors.Is(err, ErrJobPending) {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				switch err := s.Enqueue(job); {
				case err == nil, errors.Is(err, ErrJobPending):
				case errors.Is(err, ErrSchedulerStopped):
					return
				default:
					logger.Error(err, "Failed to queue periodic job", map[string]interface{}{"job": job.Name})
				}
			}
		}
	}()
	return nil
}

// Shutdown cancels running jobs and waits for workers, tickers and pending
// retries to exit, or for ctx to expire.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
