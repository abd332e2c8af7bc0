package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a named function run on a fixed interval. Jobs that want a
// narrower window than their interval (the nightly derivation, say)
// gate on wall-clock time inside Run.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on their intervals until stopped.
type Scheduler struct {
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Run: run})
	slog.Info("Cron: job registered", "name", name, "interval", interval)
}

// Start launches one goroutine per registered job. Each job runs once
// immediately, then on every interval tick.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Cron: scheduler started", "jobs", len(s.jobs))
}

// Stop cancels the job context and waits for running jobs to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron: scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.execute(job)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(job)
		}
	}
}

// execute runs a job and logs the outcome; a job error never stops the
// schedule.
func (s *Scheduler) execute(job Job) {
	start := time.Now()
	if err := job.Run(s.ctx); err != nil {
		slog.Error("Cron: job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron: job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce executes every registered job once with the given context,
// bypassing the tickers. Used in tests.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Run(ctx); err != nil {
			slog.Error("Cron: job failed", "name", job.Name, "error", err)
		}
	}
}
