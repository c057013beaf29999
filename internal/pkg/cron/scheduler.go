package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JobFunc is a unit of recurring background work. Implementations must
// watch the context and return promptly once it is cancelled.
type JobFunc func(ctx context.Context) error

type job struct {
	name  string
	every time.Duration
	run   JobFunc
}

// Scheduler drives the server's background jobs, currently the nightly
// absentee sweep. Each registered job ticks on its own interval in its
// own goroutine until Stop cancels them all.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []job
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers fn to run every interval once Start is called.
// Registrations after Start are ignored.
func (s *Scheduler) AddJob(name string, every time.Duration, fn JobFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		slog.Warn("Cron: Registration after start ignored", "job", name)
		return
	}

	s.jobs = append(s.jobs, job{name: name, every: every, run: fn})
	slog.Info("Cron: Job registered", "job", name, "every", every)
}

// Start launches one ticker goroutine per registered job. Each job also
// runs once right away so a server restarted late in the day still
// catches up on work its schedule would otherwise have missed.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, jb := range s.jobs {
		s.wg.Add(1)
		go s.loop(jb)
	}

	slog.Info("Cron: Scheduler started", "jobs", len(s.jobs))
}

// Stop cancels all running jobs and waits for them to finish their
// current invocation.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron: Scheduler stopped")
}

func (s *Scheduler) loop(jb job) {
	defer s.wg.Done()

	ticker := time.NewTicker(jb.every)
	defer ticker.Stop()

	s.invoke(jb)

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.invoke(jb)
		}
	}
}

func (s *Scheduler) invoke(jb job) {
	start := time.Now()
	if err := jb.run(s.ctx); err != nil {
		slog.Error("Cron: Job failed", "job", jb.name, "error", err, "took", time.Since(start))
		return
	}
	slog.Debug("Cron: Job finished", "job", jb.name, "took", time.Since(start))
}

// RunOnce invokes every registered job a single time with the given
// context, independent of the tickers. Tests use it to exercise jobs
// without waiting out an interval.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	jobs := make([]job, len(s.jobs))
	copy(jobs, s.jobs)
	s.mu.Unlock()

	for _, jb := range jobs {
		if err := jb.run(ctx); err != nil {
			slog.Error("Cron: Job failed", "job", jb.name, "error", err)
		}
	}
}
