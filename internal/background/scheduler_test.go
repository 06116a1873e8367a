package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func startScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s := NewScheduler(SchedulerConfig{WorkerCount: 2, QueueSize: 4})
	s.Start(context.Background())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func isPending(s *Scheduler, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[name]
	return ok
}

func TestEnqueueRequiresStart(t *testing.T) {
	s := NewScheduler(SchedulerConfig{})
	err := s.Enqueue(Job{Name: "x", Run: func(context.Context) error { return nil }})
	if !errors.Is(err, ErrSchedulerNotStarted) {
		t.Fatalf("expected ErrSchedulerNotStarted, got %v", err)
	}
}

func TestEnqueueValidatesJob(t *testing.T) {
	s := startScheduler(t)

	tests := []struct {
		name string
		job  Job
	}{
		{"nameless", Job{Run: func(context.Context) error { return nil }}},
		{"no runner", Job{Name: "no-runner"}},
	}
	for _, tt := range tests {
		if err := s.Enqueue(tt.job); err == nil {
			t.Fatalf("%s: expected an error", tt.name)
		}
	}
}

func TestEnqueueRetriesFailures(t *testing.T) {
	s := startScheduler(t)

	var calls atomic.Int32
	job := Job{
		Name: "flaky",
		Run: func(context.Context) error {
			if calls.Add(1) < 3 {
				return errors.New("temporary")
			}
			return nil
		},
		Retries: 3,
		Backoff: time.Millisecond,
	}

	if err := s.Enqueue(job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 3 && !isPending(s, "flaky") })
}

func TestEnqueueGivesUpAfterRetries(t *testing.T) {
	s := startScheduler(t)

	var calls atomic.Int32
	job := Job{Name: "broken", Retries: 1, Run: func(context.Context) error {
		calls.Add(1)
		return errors.New("always")
	}}

	if err := s.Enqueue(job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() == 2 && !isPending(s, "broken") })

	time.Sleep(20 * time.Millisecond)
	if calls.Load() != 2 {
		t.Fatalf("expected two attempts, got %d", calls.Load())
	}
}

func TestEnqueueRejectsPendingDuplicates(t *testing.T) {
	s := startScheduler(t)

	release := make(chan struct{})
	job := Job{Name: "slow", Run: func(context.Context) error {
		<-release
		return nil
	}}

	if err := s.Enqueue(job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if err := s.Enqueue(job); !errors.Is(err, ErrJobPending) {
		t.Fatalf("expected ErrJobPending, got %v", err)
	}

	close(release)
	waitFor(t, func() bool { return !isPending(s, "slow") })

	if err := s.Enqueue(job); err != nil {
		t.Fatalf("settled job should be accepted again: %v", err)
	}
}

func TestEveryRepeats(t *testing.T) {
	s := startScheduler(t)

	var calls atomic.Int32
	job := Job{Name: "tick", Run: func(context.Context) error {
		calls.Add(1)
		return nil
	}}

	if err := s.Every(job, 10*time.Millisecond); err != nil {
		t.Fatalf("every: %v", err)
	}
	waitFor(t, func() bool { return calls.Load() >= 3 })

	if err := s.Every(job, 0); err == nil {
		t.Fatalf("expected an error for a zero interval")
	}
}

func TestPanickingJobDoesNotKillWorker(t *testing.T) {
	s := startScheduler(t)

	if err := s.Enqueue(Job{Name: "boom", Run: func(context.Context) error { panic("boom") }}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	done := make(chan struct{})
	if err := s.Enqueue(Job{Name: "after", Run: func(context.Context) error {
		close(done)
		return nil
	}}); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("worker did not survive a panicking job")
	}
	waitFor(t, func() bool { return !isPending(s, "boom") })
}

func TestShutdownStopsScheduling(t *testing.T) {
	s := NewScheduler(SchedulerConfig{WorkerCount: 1})
	s.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	err := s.Enqueue(Job{Name: "late", Run: func(context.Context) error { return nil }})
	if !errors.Is(err, ErrSchedulerStopped) {
		t.Fatalf("expected ErrSchedulerStopped, got %v", err)
	}
}

type fakeLibrary struct {
	warmed    atomic.Int32
	reloaded  atomic.Int32
	refreshed atomic.Int32
}

func (f *fakeLibrary) WarmLibrary(context.Context) error {
	f.warmed.Add(1)
	return nil
}

func (f *fakeLibrary) ReloadPresets(context.Context) error {
	f.reloaded.Add(1)
	return nil
}

func (f *fakeLibrary) RefreshKits(context.Context) error {
	f.refreshed.Add(1)
	return nil
}

func TestTemplateJobs(t *testing.T) {
	s := startScheduler(t)
	lib := &fakeLibrary{}

	warm := WarmTemplateLibraryJob(lib)
	if warm.Name != JobWarmTemplateLibrary || warm.Retries == 0 {
		t.Fatalf("unexpected warm job: %+v", warm)
	}
	for _, job := range []Job{warm, ReloadPresetsJob(lib), RefreshKitsJob(lib)} {
		if err := s.Enqueue(job); err != nil {
			t.Fatalf("enqueue %s: %v", job.Name, err)
		}
	}

	waitFor(t, func() bool {
		return lib.warmed.Load() == 1 && lib.reloaded.Load() == 1 && lib.refreshed.Load() == 1
	})
}
