package assistant

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingJob struct {
	runs atomic.Int32
	ran  chan struct{}
}

func (j *countingJob) RunCycle(_ context.Context) {
	j.runs.Add(1)
	select {
	case j.ran <- struct{}{}:
	default:
	}
}

func TestSchedulerFiresAndStops(t *testing.T) {
	job := &countingJob{ran: make(chan struct{}, 1)}
	s := NewReviewScheduler(job, 5*time.Millisecond, testLogger())

	s.Start(context.Background())
	select {
	case <-job.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("review job never fired")
	}
	s.Stop()

	runsAtStop := job.runs.Load()
	time.Sleep(25 * time.Millisecond)
	if got := job.runs.Load(); got != runsAtStop {
		t.Errorf("job ran %d more times after Stop", got-runsAtStop)
	}
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	job := &countingJob{ran: make(chan struct{}, 1)}
	s := NewReviewScheduler(job, time.Hour, testLogger())

	s.Start(context.Background())
	s.Start(context.Background())
	s.Stop()
	s.Stop()
}

// Stop can win the race against the loop goroutine's startup; the loop
// must close the channel it was handed, not the field Stop already niled.
func TestSchedulerStopRightAfterStart(t *testing.T) {
	job := &countingJob{ran: make(chan struct{}, 1)}
	s := NewReviewScheduler(job, time.Hour, testLogger())

	for i := 0; i < 50; i++ {
		s.Start(context.Background())
		s.Stop()
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	s := NewReviewScheduler(&countingJob{ran: make(chan struct{}, 1)}, 0, testLogger())
	if s.interval != DefaultReviewInterval {
		t.Errorf("interval = %s, want %s", s.interval, DefaultReviewInterval)
	}
}
