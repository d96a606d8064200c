package assistant

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultReviewInterval is how often the suggestion review sweep fires.
const DefaultReviewInterval = 10 * time.Minute

// cycleRunner lets tests substitute the review job.
type cycleRunner interface {
	RunCycle(ctx context.Context)
}

// ReviewScheduler owns the recurring review sweep. One background
// goroutine fires RunCycle on a fixed interval until Stop is called.
type ReviewScheduler struct {
	job      cycleRunner
	interval time.Duration
	logger   *log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewReviewScheduler(job cycleRunner, interval time.Duration, logger *log.Logger) *ReviewScheduler {
	if interval <= 0 {
		interval = DefaultReviewInterval
	}
	return &ReviewScheduler{
		job:      job,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the ticker goroutine. Calling Start twice is a no-op
// until Stop has run.
func (s *ReviewScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	// The loop gets its own copies; Stop nils the fields under the lock,
	// so the goroutine must never read them.
	go s.loop(ctx, s.done)
	s.logger.Printf("[SCHEDULER] review job started, interval=%s", s.interval)
}

func (s *ReviewScheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.job.RunCycle(ctx)
		}
	}
}

// Stop cancels the loop and waits for the in-flight cycle to finish.
func (s *ReviewScheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.logger.Printf("[SCHEDULER] review job stopped")
}
