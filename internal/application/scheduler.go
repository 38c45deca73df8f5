package application

import (
	"context"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"

	"listingWatcherBot/internal/infrastructure/metrics"
)

// Cycle is one unit of scheduled work.
type Cycle interface {
	RunOnce(ctx context.Context) CycleReport
}

type SchedulerConfig struct {
	Interval time.Duration
	// Jitter is the upper bound of the uniform random delay added to Interval.
	Jitter time.Duration
}

// Scheduler runs cycles back to back with a jittered pause in between. Cycles
// never overlap.
type Scheduler struct {
	cycle   Cycle
	cfg     SchedulerConfig
	metrics metrics.Recorder
	log     zerolog.Logger

	// swapped in tests
	randN func(n int64) int64
	after func(d time.Duration) <-chan time.Time
}

func NewScheduler(cycle Cycle, cfg SchedulerConfig, recorder metrics.Recorder, log zerolog.Logger) *Scheduler {
	if recorder == nil {
		recorder = metrics.NewNopRecorder()
	}
	return &Scheduler{
		cycle:   cycle,
		cfg:     cfg,
		metrics: recorder,
		log:     log,
		randN:   rand.Int64N,
		after:   time.After,
	}
}

// Run starts a cycle immediately and repeats until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.log.Info().Msg("starting watch cycle")
		s.runSafely(ctx)

		if ctx.Err() != nil {
			s.log.Info().Msg("scheduler stopped")
			return
		}

		delay := s.NextDelay()
		s.log.Info().Dur("sleep", delay).Msg("watch cycle finished")

		select {
		case <-ctx.Done():
			s.log.Info().Msg("scheduler stopped")
			return
		case <-s.after(delay):
		}
	}
}

// NextDelay returns Interval plus a uniform draw from [0, Jitter].
func (s *Scheduler) NextDelay() time.Duration {
	if s.cfg.Jitter <= 0 {
		return s.cfg.Interval
	}
	return s.cfg.Interval + time.Duration(s.randN(int64(s.cfg.Jitter)+1))
}

func (s *Scheduler) runSafely(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.CyclePanicked()
			s.log.Error().
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("watch cycle panicked")
		}
	}()

	s.cycle.RunOnce(ctx)
}
