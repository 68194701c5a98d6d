package selector

import (
	"context"
	"sync"
	"time"
)

// ManualScheduler is a Scheduler for tests. Callbacks only run when Tick is called.
// It is safe for concurrent use.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []scheduled
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

// NewManualScheduler creates a scheduler with nothing pending.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, scheduled{delay: d, fn: fn})
}

// Tick runs every callback that was pending when it was called and returns how many
// ran. Callbacks scheduled while ticking wait for the next Tick.
func (s *ManualScheduler) Tick() int {
	s.mu.Lock()
	due := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, c := range due {
		c.fn()
	}
	return len(due)
}

// Pending returns the delays of the callbacks waiting to run.
func (s *ManualScheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	delays := make([]time.Duration, len(s.pending))
	for i, c := range s.pending {
		delays[i] = c.delay
	}
	return delays
}

// MockPlayer is a mock implementation of the Player interface for testing.
// It is safe for concurrent use.
type MockPlayer struct {
	mu sync.Mutex

	PlayFunc func(ctx context.Context, p Playback) error

	playCalls []Playback
}

// NewMockPlayer creates a new mock player.
func NewMockPlayer() *MockPlayer {
	return &MockPlayer{}
}

func (m *MockPlayer) Play(ctx context.Context, p Playback) error {
	m.mu.Lock()
	m.playCalls = append(m.playCalls, p)
	fn := m.PlayFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, p)
	}
	return nil
}

// PlayCalls returns the playbacks received so far.
func (m *MockPlayer) PlayCalls() []Playback {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]Playback, len(m.playCalls))
	copy(calls, m.playCalls)
	return calls
}
