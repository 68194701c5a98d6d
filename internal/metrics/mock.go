package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	matchesRecorded     int
	submissionsRejected int
	selections          int
	deselections        int
	playbacksStarted    int
	playbacksFailed     int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncMatchesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesRecorded++
}

func (m *Mock) IncSubmissionsRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissionsRejected++
}

func (m *Mock) IncSelections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selections++
}

func (m *Mock) IncDeselections() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deselections++
}

func (m *Mock) IncPlaybacksStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playbacksStarted++
}

func (m *Mock) IncPlaybacksFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playbacksFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// MatchesRecorded returns the number of times IncMatchesRecorded was called.
func (m *Mock) MatchesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesRecorded
}

// SubmissionsRejected returns the number of times IncSubmissionsRejected was called.
func (m *Mock) SubmissionsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.submissionsRejected
}

// Selections returns the number of times IncSelections was called.
func (m *Mock) Selections() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selections
}

// Deselections returns the number of times IncDeselections was called.
func (m *Mock) Deselections() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deselections
}

// PlaybacksStarted returns the number of times IncPlaybacksStarted was called.
func (m *Mock) PlaybacksStarted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playbacksStarted
}

// PlaybacksFailed returns the number of times IncPlaybacksFailed was called.
func (m *Mock) PlaybacksFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playbacksFailed
}
