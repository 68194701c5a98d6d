package league

import (
	"errors"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/calcio/internal/metrics"
)

// store holds the league state in memory. The state itself is an immutable value;
// every accepted match swaps in the value returned by ApplyMatch.
type store struct {
	mu      sync.RWMutex
	state   State
	metrics metrics.Metrics
}

// New creates a Tracker with a fresh league.
func New(m metrics.Metrics) Tracker {
	return &store{
		state:   NewState(),
		metrics: m,
	}
}

// Submit validates the form and, when it is valid, records the match. The
// normalized match is returned on success; otherwise the field errors are.
func (s *store) Submit(form Form) (Match, FieldErrors) {
	if fe := Validate(form); fe.Any() {
		log.Debug("Rejected match submission", "team_a", form.TeamA, "team_b", form.TeamB, "errors", fe)
		s.metrics.IncSubmissionsRejected()
		return Match{}, fe
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ApplyMatch(s.state, form.Match())
	if err != nil {
		// Validate and ApplyMatch share the same resolution rules, so this only
		// happens if they drift apart.
		log.Error("Failed to apply validated match", "error", err)
		s.metrics.IncSubmissionsRejected()
		return Match{}, fieldErrorsFor(err)
	}
	s.state = next
	s.metrics.IncMatchesRecorded()

	recorded := next.History[len(next.History)-1]
	log.Info("Recorded match", "team_a", recorded.TeamA, "team_b", recorded.TeamB, "a_goals", recorded.AGoals, "b_goals", recorded.BGoals)
	return recorded, FieldErrors{}
}

func fieldErrorsFor(err error) FieldErrors {
	switch {
	case errors.Is(err, ErrDuplicateTeam):
		return FieldErrors{TeamA: ErrDuplicateTeam.Error(), TeamB: ErrDuplicateTeam.Error()}
	default:
		return FieldErrors{TeamA: ErrInvalidTeam.Error(), TeamB: ErrInvalidTeam.Error()}
	}
}

// State returns a copy of the current league state.
func (s *store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// History returns the recorded matches, oldest first.
func (s *store) History() []Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.state.History)
}

// Standings returns the teams ordered by the given column.
func (s *store) Standings(column Column) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Standings(s.state, column)
}

// LastResult summarizes the most recent match, if any.
func (s *store) LastResult() (Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.state.History) == 0 {
		return Summary{}, false
	}
	return Summarize(s.state.History[len(s.state.History)-1]), true
}

// Clear resets the league to its initial state.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = NewState()
	log.Info("League cleared")
}
