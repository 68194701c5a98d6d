package league

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// NewState returns the initial league: no matches and three zeroed teams.
func NewState() State {
	teams := make([]Team, len(KnownTeams))
	for i, name := range KnownTeams {
		teams[i] = Team{ID: uint(i + 1), Name: name}
	}
	return State{Teams: teams}
}

// Clone returns a deep copy of the state. The copy shares no backing arrays with s.
func (s State) Clone() State {
	return State{
		History: slices.Clone(s.History),
		Teams:   slices.Clone(s.Teams),
	}
}

// Team returns the record for the given club.
func (s State) Team(name TeamName) (Team, bool) {
	i := s.teamIndex(name)
	if i < 0 {
		return Team{}, false
	}
	return s.Teams[i], true
}

func (s State) teamIndex(name TeamName) int {
	return slices.IndexFunc(s.Teams, func(t Team) bool { return t.Name == name })
}

// ApplyMatch records m and returns the resulting state. Both team names must
// resolve to distinct clubs; otherwise the prior state is returned with an error
// wrapping ErrInvalidTeam or ErrDuplicateTeam. The input state is never modified.
func ApplyMatch(state State, m Match) (State, error) {
	a, err := ResolveTeam(m.TeamA)
	if err != nil {
		return state, fmt.Errorf("team A %q: %w", m.TeamA, err)
	}
	b, err := ResolveTeam(m.TeamB)
	if err != nil {
		return state, fmt.Errorf("team B %q: %w", m.TeamB, err)
	}
	if a == b {
		return state, fmt.Errorf("%s against itself: %w", a, ErrDuplicateTeam)
	}

	next := state.Clone()
	ia, ib := next.teamIndex(a), next.teamIndex(b)
	if ia < 0 || ib < 0 {
		return state, fmt.Errorf("%s or %s missing from the table: %w", a, b, ErrInvalidTeam)
	}

	m.TeamA, m.TeamB = string(a), string(b)
	next.History = append(next.History, m)

	next.Teams[ia].record(m.AGoals, m.BGoals)
	next.Teams[ib].record(m.BGoals, m.AGoals)
	return next, nil
}

// record applies one match result to t from t's point of view.
func (t *Team) record(scored, received uint) {
	switch OutcomeFor(scored, received) {
	case OutcomeVictory:
		t.Won++
	case OutcomeDraw:
		t.Drawn++
	case OutcomeLoss:
		t.Lost++
	}
	t.Points += PointsFor(scored, received)
	t.MatchesPlayed++
	t.GoalsScored = addGoals(t.GoalsScored, scored)
	t.GoalsReceived = addGoals(t.GoalsReceived, received)
}

// addGoals adds two goal counts, saturating at math.MaxUint.
func addGoals(a, b uint) uint {
	sum, carry := bits.Add(a, b, 0)
	if carry != 0 {
		return math.MaxUint
	}
	return sum
}

// OutcomeFor returns the outcome for the side that scored own against other.
func OutcomeFor(own, other uint) Outcome {
	switch {
	case own == other:
		return OutcomeDraw
	case own > other:
		return OutcomeVictory
	default:
		return OutcomeLoss
	}
}

// PointsFor returns the league points earned by the side that scored own: 3, 1 or 0.
func PointsFor(own, other uint) uint {
	switch OutcomeFor(own, other) {
	case OutcomeVictory:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

// Summarize breaks a match down per side.
func Summarize(m Match) Summary {
	return Summary{
		A: SideSummary{
			Team:           m.TeamA,
			Outcome:        OutcomeFor(m.AGoals, m.BGoals),
			Points:         PointsFor(m.AGoals, m.BGoals),
			GoalDifference: int(m.AGoals) - int(m.BGoals),
		},
		B: SideSummary{
			Team:           m.TeamB,
			Outcome:        OutcomeFor(m.BGoals, m.AGoals),
			Points:         PointsFor(m.BGoals, m.AGoals),
			GoalDifference: int(m.BGoals) - int(m.AGoals),
		},
	}
}
