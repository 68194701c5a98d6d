package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(teams []Team) []TeamName {
	out := make([]TeamName, len(teams))
	for i, t := range teams {
		out[i] = t.Name
	}
	return out
}

func applyAll(t *testing.T, matches ...Match) State {
	t.Helper()
	s := NewState()
	for _, m := range matches {
		var err error
		s, err = ApplyMatch(s, m)
		require.NoError(t, err)
	}
	return s
}

func TestParseColumn(t *testing.T) {
	c, err := ParseColumn("")
	require.NoError(t, err)
	assert.Equal(t, ColumnID, c)

	for _, col := range Columns {
		c, err := ParseColumn(string(col))
		require.NoError(t, err)
		assert.Equal(t, col, c)
	}

	_, err = ParseColumn("elo")
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, 163.0, NameKey("AB"))
	assert.Equal(t, 0.0, NameKey(""))
	// Characters outside the BMP count once, by their first UTF-16 code unit.
	assert.Equal(t, 110714.0, NameKey("😀"))
	assert.Equal(t, 27872.5, NameKey("a😀"))
}

func TestStandings(t *testing.T) {
	// Inter: 7 points, Milan: 1 point, Roma: 0 points.
	s := applyAll(t,
		Match{TeamA: "inter", TeamB: "roma", AGoals: 2, BGoals: 0},
		Match{TeamA: "roma", TeamB: "inter", AGoals: 1, BGoals: 3},
		Match{TeamA: "inter", TeamB: "milan", AGoals: 1, BGoals: 1},
	)

	t.Run("every column has a key", func(t *testing.T) {
		assert.Len(t, Columns, 10)
		for _, col := range Columns {
			teams, err := Standings(s, col)
			require.NoError(t, err, col)
			assert.ElementsMatch(t, s.Teams, teams, col)
		}
	})

	tests := []struct {
		column Column
		want   []TeamName
	}{
		{ColumnID, []TeamName{TeamRoma, TeamMilan, TeamInter}},
		{ColumnName, []TeamName{TeamMilan, TeamRoma, TeamInter}},
		{ColumnScore, []TeamName{TeamInter, TeamMilan, TeamRoma}},
		{ColumnPlayed, []TeamName{TeamInter, TeamRoma, TeamMilan}},
		{ColumnWon, []TeamName{TeamInter, TeamRoma, TeamMilan}},
		{ColumnDrawn, []TeamName{TeamMilan, TeamInter, TeamRoma}},
		{ColumnLost, []TeamName{TeamRoma, TeamMilan, TeamInter}},
		{ColumnGoalsScored, []TeamName{TeamInter, TeamRoma, TeamMilan}},
		{ColumnGoalsReceived, []TeamName{TeamRoma, TeamInter, TeamMilan}},
		{ColumnDiff, []TeamName{TeamInter, TeamMilan, TeamRoma}},
	}
	for _, tt := range tests {
		t.Run(string(tt.column), func(t *testing.T) {
			teams, err := Standings(s, tt.column)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(teams))
		})
	}

	t.Run("unknown column", func(t *testing.T) {
		_, err := Standings(s, "elo")
		require.ErrorIs(t, err, ErrUnknownColumn)
	})

	t.Run("does not reorder the state", func(t *testing.T) {
		_, err := Standings(s, ColumnScore)
		require.NoError(t, err)
		assert.Equal(t, []TeamName{TeamRoma, TeamMilan, TeamInter}, names(s.Teams))
	})
}
