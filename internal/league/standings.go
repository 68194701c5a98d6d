package league

import (
	"fmt"
	"unicode/utf16"

	"github.com/mauv0809/calcio/internal/ordering"
)

var columnKeys = map[Column]func(Team) float64{
	ColumnID:            func(t Team) float64 { return float64(t.ID) },
	ColumnName:          func(t Team) float64 { return NameKey(string(t.Name)) },
	ColumnPlayed:        func(t Team) float64 { return -float64(t.MatchesPlayed) },
	ColumnWon:           func(t Team) float64 { return -float64(t.Won) },
	ColumnDrawn:         func(t Team) float64 { return -float64(t.Drawn) },
	ColumnLost:          func(t Team) float64 { return -float64(t.Lost) },
	ColumnGoalsScored:   func(t Team) float64 { return -float64(t.GoalsScored) },
	ColumnGoalsReceived: func(t Team) float64 { return -float64(t.GoalsReceived) },
	ColumnDiff:          func(t Team) float64 { return float64(t.GoalsReceived) - float64(t.GoalsScored) },
	ColumnScore:         func(t Team) float64 { return -float64(t.Points) },
}

// ParseColumn validates a column name. An empty name selects ColumnID.
func ParseColumn(raw string) (Column, error) {
	if raw == "" {
		return ColumnID, nil
	}
	c := Column(raw)
	if _, ok := columnKeys[c]; !ok {
		return "", fmt.Errorf("%q: %w", raw, ErrUnknownColumn)
	}
	return c, nil
}

// NameKey derives the numeric sort key used for the name column: the sum over the
// characters of 2*code/(position+1)^2, where code is the first UTF-16 code unit of
// the character and position counts characters, not code units. The resulting
// order is stable across runs but not alphabetical.
func NameKey(name string) float64 {
	var key float64
	for i, r := range []rune(name) {
		pos := float64(i + 1)
		key += 2 * float64(utf16.Encode([]rune{r})[0]) / (pos * pos)
	}
	return key
}

// Standings returns the teams of state ordered by column.
func Standings(state State, column Column) ([]Team, error) {
	key, ok := columnKeys[column]
	if !ok {
		return nil, fmt.Errorf("%q: %w", column, ErrUnknownColumn)
	}
	return ordering.Order(state.Teams, key), nil
}
