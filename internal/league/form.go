package league

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ResolveTeam maps free text to a club by case-insensitive substring match.
// The text must match exactly one club; empty or ambiguous text is rejected.
func ResolveTeam(raw string) (TeamName, error) {
	needle := strings.ToLower(raw)

	var found []TeamName
	for _, name := range KnownTeams {
		if strings.Contains(strings.ToLower(string(name)), needle) {
			found = append(found, name)
		}
	}
	if len(found) != 1 {
		return "", ErrInvalidTeam
	}
	return found[0], nil
}

// Canonicalize returns the full club name for raw when it resolves, and raw
// unchanged when it does not. Used to complete a name field once it loses focus.
func Canonicalize(raw string) string {
	name, err := ResolveTeam(raw)
	if err != nil {
		return raw
	}
	return string(name)
}

// Validate checks both team fields of the form.
func Validate(form Form) FieldErrors {
	a, errA := ResolveTeam(form.TeamA)
	b, errB := ResolveTeam(form.TeamB)

	var fe FieldErrors
	if errA != nil {
		fe.TeamA = errA.Error()
	}
	if errB != nil {
		fe.TeamB = errB.Error()
	}
	if errA == nil && errB == nil && a == b {
		fe.TeamA = ErrDuplicateTeam.Error()
		fe.TeamB = ErrDuplicateTeam.Error()
	}
	return fe
}

// Match converts a form into a match. Callers validate first.
func (f Form) Match() Match {
	return Match{
		TeamA:  Canonicalize(f.TeamA),
		TeamB:  Canonicalize(f.TeamB),
		AGoals: ParseGoals(f.AGoals),
		BGoals: ParseGoals(f.BGoals),
	}
}

// SanitizeKeystroke cleans a goals field after a single edit. It removes whichever
// comes first of a decimal point (with everything after it) or one minus sign,
// then clamps a negative value to "0".
func SanitizeKeystroke(value string) string {
	dot := strings.IndexByte(value, '.')
	minus := strings.IndexByte(value, '-')

	switch {
	case dot >= 0 && (minus < 0 || dot < minus):
		value = value[:dot]
	case minus >= 0:
		value = value[:minus] + value[minus+1:]
	}

	if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil && f < 0 {
		return "0"
	}
	return value
}

// TypeGoals replays keys one at a time into an empty goals field, sanitizing after
// every keystroke, and returns what the field ends up holding. Typing "-5.3"
// leaves "53".
func TypeGoals(keys string) string {
	var value string
	for _, r := range keys {
		value = SanitizeKeystroke(value + string(r))
	}
	return value
}

// SanitizeGoals cleans a whole goals value until no sign or decimal part remains.
func SanitizeGoals(value string) string {
	for {
		next := SanitizeKeystroke(value)
		if next == value {
			return value
		}
		value = next
	}
}

// ParseGoals converts a goals field to a count. Empty or unreadable input counts as 0;
// values too large for a count are clamped to math.MaxUint.
func ParseGoals(value string) uint {
	value = strings.TrimSpace(SanitizeGoals(value))
	if value == "" {
		return 0
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err == nil {
		return uint(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxUint
	}
	// Number inputs also accept exponent notation such as "1e2".
	f, err := strconv.ParseFloat(value, 64)
	switch {
	case errors.Is(err, strconv.ErrRange) && f > 0:
		return math.MaxUint
	case err != nil || math.IsNaN(f) || f < 0:
		return 0
	case f >= math.MaxUint:
		return math.MaxUint
	}
	return uint(f)
}
