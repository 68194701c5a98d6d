package league

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTeam(t *testing.T) {
	tests := []struct {
		input string
		want  TeamName
		err   error
	}{
		{input: "ro", want: TeamRoma},
		{input: "AS Roma", want: TeamRoma},
		{input: "MILAN", want: TeamMilan},
		{input: "in", want: TeamInter},
		{input: "fc inter", want: TeamInter},
		{input: "a", err: ErrInvalidTeam},
		{input: "", err: ErrInvalidTeam},
		{input: "juventus", err: ErrInvalidTeam},
		{input: "roma ", err: ErrInvalidTeam},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ResolveTeam(tt.input)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalize(t *testing.T) {
	assert.Equal(t, "AC Milan", Canonicalize("mil"))
	assert.Equal(t, "a", Canonicalize("a"))
}

func TestValidate(t *testing.T) {
	t.Run("two distinct teams are valid", func(t *testing.T) {
		fe := Validate(Form{TeamA: "ro", TeamB: "inter"})
		assert.False(t, fe.Any())
	})

	t.Run("unresolved field reports invalid team", func(t *testing.T) {
		fe := Validate(Form{TeamA: "a", TeamB: "inter"})
		assert.True(t, fe.Any())
		assert.Equal(t, "not a valid team", fe.TeamA)
		assert.Empty(t, fe.TeamB)
	})

	t.Run("both fields unresolved", func(t *testing.T) {
		fe := Validate(Form{})
		assert.Equal(t, FieldErrors{TeamA: "not a valid team", TeamB: "not a valid team"}, fe)
	})

	t.Run("same team reports on both fields", func(t *testing.T) {
		fe := Validate(Form{TeamA: "roma", TeamB: "AS"})
		assert.Equal(t, FieldErrors{TeamA: "same team", TeamB: "same team"}, fe)
	})
}

func TestFormMatch(t *testing.T) {
	m := Form{TeamA: "ro", TeamB: "mil", AGoals: "-2.7", BGoals: ""}.Match()
	assert.Equal(t, Match{TeamA: "AS Roma", TeamB: "AC Milan", AGoals: 2, BGoals: 0}, m)
}

func TestSanitizeKeystroke(t *testing.T) {
	tests := map[string]string{
		"":     "",
		"12":   "12",
		"-":    "",
		"-5":   "5",
		"5.":   "5",
		"5.3":  "5",
		"-5.3": "5.3",
		"5.-3": "5",
		"5-3":  "53",
		"--5":  "0",
	}
	for input, want := range tests {
		assert.Equal(t, want, SanitizeKeystroke(input), "input %q", input)
	}
}

func TestTypeGoals(t *testing.T) {
	assert.Equal(t, "53", TypeGoals("-5.3"))
	assert.Equal(t, "12", TypeGoals("12"))
	assert.Equal(t, "", TypeGoals("-."))
	assert.Equal(t, "105", TypeGoals("1.0-5"))
}

func TestSanitizeGoals(t *testing.T) {
	assert.Equal(t, "5", SanitizeGoals("-5.3"))
	assert.Equal(t, "0", SanitizeGoals("--7"))
	assert.Equal(t, "42", SanitizeGoals("42"))
}

func TestParseGoals(t *testing.T) {
	tests := map[string]uint{
		"":     0,
		"0":    0,
		"7":    7,
		"53":   53,
		"-5.3": 5,
		"1e2":  100,
		"abc":  0,

		"99999999999999999999": math.MaxUint,
		"1e30":                 math.MaxUint,
	}
	for input, want := range tests {
		assert.Equal(t, want, ParseGoals(input), "input %q", input)
	}
}
