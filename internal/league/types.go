package league

// TeamName is the canonical name of one of the three competing clubs.
type TeamName string

const (
	TeamRoma  TeamName = "AS Roma"
	TeamMilan TeamName = "AC Milan"
	TeamInter TeamName = "FC Inter"
)

// KnownTeams lists the competing clubs in id order.
var KnownTeams = []TeamName{TeamRoma, TeamMilan, TeamInter}

// Team is the aggregate statistics record for one club.
type Team struct {
	ID            uint     `json:"id"`
	Name          TeamName `json:"name"`
	MatchesPlayed uint     `json:"matches_played"`
	Won           uint     `json:"won"`
	Drawn         uint     `json:"drawn"`
	Lost          uint     `json:"lost"`
	GoalsScored   uint     `json:"goals_scored"`
	GoalsReceived uint     `json:"goals_received"`
	Points        uint     `json:"points"`
}

// GoalDifference is scored minus received.
func (t Team) GoalDifference() int {
	return int(t.GoalsScored) - int(t.GoalsReceived)
}

// Match is one recorded result. Once in the history it is never changed.
type Match struct {
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
	AGoals uint   `json:"a_goals"`
	BGoals uint   `json:"b_goals"`
}

// State is the whole league: the match history and the three team records.
type State struct {
	History []Match `json:"history"`
	Teams   []Team  `json:"teams"`
}

// Outcome is the result of a match seen from one side.
type Outcome string

const (
	OutcomeVictory Outcome = "Victory"
	OutcomeDraw    Outcome = "Draw"
	OutcomeLoss    Outcome = "Loss"
)

// SideSummary describes how a match went for one of its teams.
type SideSummary struct {
	Team           string  `json:"team"`
	Outcome        Outcome `json:"outcome"`
	Points         uint    `json:"points"`
	GoalDifference int     `json:"goal_difference"`
}

// Summary is the per-side breakdown of a single match.
type Summary struct {
	A SideSummary `json:"a"`
	B SideSummary `json:"b"`
}

// Form holds the raw text of the match entry form.
type Form struct {
	TeamA  string `json:"team_a"`
	TeamB  string `json:"team_b"`
	AGoals string `json:"a_goals"`
	BGoals string `json:"b_goals"`
}

// FieldErrors carries the inline validation message for each team field.
// An empty string means the field is valid.
type FieldErrors struct {
	TeamA string `json:"team_a,omitempty"`
	TeamB string `json:"team_b,omitempty"`
}

// Any reports whether at least one field is invalid.
func (e FieldErrors) Any() bool {
	return e.TeamA != "" || e.TeamB != ""
}

// Column identifies a sortable standings column.
type Column string

const (
	ColumnID            Column = "id"
	ColumnName          Column = "name"
	ColumnPlayed        Column = "played"
	ColumnWon           Column = "won"
	ColumnDrawn         Column = "drawn"
	ColumnLost          Column = "lost"
	ColumnGoalsScored   Column = "goals_scored"
	ColumnGoalsReceived Column = "goals_received"
	ColumnDiff          Column = "diff"
	ColumnScore         Column = "score"
)

// Columns lists the standings columns in table order.
var Columns = []Column{
	ColumnID,
	ColumnName,
	ColumnPlayed,
	ColumnWon,
	ColumnDrawn,
	ColumnLost,
	ColumnGoalsScored,
	ColumnGoalsReceived,
	ColumnDiff,
	ColumnScore,
}
