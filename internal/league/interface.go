package league

// Tracker defines the interface for recording matches and reading the league.
type Tracker interface {
	Submit(form Form) (Match, FieldErrors)
	State() State
	History() []Match
	Standings(column Column) ([]Team, error)
	LastResult() (Summary, bool)
	Clear()
}
