package league

import "errors"

var (
	// ErrInvalidTeam is returned when a name does not resolve to exactly one club.
	ErrInvalidTeam = errors.New("not a valid team")
	// ErrDuplicateTeam is returned when both sides of a match resolve to the same club.
	ErrDuplicateTeam = errors.New("same team")
	// ErrUnknownColumn is returned for a standings column that does not exist.
	ErrUnknownColumn = errors.New("unknown standings column")
)
