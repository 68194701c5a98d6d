package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/selector"
)

func printStatus(w io.Writer, status selector.Status) {
	if status.Selected == nil {
		fmt.Fprintln(w, "Nothing selected")
		return
	}
	fmt.Fprintf(w, "%s (%s), display %s\n", status.Selected.Name, status.Selected.Attribute, status.Phase)
}

func printHistory(w io.Writer, history []league.Match) {
	if len(history) == 0 {
		fmt.Fprintln(w, "No matches recorded yet")
		return
	}
	for _, m := range history {
		fmt.Fprintf(w, "%s-%s %d-%d\n", m.TeamA, m.TeamB, m.AGoals, m.BGoals)
	}
}

func printStandings(w io.Writer, teams []league.Team) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "No.\tName\tPlayed\tWon\tDrawn\tLost\tGF\tGA\tGD\tPoints")
	for _, t := range teams {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			t.ID, t.Name, t.MatchesPlayed, t.Won, t.Drawn, t.Lost,
			t.GoalsScored, t.GoalsReceived, t.GoalDifference(), t.Points)
	}
	return tw.Flush()
}

func printSummary(w io.Writer, s league.Summary) {
	for _, side := range []league.SideSummary{s.A, s.B} {
		fmt.Fprintf(w, "%s: %s, %d points, goal difference %+d\n", side.Team, side.Outcome, side.Points, side.GoalDifference)
	}
}
