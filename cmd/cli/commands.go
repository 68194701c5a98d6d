package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/selector"
	"github.com/spf13/cobra"
)

var sortColumn string

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(deselectCmd)
	rootCmd.AddCommand(selectionCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(clearCmd)

	standingsCmd.Flags().StringVar(&sortColumn, "sort", string(league.ColumnID), "Column to order the table by")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <club>",
	Short: "Select a club and play its chant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var status selector.Status
		if err := newClient(host).post("/api/selector/select", map[string]string{"name": args[0]}, &status, http.StatusOK); err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), status)
		return nil
	},
}

var deselectCmd = &cobra.Command{
	Use:   "deselect",
	Short: "Clear the selected club",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status selector.Status
		if err := newClient(host).post("/api/selector/deselect", nil, &status, http.StatusOK); err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), status)
		return nil
	},
}

var selectionCmd = &cobra.Command{
	Use:   "selection",
	Short: "Show the selected club and its display phase",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status selector.Status
		if err := newClient(host).get("/api/selector", &status); err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), status)
		return nil
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <team-a> <team-b> <a-goals> <b-goals>",
	Short: "Record a match result",
	Long: `Record a match result. Team names may be any part of a club name that
identifies exactly one club, e.g. "milan" or "ter".`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := league.Form{TeamA: args[0], TeamB: args[1], AGoals: args[2], BGoals: args[3]}
		match, err := newClient(host).record(form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %d-%d %s\n", match.TeamA, match.AGoals, match.BGoals, match.TeamB)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded matches, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var history []league.Match
		if err := newClient(host).get("/api/league/matches", &history); err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), history)
		return nil
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the league table",
	RunE: func(cmd *cobra.Command, args []string) error {
		column, err := league.ParseColumn(sortColumn)
		if err != nil {
			return err
		}
		var teams []league.Team
		if err := newClient(host).get("/api/league/standings?sort="+string(column), &teams); err != nil {
			return err
		}
		return printStandings(cmd.OutOrStdout(), teams)
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the result of the last recorded match",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, ok, err := newClient(host).lastResult()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No matches recorded yet")
			return nil
		}
		printSummary(cmd.OutOrStdout(), summary)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Reset the league and the selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/clear")
	},
}

func performGetRequest(endpoint string) error {
	return performRequest(http.MethodGet, endpoint)
}

func performRequest(method, endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
