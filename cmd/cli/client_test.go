package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/calcio/internal/config"
	server "github.com/mauv0809/calcio/internal/http"
	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/metrics"
	"github.com/mauv0809/calcio/internal/selector"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestClient(t *testing.T) *client {
	t.Helper()

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	cues := server.NewCueBoard()
	widget := selector.New(selector.DefaultItems(), cues, selector.NewManualScheduler(), metricsSvc, selector.Options{})
	s := server.NewServer(league.New(metricsSvc), widget, cues, metricsSvc, metrics.NewMetricsHandler(reg), config.Config{AssetsDir: t.TempDir()})

	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return newClient(ts.URL + "/")
}

func TestClientRecord(t *testing.T) {
	c := setupTestClient(t)

	match, err := c.record(league.Form{TeamA: "milan", TeamB: "ter", AGoals: "2", BGoals: "2"})
	require.NoError(t, err)
	assert.Equal(t, league.Match{TeamA: "AC Milan", TeamB: "FC Inter", AGoals: 2, BGoals: 2}, match)

	_, err = c.record(league.Form{TeamA: "a", TeamB: "roma"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `team A "a": not a valid team`)
	assert.NotContains(t, err.Error(), "team B")

	var history []league.Match
	require.NoError(t, c.get("/api/league/matches", &history))
	assert.Equal(t, []league.Match{match}, history)
}

func TestClientLastResult(t *testing.T) {
	c := setupTestClient(t)

	_, ok, err := c.lastResult()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.record(league.Form{TeamA: "roma", TeamB: "inter", AGoals: "1", BGoals: "0"})
	require.NoError(t, err)

	summary, ok, err := c.lastResult()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, league.OutcomeVictory, summary.A.Outcome)
	assert.Equal(t, league.OutcomeLoss, summary.B.Outcome)
}

func TestClientSelector(t *testing.T) {
	c := setupTestClient(t)

	var status selector.Status
	require.NoError(t, c.post("/api/selector/select", map[string]string{"name": "fc inter"}, &status, http.StatusOK))
	require.NotNil(t, status.Selected)
	assert.Equal(t, "FC Inter", status.Selected.Name)

	err := c.post("/api/selector/select", map[string]string{"name": "Lazio"}, &status, http.StatusOK)
	var se *statusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.Code)
}

func TestClientStandings(t *testing.T) {
	c := setupTestClient(t)
	_, err := c.record(league.Form{TeamA: "inter", TeamB: "roma", AGoals: "3", BGoals: "1"})
	require.NoError(t, err)

	var teams []league.Team
	require.NoError(t, c.get("/api/league/standings?sort=score", &teams))
	require.Len(t, teams, 3)
	assert.Equal(t, league.TeamInter, teams[0].Name)

	var out bytes.Buffer
	require.NoError(t, printStandings(&out, teams))
	assert.Contains(t, out.String(), "FC Inter")
	assert.Contains(t, out.String(), "Points")
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, league.Summarize(league.Match{TeamA: "AS Roma", TeamB: "AC Milan", AGoals: 0, BGoals: 2}))

	assert.Equal(t, "AS Roma: Loss, 0 points, goal difference -2\nAC Milan: Victory, 3 points, goal difference +2\n", out.String())
}
