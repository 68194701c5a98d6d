package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		MatchesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_matches_recorded_total",
			Help: "The total number of match results added to the league.",
		}),
		SubmissionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_submissions_rejected_total",
			Help: "The total number of match form submissions rejected by validation.",
		}),
		Selections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_selector_selections_total",
			Help: "The total number of team selections in the selector widget.",
		}),
		Deselections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_selector_deselections_total",
			Help: "The total number of deselections in the selector widget.",
		}),
		PlaybacksStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_selector_playbacks_started_total",
			Help: "The total number of sound playbacks started.",
		}),
		PlaybacksFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "calcio_selector_playbacks_failed_total",
			Help: "The total number of sound playbacks that failed.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "calcio_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.MatchesRecorded,
		s.SubmissionsRejected,
		s.Selections,
		s.Deselections,
		s.PlaybacksStarted,
		s.PlaybacksFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMatchesRecorded() {
	s.MatchesRecorded.Inc()
}

func (s *Service) IncSubmissionsRejected() {
	s.SubmissionsRejected.Inc()
}

func (s *Service) IncSelections() {
	s.Selections.Inc()
}

func (s *Service) IncDeselections() {
	s.Deselections.Inc()
}

func (s *Service) IncPlaybacksStarted() {
	s.PlaybacksStarted.Inc()
}

func (s *Service) IncPlaybacksFailed() {
	s.PlaybacksFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
