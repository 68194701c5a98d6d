package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	MatchesRecorded     prometheus.Counter
	SubmissionsRejected prometheus.Counter
	Selections          prometheus.Counter
	Deselections        prometheus.Counter
	PlaybacksStarted    prometheus.Counter
	PlaybacksFailed     prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}
