package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncMatchesRecorded()
	IncSubmissionsRejected()
	IncSelections()
	IncDeselections()
	IncPlaybacksStarted()
	IncPlaybacksFailed()
	SetStartupTime(duration float64)
}
