package http

import (
	"fmt"
	"net/http"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loggerFromContext(r).Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ClearHandler resets the league and the selection.
func (s *Server) ClearHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loggerFromContext(r).Info("Received request to clear state")
		s.Tracker.Clear()
		s.Selector.Deselect()
		s.Cues.Take()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "State cleared!")
	}
}
