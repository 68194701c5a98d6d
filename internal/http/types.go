package http

import (
	"html/template"
	"net/http"

	"github.com/mauv0809/calcio/internal/config"
	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/metrics"
	"github.com/mauv0809/calcio/internal/selector"
)

type Server struct {
	Tracker        league.Tracker
	Selector       *selector.Widget
	Cues           *CueBoard
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
	page           *template.Template
}

// selectRequest is the body of an API selection.
type selectRequest struct {
	Name string `json:"name"`
}

// submitResponse is returned by the match submission endpoint. On success Match is
// set and Form holds the reset form; on rejection Errors is set.
type submitResponse struct {
	Match  *league.Match       `json:"match,omitempty"`
	Errors *league.FieldErrors `json:"errors,omitempty"`
	Form   league.Form         `json:"form"`
	DryRun bool                `json:"dry_run,omitempty"`
}

type valueResponse struct {
	Value string `json:"value"`
}

type nameResponse struct {
	Name  string `json:"name,omitempty"`
	Error string `json:"error,omitempty"`
}
