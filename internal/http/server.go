package http

import (
	"html/template"
	"net/http"

	"github.com/mauv0809/calcio/internal/config"
	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/metrics"
	"github.com/mauv0809/calcio/internal/selector"
)

func NewServer(tracker league.Tracker, widget *selector.Widget, cues *CueBoard, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Tracker:        tracker,
		Selector:       widget,
		Cues:           cues,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
		page:           template.Must(template.ParseFS(templates, "templates/page.html.tmpl")),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.Cfg.AssetsDir))))
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("POST /clear", Chain(s.ClearHandler(), paramsMiddleware))

	s.Router.Handle("GET /{$}", Chain(s.PageHandler(), paramsMiddleware))
	s.Router.Handle("POST /selector/select", Chain(s.SelectFormHandler(), paramsMiddleware))
	s.Router.Handle("POST /selector/deselect", Chain(s.DeselectFormHandler(), paramsMiddleware))
	s.Router.Handle("POST /league/matches", Chain(s.SubmitFormHandler(), paramsMiddleware))

	s.Router.Handle("GET /api/selector", Chain(s.SelectorStatusHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/selector/select", Chain(s.SelectHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/selector/deselect", Chain(s.DeselectHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/league/matches", Chain(s.HistoryHandler(), paramsMiddleware))
	s.Router.Handle("POST /api/league/matches", Chain(s.SubmitMatchHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/league/standings", Chain(s.StandingsHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/league/last", Chain(s.LastResultHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/league/sanitize", Chain(s.SanitizeHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/league/resolve", Chain(s.ResolveHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
