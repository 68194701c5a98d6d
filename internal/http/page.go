package http

import (
	"bytes"
	"embed"
	"net/http"

	"github.com/mauv0809/calcio/internal/league"
	"github.com/mauv0809/calcio/internal/selector"
)

//go:embed templates
var templates embed.FS

var columnLabels = map[league.Column]string{
	league.ColumnID:            "No.",
	league.ColumnName:          "Name",
	league.ColumnPlayed:        "Played",
	league.ColumnWon:           "Won",
	league.ColumnDrawn:         "Drawn",
	league.ColumnLost:          "Lost",
	league.ColumnGoalsScored:   "Goals for",
	league.ColumnGoalsReceived: "Goals against",
	league.ColumnDiff:          "Goal difference",
	league.ColumnScore:         "Points",
}

type columnHeader struct {
	Column league.Column
	Label  string
	Active bool
}

type pageData struct {
	Selector  selector.Status
	Cues      []selector.Playback
	Form      league.Form
	Errors    league.FieldErrors
	History   []league.Match
	Last      *league.Summary
	Standings []league.Team
	Sort      league.Column
	Columns   []columnHeader
}

// PageHandler renders both widgets. The standings are ordered by the 'sort' query parameter.
func (s *Server) PageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sort, err := league.ParseColumn(r.URL.Query().Get("sort"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.renderPage(w, r, http.StatusOK, sort, league.Form{}, league.FieldErrors{})
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, sort league.Column, form league.Form, fe league.FieldErrors) {
	standings, err := s.Tracker.Standings(sort)
	if err != nil {
		loggerFromContext(r).Error("Failed to get standings", "error", err, "column", sort)
		http.Error(w, "Failed to get standings", http.StatusInternalServerError)
		return
	}

	// The page is the frame the detail view is drawn in.
	s.Selector.Frame()

	data := pageData{
		Selector:  s.Selector.Status(),
		Cues:      s.Cues.Take(),
		Form:      form,
		Errors:    fe,
		History:   s.Tracker.History(),
		Standings: standings,
		Sort:      sort,
	}
	if summary, ok := s.Tracker.LastResult(); ok {
		data.Last = &summary
	}
	for _, c := range league.Columns {
		data.Columns = append(data.Columns, columnHeader{Column: c, Label: columnLabels[c], Active: c == sort})
	}

	var buf bytes.Buffer
	if err := s.page.Execute(&buf, data); err != nil {
		loggerFromContext(r).Error("Failed to render page", "error", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		loggerFromContext(r).Error("Failed to write page", "error", err)
	}
}
