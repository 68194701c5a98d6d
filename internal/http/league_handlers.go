package http

import (
	"net/http"
	"net/url"

	"github.com/mauv0809/calcio/internal/league"
)

// SubmitFormHandler handles the match form of the page. A rejected submission
// re-renders the page with the entered values and inline errors.
func (s *Server) SubmitFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		form := league.Form{
			TeamA:  r.FormValue("team_a"),
			TeamB:  r.FormValue("team_b"),
			AGoals: league.SanitizeGoals(r.FormValue("a_goals")),
			BGoals: league.SanitizeGoals(r.FormValue("b_goals")),
		}
		sort, err := league.ParseColumn(r.FormValue("sort"))
		if err != nil {
			sort = league.ColumnID
		}

		if _, fe := s.Tracker.Submit(form); fe.Any() {
			s.renderPage(w, r, http.StatusUnprocessableEntity, sort, form, fe)
			return
		}

		target := "/"
		if sort != league.ColumnID {
			target += "?" + url.Values{"sort": {string(sort)}}.Encode()
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	}
}

func (s *Server) HistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := s.Tracker.History()
		if history == nil {
			history = []league.Match{}
		}
		respond(w, r, http.StatusOK, history)
	}
}

// SubmitMatchHandler records a match sent as a JSON or MessagePack form. With
// dry_run=true the form is only validated and the normalized match is returned.
func (s *Server) SubmitMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var form league.Form
		if err := decodeBody(r, &form); err != nil {
			loggerFromContext(r).Error("Failed to decode match form", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		if isDryRunFromContext(r) {
			if fe := league.Validate(form); fe.Any() {
				respond(w, r, http.StatusUnprocessableEntity, submitResponse{Errors: &fe, Form: form, DryRun: true})
				return
			}
			match := form.Match()
			loggerFromContext(r).Info("[Dry Run] Would have recorded match", "team_a", match.TeamA, "team_b", match.TeamB)
			respond(w, r, http.StatusOK, submitResponse{Match: &match, Form: form, DryRun: true})
			return
		}

		match, fe := s.Tracker.Submit(form)
		if fe.Any() {
			respond(w, r, http.StatusUnprocessableEntity, submitResponse{Errors: &fe, Form: form})
			return
		}
		respond(w, r, http.StatusCreated, submitResponse{Match: &match, Form: league.Form{}})
	}
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		column, err := league.ParseColumn(r.URL.Query().Get("sort"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		teams, err := s.Tracker.Standings(column)
		if err != nil {
			loggerFromContext(r).Error("Failed to get standings", "error", err, "column", column)
			http.Error(w, "Failed to get standings", http.StatusInternalServerError)
			return
		}
		respond(w, r, http.StatusOK, teams)
	}
}

func (s *Server) LastResultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, ok := s.Tracker.LastResult()
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respond(w, r, http.StatusOK, summary)
	}
}

// SanitizeHandler cleans a goals field after a keystroke. The page calls it on
// every input event.
func (s *Server) SanitizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := r.URL.Query().Get("value")
		respond(w, r, http.StatusOK, valueResponse{Value: league.SanitizeKeystroke(value)})
	}
}

// ResolveHandler completes a team name field. The page calls it when the field loses focus.
func (s *Server) ResolveHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := league.ResolveTeam(r.URL.Query().Get("name"))
		if err != nil {
			respond(w, r, http.StatusUnprocessableEntity, nameResponse{Error: err.Error()})
			return
		}
		respond(w, r, http.StatusOK, nameResponse{Name: string(name)})
	}
}
