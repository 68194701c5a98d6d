package http

import "net/http"

// SelectFormHandler handles the Select buttons of the page.
func (s *Server) SelectFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		name := r.FormValue("name")
		item, ok := s.Selector.Find(name)
		if !ok {
			loggerFromContext(r).Warn("Select requested for unknown item", "name", name)
			http.Error(w, "Unknown item", http.StatusBadRequest)
			return
		}
		if err := s.Selector.Select(item); err != nil {
			loggerFromContext(r).Error("Failed to select item", "error", err)
			http.Error(w, "Failed to select item", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// DeselectFormHandler handles the Deselect button of the page.
func (s *Server) DeselectFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Selector.Deselect()
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (s *Server) SelectorStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, r, http.StatusOK, s.Selector.Status())
	}
}

func (s *Server) SelectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req selectRequest
		if err := decodeBody(r, &req); err != nil {
			loggerFromContext(r).Error("Failed to decode select request", "error", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		item, ok := s.Selector.Find(req.Name)
		if !ok {
			http.Error(w, "Unknown item", http.StatusNotFound)
			return
		}
		if err := s.Selector.Select(item); err != nil {
			loggerFromContext(r).Error("Failed to select item", "error", err)
			http.Error(w, "Failed to select item", http.StatusInternalServerError)
			return
		}
		respond(w, r, http.StatusOK, s.Selector.Status())
	}
}

func (s *Server) DeselectHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Selector.Deselect()
		respond(w, r, http.StatusOK, s.Selector.Status())
	}
}
