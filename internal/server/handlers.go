package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/form"
	"github.com/leadstack/leadform/pkg/locale"
	"github.com/leadstack/leadform/pkg/session"
	"github.com/leadstack/leadform/pkg/validate"
)

type captureResponse struct {
	FormID  string `json:"form_id"`
	State   string `json:"state"`
	Step    int    `json:"step"`
	Notice  string `json:"notice,omitempty"`
	Error   string `json:"error,omitempty"`
	PageURL string `json:"page_url,omitempty"`
	Widget  string `json:"widget,omitempty"`
}

// handleCapture runs the full pipeline for one submit event. Each request is
// an independent form instance; only the attribution store and the geo cache
// are shared.
func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	formID := r.PathValue("formID")

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess, err := s.sessionFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Attribution marks ride in on the page URL of the submitting visit.
	if err := s.tracker.Persist(r.Context(), sess.Query()); err != nil {
		utils.Log.Warnf("capture %s: attribution persist failed: %v", formID, err)
	}

	handler, err := form.NewHandler(form.Config{
		Descriptor: form.Descriptor{
			FormID:      formID,
			ProductName: r.FormValue("product_name"),
			ProductID:   r.FormValue("product_id"),
		},
		Session:    sess,
		Geo:        s.cfg.Geo,
		Tracker:    s.tracker,
		Relay:      s.cfg.Relay,
		Builder:    s.cfg.Builder,
		EmailCheck: s.cfg.EmailCheck,
		WidgetHash: s.cfg.WidgetHash,
		PageMarkup: s.cfg.PageMarkup,
	})
	if err != nil {
		var cfgErr *locale.ConfigurationError
		if errors.As(err, &cfgErr) {
			// Fatal to this form only; the page's other forms are unaffected.
			http.Error(w, cfgErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	view := form.NewOutcomeView()
	input := form.Input{
		Name:  r.FormValue("name"),
		Phone: r.FormValue("phone"),
		Email: r.FormValue("email"),
	}

	err = handler.Submit(r.Context(), input, view)

	resp := captureResponse{
		FormID: formID,
		State:  handler.State().String(),
		Step:   view.Step,
	}
	switch {
	case err == form.ErrInFlight:
		http.Error(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		var rej *validate.Rejection
		if !errors.As(err, &rej) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		resp.Error = view.ErrorNotice
	case handler.State().Completed():
		resp.Notice = view.SuccessNotice
		resp.Widget = view.WidgetMarkup
		resp.PageURL = sess.PageURL.String()
	default:
		resp.Error = view.ErrorNotice
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleAttribution persists marks from a page load without a submission,
// mirroring the tracker running once at load time.
func (s *Server) handleAttribution(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.tracker.Persist(r.Context(), sess.Query()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func (s *Server) sessionFromRequest(r *http.Request) (*session.Context, error) {
	sess, err := session.FromRequest(r)
	if err != nil {
		return nil, err
	}
	sess.Security = s.cfg.Security
	sess.Post = s.cfg.Post
	sess.LeadFormat = s.cfg.LeadFormat
	if sess.WidgetToken == "" {
		sess.WidgetToken = s.cfg.WidgetToken
	}
	return sess, nil
}
