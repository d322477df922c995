package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"almil.org/almil-web/internal/contact"
	"almil.org/almil-web/internal/metrics"
	mw "almil.org/almil-web/internal/middleware"
)

// ContactHandler renders the contact page with an empty lead form.
func (s *site) ContactHandler(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, r, http.StatusOK, newContactView(s.layout.Lang, mw.CSRFToken(r), contact.Values{}))
}

// ContactSubmitHandler validates and delivers a lead. A second post from the
// same session while one is still in flight is ignored.
func (s *site) ContactSubmitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	logger := mw.Log(r.Context())
	sess := mw.GetSession(r)
	values := contactValuesFrom(r.PostForm)
	view := newContactView(s.layout.Lang, mw.CSRFToken(r), values)

	outcome := make(chan contact.Outcome, 1)
	form := contact.NewForm(s.submitter, func(o contact.Outcome) { outcome <- o })
	defer form.Close()
	form.Fill(values)

	if _, busy := s.inflight.LoadOrStore(sess.ID, form); busy {
		s.metrics.CountLead(metrics.LeadDuplicate)
		view.Error = s.t("contact.sending")
		s.renderContact(w, r, http.StatusConflict, view)
		return
	}
	defer s.inflight.CompareAndDelete(sess.ID, form)

	started, err := form.Submit(r.Context())
	var incomplete *contact.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		s.metrics.CountLead(metrics.LeadIncomplete)
		view.markIncomplete(incomplete,
			func(f string) string { return s.t("contact." + f) },
			func(list string) string { return s.t("contact.missing", list) })
		s.renderContact(w, r, http.StatusUnprocessableEntity, view)
		return
	case err != nil || !started:
		logger.Error("contact submit did not start", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var o contact.Outcome
	select {
	case o = <-outcome:
	case <-r.Context().Done():
		s.metrics.CountLead(metrics.LeadFailed)
		logger.Warn("contact submit abandoned", zap.Error(r.Context().Err()))
		return
	}

	if !o.OK() {
		s.metrics.CountLead(metrics.LeadFailed)
		logger.Error("contact submit failed", zap.String("reference", o.Reference), zap.Error(o.Err))
		view.Values = form.Values()
		view.Error = o.Message()
		s.renderContact(w, r, http.StatusBadGateway, view)
		return
	}

	s.metrics.CountLead(metrics.LeadAccepted)
	logger.Info("contact lead accepted", zap.String("reference", o.Reference), zap.String("subject", values.Subject))
	if mw.IsHTMX(r.Context()) {
		done := newContactView(s.layout.Lang, mw.CSRFToken(r), form.Values())
		done.Success = o.Message()
		done.Reference = o.Reference
		s.renderFragment(w, r, "frag_contact_form", http.StatusOK, done)
		return
	}
	sess.SetFlash(o.Message())
	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

func (s *site) renderContact(w http.ResponseWriter, r *http.Request, status int, view ContactView) {
	if mw.IsHTMX(r.Context()) {
		s.renderFragment(w, r, "frag_contact_form", status, view)
		return
	}
	page, ok := s.loadContent(w, r, "contact")
	if !ok {
		return
	}
	pd := s.contentView(r, page)
	if pd.Flash != "" {
		view.Success = pd.Flash
		pd.Flash = ""
	}
	pd.Contact = view
	s.renderPage(w, r, "contact", status, pd)
}
