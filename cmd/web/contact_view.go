package main

import (
	"net/url"
	"strings"

	"almil.org/almil-web/internal/contact"
)

// ContactView is the lead form payload shared by the page and its fragment.
type ContactView struct {
	Lang      string
	Action    string
	CSRFField string
	CSRFToken string
	Values    contact.Values
	Subjects  []contact.SubjectOption
	Invalid   map[string]bool
	Error     string
	Success   string
	Reference string
}

func newContactView(lang, token string, v contact.Values) ContactView {
	return ContactView{
		Lang:      lang,
		Action:    "/contact",
		CSRFField: "csrf_token",
		CSRFToken: token,
		Values:    v,
		Subjects:  contact.Subjects,
		Invalid:   map[string]bool{},
	}
}

// markIncomplete flags the offending inputs and builds the summary line.
func (cv *ContactView) markIncomplete(err *contact.IncompleteError, label func(string) string, summary func(string) string) {
	names := make([]string, 0, len(contact.Fields))
	for _, f := range contact.Fields {
		if err.Has(f) {
			cv.Invalid[string(f)] = true
			names = append(names, label(string(f)))
		}
	}
	cv.Error = summary(strings.Join(names, ", "))
}

// contactValuesFrom reads the posted fields. Values are cleaned and
// validated by the form itself.
func contactValuesFrom(form url.Values) contact.Values {
	var v contact.Values
	v.Name = form.Get(string(contact.FieldName))
	v.Email = form.Get(string(contact.FieldEmail))
	v.Phone = form.Get(string(contact.FieldPhone))
	v.Subject = form.Get(string(contact.FieldSubject))
	v.Message = form.Get(string(contact.FieldMessage))
	return v
}
