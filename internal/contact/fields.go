// Package contact implements the lead-capture form: field state, required
// field validation and the submission boundary.
package contact

import (
	"fmt"
	"html"
	"net/mail"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldSubject Field = "subject"
	FieldMessage Field = "message"
)

// Fields lists every input in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

// Required lists the inputs that must be non-empty before submitting.
var Required = []Field{FieldName, FieldEmail, FieldSubject, FieldMessage}

// Subject is the enumerated reason for contact.
type Subject string

const (
	SubjectQuote       Subject = "quote"
	SubjectProduct     Subject = "product"
	SubjectSupport     Subject = "support"
	SubjectPartnership Subject = "partnership"
	SubjectOther       Subject = "other"
)

// SubjectOption is a select option for templates.
type SubjectOption struct {
	Value Subject
	Label string
}

// Subjects lists the selectable reasons in display order.
var Subjects = []SubjectOption{
	{SubjectQuote, "Request a Quote"},
	{SubjectProduct, "Product Inquiry"},
	{SubjectSupport, "Technical Support"},
	{SubjectPartnership, "Partnership Opportunity"},
	{SubjectOther, "Other"},
}

// ValidSubject reports whether s is one of the enumerated reasons.
func ValidSubject(s string) bool {
	for _, opt := range Subjects {
		if string(opt.Value) == s {
			return true
		}
	}
	return false
}

// Values holds the raw field contents.
type Values struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Get returns the value of f.
func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldSubject:
		return v.Subject
	case FieldMessage:
		return v.Message
	default:
		return ""
	}
}

// set assigns f; it reports false for an unknown field.
func (v *Values) set(f Field, value string) bool {
	switch f {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldSubject:
		v.Subject = value
	case FieldMessage:
		v.Message = value
	default:
		return false
	}
	return true
}

// IsZero reports whether every field is empty.
func (v Values) IsZero() bool { return v == Values{} }

// IncompleteError lists the fields blocking a submission.
type IncompleteError struct {
	Missing []Field
	Invalid []Field
}

func (e *IncompleteError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+joinFields(e.Missing))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid "+joinFields(e.Invalid))
	}
	return fmt.Sprintf("contact: incomplete submission (%s)", strings.Join(parts, "; "))
}

// Has reports whether f is missing or invalid.
func (e *IncompleteError) Has(f Field) bool {
	if e == nil {
		return false
	}
	for _, m := range e.Missing {
		if m == f {
			return true
		}
	}
	for _, m := range e.Invalid {
		if m == f {
			return true
		}
	}
	return false
}

func joinFields(fs []Field) string {
	s := make([]string, len(fs))
	for i, f := range fs {
		s[i] = string(f)
	}
	return strings.Join(s, ", ")
}

// Validate returns an *IncompleteError when a required field is blank, the
// subject is not one of the enumerated reasons, or the email does not parse.
func (v Values) Validate() error {
	var e IncompleteError
	for _, f := range Required {
		if strings.TrimSpace(v.Get(f)) == "" {
			e.Missing = append(e.Missing, f)
		}
	}
	if s := strings.TrimSpace(v.Subject); s != "" && !ValidSubject(s) {
		e.Invalid = append(e.Invalid, FieldSubject)
	}
	if em := strings.TrimSpace(v.Email); em != "" {
		if _, err := mail.ParseAddress(em); err != nil {
			e.Invalid = append(e.Invalid, FieldEmail)
		}
	}
	if len(e.Missing) == 0 && len(e.Invalid) == 0 {
		return nil
	}
	return &e
}

var textPolicy = bluemonday.StrictPolicy()

// Clean strips markup and surrounding whitespace from every field.
func (v Values) Clean() Values {
	return Values{
		Name:    cleanText(v.Name),
		Email:   cleanText(v.Email),
		Phone:   cleanText(v.Phone),
		Subject: cleanText(v.Subject),
		Message: cleanText(v.Message),
	}
}

func cleanText(s string) string {
	// StrictPolicy escapes entities; templates escape again on output.
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(s)))
}
