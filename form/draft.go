// Package form implements the client side of an enquiry session: an
// immutable draft of field values, the trim-based required-field validator,
// and the submitter that turns a valid draft into a downloaded PDF.
package form

import (
	"encoding/json"
	"strings"

	"github.com/manutdmohit/bhagirathi-enquiry/enquiry"
)

// RequiredFieldMessage is the per-field validation message.
const RequiredFieldMessage = "This field is required"

// Draft holds the in-progress field values for one form session. Drafts are
// values: WithField returns a new draft, so one draft instance belongs to
// exactly one session and is never shared.
type Draft struct {
	persona enquiry.Persona
	values  map[string]string
	errors  map[string]string
}

// NewDraft creates an empty draft for a persona with every field blank.
func NewDraft(p enquiry.Persona) Draft {
	names := enquiry.FieldNames(p)
	values := make(map[string]string, len(names))
	for _, name := range names {
		values[name] = ""
	}
	return Draft{persona: p, values: values}
}

// NewStudentDraft creates an empty student draft.
func NewStudentDraft() Draft {
	return NewDraft(enquiry.PersonaStudent)
}

// NewSponsorDraft creates an empty sponsor draft.
func NewSponsorDraft() Draft {
	return NewDraft(enquiry.PersonaSponsor)
}

// Persona returns the draft's persona.
func (d Draft) Persona() enquiry.Persona {
	return d.persona
}

// Field returns the current value of a field, or "" for unknown names.
func (d Draft) Field(name string) string {
	return d.values[name]
}

// WithField returns a copy of the draft with one field updated. Updating a
// field clears that field's pending validation error without touching the
// rest of the mapping. Unknown field names leave the draft unchanged.
func (d Draft) WithField(name, value string) Draft {
	if _, ok := d.values[name]; !ok {
		return d
	}
	next := d.clone()
	next.values[name] = value
	delete(next.errors, name)
	return next
}

// Errors returns the validation errors recorded by the last Validate pass,
// minus any cleared by later field updates.
func (d Draft) Errors() map[string]string {
	out := make(map[string]string, len(d.errors))
	for name, msg := range d.errors {
		out[name] = msg
	}
	return out
}

// Validate checks every required field and returns the draft with its error
// mapping replaced entirely: one entry per required field whose trimmed
// value is empty, no entries at all when the draft is valid.
func (d Draft) Validate() (Draft, map[string]string) {
	errs := map[string]string{}
	for _, name := range enquiry.RequiredFieldNames(d.persona) {
		if strings.TrimSpace(d.values[name]) == "" {
			errs[name] = RequiredFieldMessage
		}
	}

	next := d.clone()
	next.errors = errs
	return next, next.Errors()
}

// Identifier returns the field used to name the downloaded file: the
// applicant name for students, the account holder name for sponsors.
func (d Draft) Identifier() string {
	switch d.persona {
	case enquiry.PersonaSponsor:
		return d.values["accountHolderName"]
	default:
		return d.values["name"]
	}
}

// MarshalJSON serializes the full draft, required and optional fields alike.
func (d Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.values)
}

func (d Draft) clone() Draft {
	values := make(map[string]string, len(d.values))
	for name, value := range d.values {
		values[name] = value
	}
	errors := make(map[string]string, len(d.errors))
	for name, msg := range d.errors {
		errors[name] = msg
	}
	return Draft{persona: d.persona, values: values, errors: errors}
}
