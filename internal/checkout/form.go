// Package checkout validates the buyer's form and compiles the cart,
// rental and service selections into a single immutable order ready for
// submission.
package checkout

import (
	"fmt"
	"strings"
)

// Form carries everything the buyer types in at checkout.
type Form struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`

	Street       string `json:"street"`
	Building     string `json:"building"`
	Apartment    string `json:"apartment,omitempty"`
	AddressNotes string `json:"address_notes,omitempty"`

	Guests   int    `json:"guests"`
	Dietary  string `json:"dietary,omitempty"`
	Comments string `json:"comments,omitempty"`

	Consent bool `json:"consent"`
}

// ValidationError reports every offending form field at once, not just
// the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout: invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Has reports whether the named field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// requiredFields lists the form fields that must be non-empty, in report
// order.
var requiredFields = []struct {
	name  string
	value func(Form) string
}{
	{"name", func(f Form) string { return f.Name }},
	{"phone", func(f Form) string { return f.Phone }},
	{"email", func(f Form) string { return f.Email }},
	{"date", func(f Form) string { return f.Date }},
	{"startTime", func(f Form) string { return f.StartTime }},
	{"street", func(f Form) string { return f.Street }},
	{"building", func(f Form) string { return f.Building }},
}

// Validate checks the form and returns a ValidationError naming every
// missing or invalid field, or nil when the form is submittable.
func (f Form) Validate() *ValidationError {
	var fields []string
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(f)) == "" {
			fields = append(fields, rf.name)
		}
	}
	if !f.Consent {
		fields = append(fields, "consent")
	}
	if f.Guests < 1 {
		fields = append(fields, "guests")
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
