package common

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"volunteer-tracker-go/pkg/civil"
)

// OptionalString tells an absent field apart from an explicit null.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	o.Value = &value
	return nil
}

// URLID returns the trimmed {id} path parameter.
func URLID(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "id"))
}

// ParseDate parses a YYYY-MM-DD field, writing a field error on failure.
func ParseDate(w http.ResponseWriter, field, value string) (civil.Date, bool) {
	parsed, err := civil.Parse(strings.TrimSpace(value))
	if err != nil {
		writeFieldError(w, field, field+" must be a YYYY-MM-DD date")
		return civil.Date{}, false
	}
	return parsed, true
}

// ParseOptionalDate is ParseDate for fields that may be omitted.
func ParseOptionalDate(w http.ResponseWriter, field string, value *string) (*civil.Date, bool) {
	if value == nil {
		return nil, true
	}
	parsed, ok := ParseDate(w, field, *value)
	if !ok {
		return nil, false
	}
	return &parsed, true
}
