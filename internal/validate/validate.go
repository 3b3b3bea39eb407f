// Package validate turns untyped request payloads into write models.
//
// Each rule reads a decoded JSON object, collects field-level failures and
// returns either a normalised input or a single VALIDATION_ERROR whose message
// is the first failure. Rules have no side effects.
package validate

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/imagestore"
)

// maxSafeInt is the largest integer a JSON number decoded as float64 holds exactly.
const maxSafeInt = 1<<53 - 1

// Validator reads fields from one payload and collects failures.
// It is not safe for concurrent use.
type Validator struct {
	payload map[string]any
	errs    []apperr.FieldError
}

// New returns a Validator over payload. A nil payload behaves like an empty
// object.
func New(payload map[string]any) *Validator {
	return &Validator{payload: payload}
}

// RequiredString returns the trimmed, NFC-normalised value of field. It fails
// with msg when the field is absent, not a string or blank.
func (v *Validator) RequiredString(field, msg string) string {
	s, ok := v.payload[field].(string)
	if !ok {
		v.add(field, msg)
		return ""
	}
	s = clean(s)
	if s == "" {
		v.add(field, msg)
	}
	return s
}

// OptionalString returns the trimmed value of field, or nil when it is
// absent, null or blank.
func (v *Validator) OptionalString(field string) *string {
	raw, ok := v.payload[field]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		v.add(field, fmt.Sprintf("%sは文字列で指定してください", field))
		return nil
	}
	s = clean(s)
	if s == "" {
		return nil
	}
	return &s
}

// ImagePath returns an optional upload path. Paths must be relative and free
// of parent-directory segments.
func (v *Validator) ImagePath(field string) *string {
	p := v.OptionalString(field)
	if p == nil {
		return nil
	}
	if strings.HasPrefix(*p, "/") || strings.HasPrefix(*p, `\`) || imagestore.CheckPath(*p) != nil {
		v.add(field, "画像パスが不正です")
		return nil
	}
	return p
}

// OptionalID returns a positive integer id, or nil when the field is absent
// or null.
func (v *Validator) OptionalID(field, msg string) *int64 {
	raw, ok := v.payload[field]
	if !ok || raw == nil {
		return nil
	}

	var id int64
	switch n := raw.(type) {
	case float64:
		if n != math.Trunc(n) || n < 1 || n > maxSafeInt {
			v.add(field, msg)
			return nil
		}
		id = int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil || i < 1 {
			v.add(field, msg)
			return nil
		}
		id = i
	default:
		v.add(field, msg)
		return nil
	}
	return &id
}

// Enum returns the member of a closed set named by field, or nil when the
// field is absent, null or blank. Any other value fails with msg.
func Enum[T ~string](v *Validator, field string, parse func(string) (T, error), msg string) *T {
	raw, ok := v.payload[field]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		v.add(field, msg)
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	val, err := parse(s)
	if err != nil {
		v.add(field, msg)
		return nil
	}
	return &val
}

// Err returns nil when every rule passed, otherwise a validation error
// carrying all field failures.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.Validation(v.errs[0].Message, v.errs...)
}

func (v *Validator) add(field, msg string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: msg})
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
