// Package validation checks incoming book payloads before they reach the store.
//
// Rules are evaluated in a fixed order (title, author, isbn, publishedYear, then any
// unknown key) and validation stops at the first failure, which is returned as a
// *FieldError naming the offending field.
package validation

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/mrlokans/bookcatalog/internal/entities"
)

// Field names as they appear in request bodies.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldISBN          = "isbn"
	FieldPublishedYear = "publishedYear"
)

// MinPublishedYear is the earliest accepted publication year.
const MinPublishedYear = 1000

// Mode selects between the create schema (all fields required) and the
// update schema (all fields optional).
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// rule validates one field that is present in the payload.
type rule struct {
	field string
	check func(v *Validator, raw json.RawMessage, out *entities.BookFields) ErrorKind
}

var rules = []rule{
	{field: FieldTitle, check: stringRule(func(out *entities.BookFields, s string) { out.Title = &s })},
	{field: FieldAuthor, check: stringRule(func(out *entities.BookFields, s string) { out.Author = &s })},
	{field: FieldISBN, check: stringRule(func(out *entities.BookFields, s string) { out.ISBN = &s })},
	{field: FieldPublishedYear, check: yearRule},
}

var known = map[string]struct{}{
	FieldTitle:         {},
	FieldAuthor:        {},
	FieldISBN:          {},
	FieldPublishedYear: {},
}

// Validator validates book payloads against the current calendar year.
type Validator struct {
	now func() time.Time
}

type Option func(*Validator)

// WithClock overrides the clock used for the "not in the future" rule.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

var defaultValidator = New()

// ValidateCreate validates a create payload using the wall clock.
func ValidateCreate(body []byte) (entities.BookFields, error) {
	return defaultValidator.ValidateCreate(body)
}

// ValidateUpdate validates an update payload using the wall clock.
func ValidateUpdate(body []byte) (entities.BookFields, error) {
	return defaultValidator.ValidateUpdate(body)
}

// ValidateCreate requires title, author, isbn and publishedYear.
func (v *Validator) ValidateCreate(body []byte) (entities.BookFields, error) {
	return v.Validate(body, ModeCreate)
}

// ValidateUpdate applies the create rules to whichever fields are present.
func (v *Validator) ValidateUpdate(body []byte) (entities.BookFields, error) {
	return v.Validate(body, ModeUpdate)
}

// Validate runs the rule list against body and returns the first failure.
func (v *Validator) Validate(body []byte, mode Mode) (entities.BookFields, error) {
	var out entities.BookFields

	payload, err := decodeObject(body)
	if err != nil {
		return out, err
	}

	for _, r := range rules {
		raw, present := payload[r.field]
		if !present {
			if mode == ModeCreate {
				return entities.BookFields{}, &FieldError{Field: r.field, Kind: KindRequired}
			}
			continue
		}
		if kind := r.check(v, raw, &out); kind != KindNone {
			return entities.BookFields{}, &FieldError{Field: r.field, Kind: kind}
		}
	}

	if key, ok := firstUnknownKey(payload); ok {
		return entities.BookFields{}, &FieldError{Field: key, Kind: KindUnknownField}
	}

	return out, nil
}

// decodeObject decodes body into its top-level keys. An empty body is an empty object.
func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	if trimmed[0] != '{' {
		return nil, &FieldError{Field: "value", Kind: KindNotObject}
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, &FieldError{Field: "value", Kind: KindNotObject}
	}
	return payload, nil
}

// firstUnknownKey reports the alphabetically first key that no rule covers.
func firstUnknownKey(payload map[string]json.RawMessage) (string, bool) {
	var unknown []string
	for key := range payload {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return "", false
	}
	slices.Sort(unknown)
	return unknown[0], true
}

func stringRule(assign func(out *entities.BookFields, s string)) func(*Validator, json.RawMessage, *entities.BookFields) ErrorKind {
	return func(_ *Validator, raw json.RawMessage, out *entities.BookFields) ErrorKind {
		var s string
		if isNull(raw) || json.Unmarshal(raw, &s) != nil {
			return KindNotString
		}
		if s == "" {
			return KindEmpty
		}
		assign(out, s)
		return KindNone
	}
}

func yearRule(v *Validator, raw json.RawMessage, out *entities.BookFields) ErrorKind {
	n, kind := parseNumber(raw)
	if kind != KindNone {
		return kind
	}
	if n != math.Trunc(n) {
		return KindNotInteger
	}
	if n < MinPublishedYear {
		return KindYearTooEarly
	}
	if n > float64(v.now().Year()) {
		return KindYearInFuture
	}
	year := int(n)
	out.PublishedYear = &year
	return KindNone
}

// parseNumber accepts JSON numbers and numeric strings.
func parseNumber(raw json.RawMessage) (float64, ErrorKind) {
	if isNull(raw) {
		return 0, KindNotNumber
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, KindNone
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, KindNotNumber
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, KindNotNumber
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, KindNotNumber
	}
	return n, KindNone
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// AsFieldError unwraps err into a *FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
