// Package coerce turns untrusted completion text into validated, typed
// results.
//
// Every reply goes through one pass: a strict JSON attempt, and when that
// fails the schema's recovery table, which pulls known fields out of the raw
// text with regular expressions and fills every required field it cannot
// find with a documented default. The resulting object is then decoded into
// the target type and validated. Validation failures are never patched; they
// surface as a CoercionError listing each violated field.
package coerce

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Veraticus/sevos/internal/common"
)

// Outcome records which parse path produced the object.
type Outcome int

// Outcome constants.
const (
	ParsedJSON Outcome = iota + 1
	Recovered
)

func (o Outcome) String() string {
	switch o {
	case ParsedJSON:
		return "json"
	case Recovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// Schema describes how raw text becomes a T.
type Schema[T any] struct {
	// Recover extracts known fields from text that is not a JSON object.
	// Every key in Required must be present in the returned map.
	Recover func(raw string) map[string]any

	// Finalize normalizes and recomputes derived fields after decoding.
	// Defaults that would add fields to a well-formed reply belong behind
	// outcome == Recovered.
	Finalize func(*T, Outcome)

	// Check reports cross-field violations the struct tags cannot express.
	Check func(*T) []common.Violation

	Name string

	// Required lists top-level keys that must be present and non-null.
	Required []string

	// Numeric lists top-level keys whose string values are read as numbers,
	// so "$2,450.00" or "95%" still decode.
	Numeric []string

	// Embedded accepts a JSON object surrounded by prose. Schemas whose reply
	// is prose leave it off so stray braces are not mistaken for the result.
	Embedded bool
}

// CoercionError reports why a reply could not become a valid result.
type CoercionError struct {
	Schema     string
	Violations []common.Violation
	Outcome    Outcome
}

func (e *CoercionError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("coerce %s (%s): %s", e.Schema, e.Outcome, strings.Join(parts, "; "))
}

// Is lets errors.Is match ErrCoercion.
func (e *CoercionError) Is(target error) bool {
	return target == common.ErrCoercion
}

// Coerce parses raw into a T that satisfies s, or returns a *CoercionError.
func Coerce[T any](raw string, s Schema[T]) (T, Outcome, error) {
	var zero T

	outcome := ParsedJSON
	obj, ok := parseObject(raw, s.Embedded)
	if !ok {
		outcome = Recovered
		obj = s.Recover(raw)
	}

	fail := func(violations []common.Violation) (T, Outcome, error) {
		return zero, outcome, &CoercionError{Schema: s.Name, Outcome: outcome, Violations: violations}
	}

	readNumbers(obj, s.Numeric)

	if violations := missing(obj, s.Required); len(violations) > 0 {
		return fail(violations)
	}

	value, err := decode[T](obj)
	if err != nil {
		return fail([]common.Violation{typeViolation(err)})
	}

	if s.Finalize != nil {
		s.Finalize(&value, outcome)
	}

	violations := common.ValidateStruct(&value)
	if s.Check != nil {
		violations = append(violations, s.Check(&value)...)
	}
	if len(violations) > 0 {
		return fail(violations)
	}

	return value, outcome, nil
}

// parseObject is the strict JSON step. The text may be wrapped in a markdown
// code fence; with embedded set, the outermost {...} span is tried as well.
func parseObject(raw string, embedded bool) (map[string]any, bool) {
	text := cleanMarkdownWrapper(raw)
	if obj, ok := decodeObject(text); ok {
		return obj, true
	}
	if !embedded {
		return nil, false
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, false
	}
	return decodeObject(text[start : end+1])
}

// decodeObject accepts exactly one JSON object and nothing after it.
func decodeObject(text string) (map[string]any, bool) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, false
	}
	if strings.TrimSpace(text[dec.InputOffset():]) != "" {
		return nil, false
	}
	return obj, true
}

func missing(obj map[string]any, required []string) []common.Violation {
	var violations []common.Violation
	for _, key := range required {
		if v, ok := obj[key]; !ok || v == nil {
			violations = append(violations, common.Violation{Field: key, Constraint: "required"})
		}
	}
	return violations
}

func decode[T any](obj map[string]any) (T, error) {
	var value T
	data, err := json.Marshal(obj)
	if err != nil {
		return value, err
	}
	err = json.NewDecoder(bytes.NewReader(data)).Decode(&value)
	return value, err
}

func typeViolation(err error) common.Violation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return common.Violation{
			Field:      typeErr.Field,
			Constraint: "must be " + describeKind(typeErr.Type),
		}
	}
	return common.Violation{Field: "", Constraint: err.Error()}
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice, reflect.Array:
		return "an array"
	case reflect.Struct, reflect.Map:
		return "an object"
	default:
		return t.String()
	}
}
