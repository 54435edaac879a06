package dsl

import (
	stdjson "encoding/json"
	"regexp"
	"strconv"
	"unicode/utf8"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/i18n"
)

// String declares a scalar string field.
func String() *StringSchema { return &StringSchema{min: -1, max: -1} }

// StringSchema validates scalar string fields. Absent, nil and empty values
// pass every rule except Required, matching how unfilled controls report
// their value.
type StringSchema struct {
	required   bool
	min, max   int
	pattern    *regexp.Regexp
	patternSrc string
	format     string
	enum       []string
}

// Required rejects absent, nil and empty values.
func (s *StringSchema) Required() *StringSchema { s.required = true; return s }

// Min sets the minimum length in runes.
func (s *StringSchema) Min(n int) *StringSchema { s.min = n; return s }

// Max sets the maximum length in runes.
func (s *StringSchema) Max(n int) *StringSchema { s.max = n; return s }

// Pattern compiles expr and rejects values that do not match. Invalid
// expressions panic at declaration time.
func (s *StringSchema) Pattern(expr string) *StringSchema {
	s.pattern = regexp.MustCompile(expr)
	s.patternSrc = expr
	return s
}

// Email applies a light email format check.
func (s *StringSchema) Email() *StringSchema { s.format = "email"; return s }

// OneOf restricts the value to the given set.
func (s *StringSchema) OneOf(vals ...string) *StringSchema { s.enum = vals; return s }

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func (s *StringSchema) check(p formstate.Path, v any, present bool) formstate.FieldErrors {
	if !present || v == nil || v == "" {
		if s.required {
			return formstate.FieldErrors{p.Err(formstate.CodeRequired, i18n.Message(formstate.CodeRequired, nil))}
		}
		return nil
	}
	str, ok := v.(string)
	if !ok {
		return formstate.FieldErrors{p.Err(
			formstate.CodeInvalidType,
			i18n.Message(formstate.CodeInvalidType, map[string]string{"expected": "string"}),
			"expected", "string",
		)}
	}
	var errs formstate.FieldErrors
	n := utf8.RuneCountInString(str)
	if s.min >= 0 && n < s.min {
		data := map[string]string{"min": strconv.Itoa(s.min)}
		errs = append(errs, p.Err(formstate.CodeTooShort, i18n.Message(formstate.CodeTooShort, data),
			"min", s.min, "got", n))
	}
	if s.max >= 0 && n > s.max {
		data := map[string]string{"max": strconv.Itoa(s.max)}
		errs = append(errs, p.Err(formstate.CodeTooLong, i18n.Message(formstate.CodeTooLong, data),
			"max", s.max, "got", n))
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		errs = append(errs, p.Err(formstate.CodePattern, i18n.Message(formstate.CodePattern, nil),
			"pattern", s.patternSrc))
	}
	if s.format == "email" && !emailRe.MatchString(str) {
		data := map[string]string{"format": "email"}
		errs = append(errs, p.Err(formstate.CodeInvalidFormat, i18n.Message(formstate.CodeInvalidFormat, data),
			"format", "email"))
	}
	if len(s.enum) > 0 {
		found := false
		for _, e := range s.enum {
			if e == str {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, p.Err(formstate.CodeInvalidEnum, i18n.Message(formstate.CodeInvalidEnum, nil),
				"allowed", s.enum))
		}
	}
	return errs
}

func (s *StringSchema) shape(name string) formstate.FieldShape {
	return formstate.FieldShape{Name: name, Kind: formstate.KindScalar}
}

// Number declares a scalar numeric field. JSON-decoded values arrive as
// float64 or json.Number; both are accepted, as are the Go numeric types.
func Number() *NumberSchema { return &NumberSchema{} }

// NumberSchema validates scalar numeric fields.
type NumberSchema struct {
	required bool
	min, max *float64
}

// Required rejects absent and nil values.
func (s *NumberSchema) Required() *NumberSchema { s.required = true; return s }

// Min sets the minimum allowed value.
func (s *NumberSchema) Min(v float64) *NumberSchema { s.min = &v; return s }

// Max sets the maximum allowed value.
func (s *NumberSchema) Max(v float64) *NumberSchema { s.max = &v; return s }

func (s *NumberSchema) check(p formstate.Path, v any, present bool) formstate.FieldErrors {
	if !present || v == nil {
		if s.required {
			return formstate.FieldErrors{p.Err(formstate.CodeRequired, i18n.Message(formstate.CodeRequired, nil))}
		}
		return nil
	}
	f, ok := toFloat(v)
	if !ok {
		return formstate.FieldErrors{p.Err(
			formstate.CodeInvalidType,
			i18n.Message(formstate.CodeInvalidType, map[string]string{"expected": "number"}),
			"expected", "number",
		)}
	}
	var errs formstate.FieldErrors
	if s.min != nil && f < *s.min {
		data := map[string]string{"min": strconv.FormatFloat(*s.min, 'f', -1, 64)}
		errs = append(errs, p.Err(formstate.CodeTooSmall, i18n.Message(formstate.CodeTooSmall, data),
			"min", *s.min, "got", f))
	}
	if s.max != nil && f > *s.max {
		data := map[string]string{"max": strconv.FormatFloat(*s.max, 'f', -1, 64)}
		errs = append(errs, p.Err(formstate.CodeTooBig, i18n.Message(formstate.CodeTooBig, data),
			"max", *s.max, "got", f))
	}
	return errs
}

func (s *NumberSchema) shape(name string) formstate.FieldShape {
	return formstate.FieldShape{Name: name, Kind: formstate.KindScalar}
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case stdjson.Number:
		f, err := t.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool declares a scalar boolean field.
func Bool() *BoolSchema { return &BoolSchema{} }

// BoolSchema validates scalar boolean fields.
type BoolSchema struct {
	required bool
}

// Required rejects absent and nil values.
func (s *BoolSchema) Required() *BoolSchema { s.required = true; return s }

func (s *BoolSchema) check(p formstate.Path, v any, present bool) formstate.FieldErrors {
	if !present || v == nil {
		if s.required {
			return formstate.FieldErrors{p.Err(formstate.CodeRequired, i18n.Message(formstate.CodeRequired, nil))}
		}
		return nil
	}
	if _, ok := v.(bool); !ok {
		return formstate.FieldErrors{p.Err(
			formstate.CodeInvalidType,
			i18n.Message(formstate.CodeInvalidType, map[string]string{"expected": "bool"}),
			"expected", "bool",
		)}
	}
	return nil
}

func (s *BoolSchema) shape(name string) formstate.FieldShape {
	return formstate.FieldShape{Name: name, Kind: formstate.KindScalar}
}
