// Package i18n resolves validation message text for rule codes.
package i18n

import "fmt"

// Translator renders the message for a rule code. data carries optional
// parameters such as "min" or "expected".
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{}

func (dictTranslator) Message(code string, data map[string]string) string {
	switch code {
	case "required":
		return "this field is required"
	case "invalid_type":
		if e := data["expected"]; e != "" {
			return "expected " + e
		}
		return "invalid type"
	case "too_short":
		if m := data["min"]; m != "" {
			return fmt.Sprintf("must be at least %s characters", m)
		}
		return "too short"
	case "too_long":
		if m := data["max"]; m != "" {
			return fmt.Sprintf("must be at most %s characters", m)
		}
		return "too long"
	case "too_small":
		if m := data["min"]; m != "" {
			return fmt.Sprintf("must be at least %s", m)
		}
		return "too small"
	case "too_big":
		if m := data["max"]; m != "" {
			return fmt.Sprintf("must be at most %s", m)
		}
		return "too big"
	case "pattern":
		return "does not match the expected pattern"
	case "invalid_enum":
		return "not one of the allowed values"
	case "invalid_format":
		if f := data["format"]; f != "" {
			return "not a valid " + f
		}
		return "invalid format"
	case "too_few_items":
		if m := data["minItems"]; m != "" {
			return fmt.Sprintf("requires at least %s entries", m)
		}
		return "too few entries"
	case "too_many_items":
		if m := data["maxItems"]; m != "" {
			return fmt.Sprintf("allows at most %s entries", m)
		}
		return "too many entries"
	}
	return code
}

var current Translator = dictTranslator{}

// Message renders code through the active Translator.
func Message(code string, data map[string]string) string {
	return current.Message(code, data)
}

// SetTranslator replaces the active Translator; nil restores the built-in
// dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		current = dictTranslator{}
		return
	}
	current = tr
}
