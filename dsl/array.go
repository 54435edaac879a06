package dsl

import (
	"strconv"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/i18n"
)

// ArrayOf declares a form array: an ordered sequence of records, each
// validated by elem. Item-count violations land on the array's own path so
// the engine records them as container-level messages.
func ArrayOf(elem *ObjectSchema) *ArraySchema {
	return &ArraySchema{elem: elem, minItems: -1, maxItems: -1}
}

// ArraySchema validates a sequence of records.
type ArraySchema struct {
	elem               *ObjectSchema
	required           bool
	minItems, maxItems int
}

// Required rejects absent or nil values.
func (a *ArraySchema) Required() *ArraySchema { a.required = true; return a }

// MinItems sets the minimum entry count.
func (a *ArraySchema) MinItems(n int) *ArraySchema { a.minItems = n; return a }

// MaxItems sets the maximum entry count.
func (a *ArraySchema) MaxItems(n int) *ArraySchema { a.maxItems = n; return a }

func (a *ArraySchema) check(p formstate.Path, v any, present bool) formstate.FieldErrors {
	if !present || v == nil {
		if a.required {
			return formstate.FieldErrors{p.Err(formstate.CodeRequired, i18n.Message(formstate.CodeRequired, nil))}
		}
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return formstate.FieldErrors{p.Err(
			formstate.CodeInvalidType,
			i18n.Message(formstate.CodeInvalidType, map[string]string{"expected": "array"}),
			"expected", "array",
		)}
	}
	var errs formstate.FieldErrors
	if a.minItems >= 0 && len(items) < a.minItems {
		data := map[string]string{"minItems": strconv.Itoa(a.minItems)}
		errs = append(errs, p.Err(formstate.CodeTooFewItems, i18n.Message(formstate.CodeTooFewItems, data),
			"minItems", a.minItems, "got", len(items)))
	}
	if a.maxItems >= 0 && len(items) > a.maxItems {
		data := map[string]string{"maxItems": strconv.Itoa(a.maxItems)}
		errs = append(errs, p.Err(formstate.CodeTooManyItems, i18n.Message(formstate.CodeTooManyItems, data),
			"maxItems", a.maxItems, "got", len(items)))
	}
	for i := range items {
		errs = append(errs, a.elem.check(p.Index(i), items[i], true)...)
	}
	return errs
}

func (a *ArraySchema) shape(name string) formstate.FieldShape {
	return formstate.FieldShape{Name: name, Kind: formstate.KindArrayOfObject, Fields: a.elem.Shape()}
}
