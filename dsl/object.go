package dsl

import (
	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/i18n"
)

// FieldSchema is one declared field's validation behavior. Implementations
// live in this package; consumers compose them through Field.
type FieldSchema interface {
	check(p formstate.Path, v any, present bool) formstate.FieldErrors
	shape(name string) formstate.FieldShape
}

// FieldDef pairs a field name with its schema.
type FieldDef struct {
	name   string
	schema FieldSchema
}

// Field declares a named field.
func Field(name string, s FieldSchema) FieldDef { return FieldDef{name: name, schema: s} }

// ObjectSchema validates a record of declared fields. It implements
// formstate.ShapedSchema and doubles as the schema for a nested object
// field or a form array's inner record.
type ObjectSchema struct {
	fields []FieldDef
}

var _ formstate.ShapedSchema = (*ObjectSchema)(nil)

// Object declares a record schema from ordered field declarations.
func Object(fields ...FieldDef) *ObjectSchema { return &ObjectSchema{fields: fields} }

// Validate checks the whole data tree, accumulating every violation.
func (o *ObjectSchema) Validate(data map[string]any) error {
	errs := o.check(formstate.Path{}, data, true)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Shape enumerates the declared fields in declaration order.
func (o *ObjectSchema) Shape() []formstate.FieldShape {
	out := make([]formstate.FieldShape, 0, len(o.fields))
	for _, f := range o.fields {
		out = append(out, f.schema.shape(f.name))
	}
	return out
}

func (o *ObjectSchema) check(p formstate.Path, v any, present bool) formstate.FieldErrors {
	if !present || v == nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return formstate.FieldErrors{p.Err(
			formstate.CodeInvalidType,
			i18n.Message(formstate.CodeInvalidType, map[string]string{"expected": "object"}),
			"expected", "object",
		)}
	}
	var errs formstate.FieldErrors
	for _, f := range o.fields {
		cv, has := m[f.name]
		errs = append(errs, f.schema.check(p.Field(f.name), cv, has)...)
	}
	return errs
}

func (o *ObjectSchema) shape(name string) formstate.FieldShape {
	return formstate.FieldShape{Name: name, Kind: formstate.KindObject, Fields: o.Shape()}
}
