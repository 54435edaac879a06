package formstate

// FieldKind classifies a schema field declaration.
type FieldKind int

const (
	KindScalar FieldKind = iota
	KindObject
	KindArrayOfObject
)

// FieldShape describes one declared field. Object fields and the inner
// object of an array-of-object field list their own fields recursively.
type FieldShape struct {
	Name   string
	Kind   FieldKind
	Fields []FieldShape
}

// Schema is the external validation capability. Validate inspects the whole
// data tree in one pass, accumulating every violation rather than stopping
// at the first; it returns nil on success and FieldErrors otherwise, with
// paths in the dotted/bracketed grammar ParsePath understands.
type Schema interface {
	Validate(data map[string]any) error
}

// ShapedSchema additionally exposes the declared field layout so the state
// tree can cover fields declared by the schema but absent from the data.
type ShapedSchema interface {
	Schema
	Shape() []FieldShape
}
