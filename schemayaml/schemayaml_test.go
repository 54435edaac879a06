package schemayaml_test

import (
	"testing"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/schemayaml"
)

const articleDoc = `
fields:
  title:
    type: string
    required: true
    min: 8
  rating:
    type: number
    min: 0
    max: 5
  author:
    type: object
    fields:
      name: {type: string, required: true}
  users:
    type: array
    minItems: 1
    of:
      name: {type: string, required: true}
      email: {type: string, format: email}
`

func TestLoad_BuildsWorkingSchema(t *testing.T) {
	s, err := schemayaml.Load([]byte(articleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	err = s.Validate(map[string]any{
		"title":  "short",
		"rating": 9,
		"users":  []any{map[string]any{"name": "", "email": "nope"}},
	})
	fe, ok := formstate.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	byPath := map[string]string{}
	for _, e := range fe {
		byPath[e.Path] = e.Code
	}
	if byPath["title"] != formstate.CodeTooShort {
		t.Fatalf("expected too_short on title, got %v", fe)
	}
	if byPath["rating"] != formstate.CodeTooBig {
		t.Fatalf("expected too_big on rating, got %v", fe)
	}
	if byPath["users[0].name"] != formstate.CodeRequired {
		t.Fatalf("expected required on users[0].name, got %v", fe)
	}
	if byPath["users[0].email"] != formstate.CodeInvalidFormat {
		t.Fatalf("expected invalid_format on users[0].email, got %v", fe)
	}
}

func TestLoad_ShapeIsSortedAndTyped(t *testing.T) {
	s, err := schemayaml.Load([]byte(articleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	shape := s.Shape()
	var names []string
	kinds := map[string]formstate.FieldKind{}
	for _, f := range shape {
		names = append(names, f.Name)
		kinds[f.Name] = f.Kind
	}
	want := []string{"author", "rating", "title", "users"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("expected sorted field order %v, got %v", want, names)
		}
	}
	if kinds["author"] != formstate.KindObject || kinds["users"] != formstate.KindArrayOfObject {
		t.Fatalf("unexpected kinds %v", kinds)
	}
	if kinds["title"] != formstate.KindScalar || kinds["rating"] != formstate.KindScalar {
		t.Fatalf("unexpected kinds %v", kinds)
	}
}

func TestLoad_DrivesFormStateTree(t *testing.T) {
	s, err := schemayaml.Load([]byte(articleDoc))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := formstate.New(map[string]any{}, formstate.WithSchema(s))
	if n := f.Field("author.name"); n == nil || n.Kind != formstate.StateLeaf {
		t.Fatalf("declared nested field must get metadata, got %+v", n)
	}
	if n := f.Field("users"); n == nil || n.Kind != formstate.StateArray {
		t.Fatalf("declared array must get metadata, got %+v", n)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"empty document":     `{}`,
		"unknown type":       "fields:\n  x: {type: whatever}\n",
		"bad pattern":        "fields:\n  x: {type: string, pattern: '['}\n",
		"empty object":       "fields:\n  x: {type: object}\n",
		"empty array":        "fields:\n  x: {type: array}\n",
		"unsupported format": "fields:\n  x: {type: string, format: uuid}\n",
		"not yaml at all":    `"fields": [`,
	}
	for name, doc := range cases {
		if _, err := schemayaml.Load([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}
