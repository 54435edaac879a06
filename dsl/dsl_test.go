package dsl_test

import (
	"testing"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/dsl"
)

func mustFieldErrors(t *testing.T, err error) formstate.FieldErrors {
	t.Helper()
	fe, ok := formstate.AsFieldErrors(err)
	if !ok {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	return fe
}

func TestObject_AccumulatesAllViolations(t *testing.T) {
	s := dsl.Object(
		dsl.Field("title", dsl.String().Required().Min(8)),
		dsl.Field("slug", dsl.String().Required()),
	)
	fe := mustFieldErrors(t, s.Validate(map[string]any{"title": "ab"}))
	if len(fe) != 2 {
		t.Fatalf("expected full accumulation across fields, got %v", fe)
	}
	if fe[0].Path != "title" || fe[0].Code != formstate.CodeTooShort {
		t.Fatalf("unexpected first violation %+v", fe[0])
	}
	if fe[1].Path != "slug" || fe[1].Code != formstate.CodeRequired {
		t.Fatalf("unexpected second violation %+v", fe[1])
	}
}

func TestObject_ValidDataReturnsNil(t *testing.T) {
	s := dsl.Object(dsl.Field("title", dsl.String().Required().Min(3)))
	if err := s.Validate(map[string]any{"title": "fine"}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestArray_EmitsBracketedPaths(t *testing.T) {
	s := dsl.Object(
		dsl.Field("users", dsl.ArrayOf(dsl.Object(
			dsl.Field("name", dsl.String().Required()),
			dsl.Field("email", dsl.String().Email()),
		))),
	)
	data := map[string]any{"users": []any{
		map[string]any{"name": "ok", "email": "ok@example.com"},
		map[string]any{"name": "", "email": "not-an-email"},
	}}
	fe := mustFieldErrors(t, s.Validate(data))
	if len(fe) != 2 {
		t.Fatalf("expected two violations, got %v", fe)
	}
	if fe[0].Path != "users[1].name" {
		t.Fatalf("unexpected path %q", fe[0].Path)
	}
	if fe[1].Path != "users[1].email" || fe[1].Code != formstate.CodeInvalidFormat {
		t.Fatalf("unexpected violation %+v", fe[1])
	}
}

func TestArray_ItemCountOnArrayPath(t *testing.T) {
	s := dsl.Object(
		dsl.Field("users", dsl.ArrayOf(dsl.Object(
			dsl.Field("name", dsl.String()),
		)).MinItems(1)),
	)
	fe := mustFieldErrors(t, s.Validate(map[string]any{"users": []any{}}))
	if len(fe) != 1 || fe[0].Path != "users" || fe[0].Code != formstate.CodeTooFewItems {
		t.Fatalf("expected container violation on the array path, got %v", fe)
	}
}

func TestString_Rules(t *testing.T) {
	s := dsl.Object(
		dsl.Field("status", dsl.String().OneOf("draft", "published")),
		dsl.Field("code", dsl.String().Pattern(`^[A-Z]{3}$`)),
		dsl.Field("note", dsl.String().Max(3)),
	)
	fe := mustFieldErrors(t, s.Validate(map[string]any{
		"status": "archived",
		"code":   "abc",
		"note":   "toolong",
	}))
	codes := map[string]string{}
	for _, e := range fe {
		codes[e.Path] = e.Code
	}
	if codes["status"] != formstate.CodeInvalidEnum {
		t.Fatalf("expected enum violation, got %v", fe)
	}
	if codes["code"] != formstate.CodePattern {
		t.Fatalf("expected pattern violation, got %v", fe)
	}
	if codes["note"] != formstate.CodeTooLong {
		t.Fatalf("expected length violation, got %v", fe)
	}
}

func TestString_AbsentAndEmptySkipRulesUnlessRequired(t *testing.T) {
	s := dsl.Object(dsl.Field("nick", dsl.String().Min(3)))
	if err := s.Validate(map[string]any{}); err != nil {
		t.Fatalf("absent optional field must pass, got %v", err)
	}
	if err := s.Validate(map[string]any{"nick": ""}); err != nil {
		t.Fatalf("empty optional field must pass, got %v", err)
	}
}

func TestNumber_RangeAndTypes(t *testing.T) {
	s := dsl.Object(dsl.Field("rating", dsl.Number().Min(0).Max(5)))
	if err := s.Validate(map[string]any{"rating": 4.5}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if err := s.Validate(map[string]any{"rating": 7}); err == nil {
		t.Fatalf("expected too_big violation")
	}
	fe := mustFieldErrors(t, s.Validate(map[string]any{"rating": "high"}))
	if fe[0].Code != formstate.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %+v", fe[0])
	}
}

func TestBool_TypeCheck(t *testing.T) {
	s := dsl.Object(dsl.Field("agree", dsl.Bool().Required()))
	if err := s.Validate(map[string]any{"agree": true}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	fe := mustFieldErrors(t, s.Validate(map[string]any{}))
	if fe[0].Code != formstate.CodeRequired {
		t.Fatalf("expected required, got %+v", fe[0])
	}
	fe = mustFieldErrors(t, s.Validate(map[string]any{"agree": "yes"}))
	if fe[0].Code != formstate.CodeInvalidType {
		t.Fatalf("expected invalid_type, got %+v", fe[0])
	}
}

func TestNestedObject_Paths(t *testing.T) {
	s := dsl.Object(
		dsl.Field("author", dsl.Object(
			dsl.Field("name", dsl.String().Required()),
		)),
	)
	fe := mustFieldErrors(t, s.Validate(map[string]any{
		"author": map[string]any{"name": ""},
	}))
	if fe[0].Path != "author.name" {
		t.Fatalf("unexpected path %q", fe[0].Path)
	}
	// a missing optional nested object produces no violations
	if err := s.Validate(map[string]any{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestShape(t *testing.T) {
	s := dsl.Object(
		dsl.Field("title", dsl.String()),
		dsl.Field("author", dsl.Object(dsl.Field("name", dsl.String()))),
		dsl.Field("users", dsl.ArrayOf(dsl.Object(dsl.Field("name", dsl.String())))),
	)
	shape := s.Shape()
	if len(shape) != 3 {
		t.Fatalf("expected three declarations, got %v", shape)
	}
	if shape[0].Kind != formstate.KindScalar || shape[0].Name != "title" {
		t.Fatalf("unexpected scalar shape %+v", shape[0])
	}
	if shape[1].Kind != formstate.KindObject || len(shape[1].Fields) != 1 {
		t.Fatalf("unexpected object shape %+v", shape[1])
	}
	if shape[2].Kind != formstate.KindArrayOfObject || shape[2].Fields[0].Name != "name" {
		t.Fatalf("unexpected array shape %+v", shape[2])
	}
}
