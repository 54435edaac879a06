package formstate_test

import (
	"encoding/json"
	"strings"
	"testing"

	formstate "github.com/dhyeymoliya/formstate"
)

func TestValuesFromJSON_PreservesNumbers(t *testing.T) {
	vals, err := formstate.ValuesFromJSON([]byte(`{"title":"x","rating":4.5,"big":9007199254740993}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := vals["big"].(json.Number)
	if !ok {
		t.Fatalf("expected json.Number, got %T", vals["big"])
	}
	if n.String() != "9007199254740993" {
		t.Fatalf("precision lost: %s", n)
	}
}

func TestValuesFromJSON_RejectsNonObject(t *testing.T) {
	if _, err := formstate.ValuesFromJSON([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for a non-object document")
	}
}

func TestValuesToJSON_RoundTrip(t *testing.T) {
	in := map[string]any{"title": "x", "users": []any{map[string]any{"name": "a"}}}
	b, err := formstate.ValuesToJSON(in)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := formstate.ValuesFromJSON(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["title"] != "x" {
		t.Fatalf("unexpected round trip: %v", out)
	}
}

func TestStateNodeMarshalJSON(t *testing.T) {
	f := formstate.New(map[string]any{
		"title": "x",
		"users": []any{map[string]any{"name": "a"}},
	})
	f.MarkTouched("title")
	b, err := json.Marshal(f.State())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{`"fields"`, `"items"`, `"touched":true`, `"errors":[]`} {
		if !strings.Contains(s, want) {
			t.Fatalf("snapshot missing %s: %s", want, s)
		}
	}
}
