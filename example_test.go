package formstate_test

import (
	"fmt"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/dsl"
)

func Example() {
	schema := dsl.Object(
		dsl.Field("title", dsl.String().Required().Min(8)),
		dsl.Field("users", dsl.ArrayOf(dsl.Object(
			dsl.Field("name", dsl.String().Required()),
		))),
	)
	form := formstate.New(
		map[string]any{"title": "short", "users": []any{}},
		formstate.WithSchema(schema),
	)

	form.Validate(formstate.HighlightErrors)
	fmt.Println(form.IsValid())
	fmt.Println(form.Field("title").Errors[0])

	form.Set("title", "a much longer title")
	fmt.Println(form.IsValid())
	// Output:
	// false
	// must be at least 8 characters
	// true
}
