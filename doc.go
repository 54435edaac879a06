// Package formstate keeps a form's nested values tree and a mirrored
// touched/error metadata tree in lockstep.
//
//   - A Form owns both trees and the derived IsValid/IsTouched flags.
//   - BuildState reconciles the metadata tree after the data tree changes
//     shape, preserving touched flags for paths that survive.
//   - A Schema is the external validation capability: one accumulating pass
//     over the whole data tree yielding FieldErrors with dotted/bracketed
//     paths, which the engine merges back onto the matching metadata nodes.
//
// Design policy:
//   - Keep the engine, path grammar and error model in the root package.
//   - Place the schema builder DSL under dsl/, the YAML schema loader under
//     schemayaml/, message rendering under i18n/ and the control-side glue
//     under binding/.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := dsl.Object(
//		dsl.Field("title", dsl.String().Required().Min(8)),
//		dsl.Field("users", dsl.ArrayOf(dsl.Object(
//			dsl.Field("name", dsl.String().Required()),
//		))),
//	)
//	f := formstate.New(map[string]any{"title": "", "users": []any{}},
//		formstate.WithSchema(s))
//	f.Validate(formstate.HighlightErrors)
package formstate
