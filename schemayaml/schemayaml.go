// Package schemayaml loads declarative form schemas from YAML documents,
// producing the same runtime schemas the dsl package builds in code.
//
// Document layout:
//
//	fields:
//	  title: {type: string, required: true, min: 8}
//	  rating: {type: number, min: 0, max: 5}
//	  author:
//	    type: object
//	    fields:
//	      name: {type: string, required: true}
//	  users:
//	    type: array
//	    minItems: 1
//	    of:
//	      name: {type: string, required: true}
//	      email: {type: string, format: email}
package schemayaml

import (
	"fmt"
	"regexp"
	"sort"

	formstate "github.com/dhyeymoliya/formstate"
	"github.com/dhyeymoliya/formstate/dsl"
	"gopkg.in/yaml.v3"
)

type document struct {
	Fields map[string]fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Type     string              `yaml:"type"`
	Required bool                `yaml:"required"`
	Min      *float64            `yaml:"min"`
	Max      *float64            `yaml:"max"`
	Pattern  string              `yaml:"pattern"`
	Format   string              `yaml:"format"`
	Enum     []string            `yaml:"enum"`
	MinItems *int                `yaml:"minItems"`
	MaxItems *int                `yaml:"maxItems"`
	Fields   map[string]fieldDoc `yaml:"fields"`
	Of       map[string]fieldDoc `yaml:"of"`
}

// Load parses data and builds the schema. Fields are ordered by sorted name
// so the resulting shape is deterministic.
func Load(data []byte) (formstate.ShapedSchema, error) {
	var d document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("schemayaml: %w", err)
	}
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("schemayaml: document declares no fields")
	}
	return buildObject(d.Fields, "")
}

func buildObject(fields map[string]fieldDoc, at string) (*dsl.ObjectSchema, error) {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)
	defs := make([]dsl.FieldDef, 0, len(names))
	for _, n := range names {
		where := n
		if at != "" {
			where = at + "." + n
		}
		s, err := buildField(fields[n], where)
		if err != nil {
			return nil, err
		}
		defs = append(defs, dsl.Field(n, s))
	}
	return dsl.Object(defs...), nil
}

func buildField(fd fieldDoc, at string) (dsl.FieldSchema, error) {
	switch fd.Type {
	case "string", "":
		s := dsl.String()
		if fd.Required {
			s = s.Required()
		}
		if fd.Min != nil {
			s = s.Min(int(*fd.Min))
		}
		if fd.Max != nil {
			s = s.Max(int(*fd.Max))
		}
		if fd.Pattern != "" {
			if _, err := regexp.Compile(fd.Pattern); err != nil {
				return nil, fmt.Errorf("schemayaml: %s: invalid pattern: %w", at, err)
			}
			s = s.Pattern(fd.Pattern)
		}
		switch fd.Format {
		case "":
		case "email":
			s = s.Email()
		default:
			return nil, fmt.Errorf("schemayaml: %s: unsupported format %q", at, fd.Format)
		}
		if len(fd.Enum) > 0 {
			s = s.OneOf(fd.Enum...)
		}
		return s, nil
	case "number":
		s := dsl.Number()
		if fd.Required {
			s = s.Required()
		}
		if fd.Min != nil {
			s = s.Min(*fd.Min)
		}
		if fd.Max != nil {
			s = s.Max(*fd.Max)
		}
		return s, nil
	case "bool", "boolean":
		s := dsl.Bool()
		if fd.Required {
			s = s.Required()
		}
		return s, nil
	case "object":
		if len(fd.Fields) == 0 {
			return nil, fmt.Errorf("schemayaml: %s: object declares no fields", at)
		}
		return buildObject(fd.Fields, at)
	case "array":
		if len(fd.Of) == 0 {
			return nil, fmt.Errorf("schemayaml: %s: array declares no inner fields", at)
		}
		inner, err := buildObject(fd.Of, at+"[]")
		if err != nil {
			return nil, err
		}
		a := dsl.ArrayOf(inner)
		if fd.Required {
			a = a.Required()
		}
		if fd.MinItems != nil {
			a = a.MinItems(*fd.MinItems)
		}
		if fd.MaxItems != nil {
			a = a.MaxItems(*fd.MaxItems)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("schemayaml: %s: unknown type %q", at, fd.Type)
	}
}
