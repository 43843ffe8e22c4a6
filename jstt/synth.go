// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"log/slog"

	"github.com/hashicorp/go-set/v3"
)

const (
	DefaultRootName     = "Main"
	DefaultPropertyType = "TsCommonJson.Property"
)

// Synthesizer translates schema values of one root document into types.
// Namespaces of referenced documents are recorded in its Imports.
type Synthesizer struct {
	root         NamedSchema
	imports      *Imports
	propertyType string
	log          *slog.Logger
}

func NewSynthesizer(root NamedSchema, imports *Imports, opts ...SynthesizerOption) *Synthesizer {
	s := &Synthesizer{
		root:         root,
		imports:      imports,
		propertyType: DefaultPropertyType,
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SynthesizerOption func(s *Synthesizer)

// PropertyType sets the generic type used for "#/properties/<name>" references.
func PropertyType(id string) SynthesizerOption {
	return func(s *Synthesizer) {
		if id != "" {
			s.propertyType = id
		}
	}
}

func LogHandler(h slog.Handler) SynthesizerOption {
	return func(s *Synthesizer) {
		if h != nil {
			s.log = slog.New(h)
		}
	}
}

// typeSet is the result of synthesizing one schema before its branches are
// joined. object is nil when the schema has no object branch.
type typeSet struct {
	object     Type
	additional []Type
}

func toTypes(types ...Type) typeSet {
	return typeSet{additional: types}
}

func (ts typeSet) union() Type {
	if ts.object == nil {
		return MakeUnion(ts.additional...)
	}
	return MakeUnion(append(ts.additional[:len(ts.additional):len(ts.additional)], ts.object)...)
}

// Type synthesizes the type of schema. A nil schema stands for an absent one
// and yields any.
func (s *Synthesizer) Type(schema any) Type {
	if schema == nil {
		s.log.Debug("absent schema")
		return Any
	}
	return s.types(schema).union()
}

func (s *Synthesizer) types(schema any) typeSet {
	var obj *Object
	switch schema := schema.(type) {
	case bool:
		if schema {
			return toTypes(Any)
		}
		return toTypes(Never)
	case *Object:
		obj = schema
	default:
		s.log.Debug("schema is neither an object nor a boolean", slog.String("schema", literal(schema)))
		return toTypes(Any)
	}

	if v, ok := obj.Get("$ref"); ok {
		ref, ok := v.(string)
		if !ok {
			s.log.Debug("$ref is not a string", slog.String("ref", literal(v)))
			return toTypes(Any)
		}
		return toTypes(s.ResolveRef(ref))
	}

	if obj.Has("enum") {
		values, _ := getArray(obj, "enum")
		types := make([]Type, 0, len(values))
		for _, v := range values {
			types = append(types, &Literal{Value: v})
		}
		return toTypes(types...)
	}

	for _, keyword := range [...]string{"oneOf", "anyOf"} {
		if obj.Has(keyword) {
			branches, _ := getArray(obj, keyword)
			return toTypes(s.typeList(branches)...)
		}
	}

	if obj.Has("allOf") {
		branches, _ := getArray(obj, "allOf")
		if len(branches) == 0 {
			return toTypes(Any)
		}
		merged := branches[0]
		for _, b := range branches[1:] {
			merged = AllOfSchema(merged, b)
		}
		return toTypes(s.Type(merged))
	}

	if items, ok := obj.Get("items"); ok {
		if tuple, ok := items.([]any); ok {
			return toTypes(&Tuple{Elems: s.typeList(tuple)})
		}
		return toTypes(&Array{Elem: s.Type(items)})
	}

	typ, ok := obj.Get("type")
	if !ok {
		return typeSet{object: s.objectType(obj)}
	}
	switch typ := typ.(type) {
	case []any:
		var ts typeSet
		for _, name := range typ {
			if name == "object" {
				if ts.object == nil {
					ts.object = s.objectType(obj)
				}
				continue
			}
			ts.additional = append(ts.additional, s.simpleType(name))
		}
		return ts
	case string:
		if typ == "object" {
			return typeSet{object: s.objectType(obj)}
		}
		return toTypes(s.simpleType(typ))
	default:
		return toTypes(s.simpleType(typ))
	}
}

func (s *Synthesizer) typeList(schemas []any) []Type {
	types := make([]Type, 0, len(schemas))
	for _, schema := range schemas {
		types = append(types, s.Type(schema))
	}
	return types
}

func (s *Synthesizer) simpleType(name any) Type {
	switch name {
	case "array":
		return AnyArray
	case "string":
		return String
	case "integer", "number":
		return Number
	case "boolean":
		return Boolean
	default:
		s.log.Debug("unsupported type", slog.String("type", literal(name)))
		return Never
	}
}

func (s *Synthesizer) objectType(obj *Object) Type {
	required := set.New[string](0)
	if names, ok := getArray(obj, "required"); ok {
		for _, name := range names {
			if name, ok := name.(string); ok {
				required.Insert(name)
			}
		}
	}

	var properties []Property
	if schemaProperties, ok := getObject(obj, "properties"); ok {
		properties = make([]Property, 0, schemaProperties.Len())
		for name, schema := range schemaProperties.AllFromFront() {
			p := Property{Name: PropertyName(name), Type: s.Type(schema)}
			if !required.Contains(name) {
				p.Name += "?"
			}
			properties = append(properties, p)
		}
	}

	var additional []Type
	switch v, ok := obj.Get("additionalProperties"); {
	case !ok || v == true:
		additional = append(additional, Any)
	case v == false:
	default:
		additional = append(additional, s.Type(v))
	}
	if patternProperties, ok := getObject(obj, "patternProperties"); ok {
		for schema := range patternProperties.Values() {
			additional = append(additional, s.Type(schema))
		}
	}

	// The catch-all property is only published for interfaces without
	// declared properties.
	if len(additional) > 0 && len(properties) == 0 {
		additional = append(additional, Undefined)
		properties = append(properties, Property{
			Name: "[_:string]",
			Type: MakeUnion(additional...),
		})
	}

	return &Interface{Properties: properties}
}

// TypeAliases publishes the declarations of ns. A schema mixing an object
// branch with other branches publishes the object part as "<Name>Object".
func (s *Synthesizer) TypeAliases(ns NamedSchema) []TypeAlias {
	ts := s.types(ns.Schema)
	if ts.object == nil {
		return []TypeAlias{{Name: ns.Name, Type: MakeUnion(ts.additional...)}}
	}
	if len(ts.additional) == 0 {
		return []TypeAlias{{Name: ns.Name, Type: ts.object}}
	}
	objectName := ns.Name + "Object"
	return []TypeAlias{
		{Name: objectName, Type: ts.object},
		{Name: ns.Name, Type: MakeUnion(append(ts.additional, RefType(objectName))...)},
	}
}
