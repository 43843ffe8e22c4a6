// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import "iter"

// NamedSchema attaches a declaration name to a schema value. It is used for
// the root document and for every entry of its "definitions".
type NamedSchema struct {
	Name   string
	Schema any
}

// AllDefinitions yields one NamedSchema per entry of root's "definitions", in
// declaration order, followed by root itself. Nested definitions are not
// visited.
func AllDefinitions(root NamedSchema) iter.Seq[NamedSchema] {
	return func(yield func(NamedSchema) bool) {
		if obj, ok := root.Schema.(*Object); ok {
			if defs, ok := getObject(obj, "definitions"); ok {
				for name, schema := range defs.AllFromFront() {
					if !yield(NamedSchema{Name: name, Schema: schema}) {
						return
					}
				}
			}
		}
		yield(root)
	}
}

// ToSchemaObject converts a boolean schema to its keyword form: true accepts
// everything ({}), false rejects everything ({"not": {}}).
func ToSchemaObject(schema any) *Object {
	switch schema := schema.(type) {
	case *Object:
		return schema
	case bool:
		obj := NewObject()
		if !schema {
			obj.Set("not", NewObject())
		}
		return obj
	default:
		return NewObject()
	}
}

// AllOfSchema merges two "allOf" branches. Only "$ref" and "default" survive,
// each taken from a when present there and from b otherwise.
func AllOfSchema(a, b any) any {
	objA, objB := ToSchemaObject(a), ToSchemaObject(b)
	merged := NewObject()
	for _, key := range [...]string{"$ref", "default"} {
		if v, ok := onlyOne(objA, objB, key); ok {
			merged.Set(key, v)
		}
	}
	return merged
}

func onlyOne(a, b *Object, key string) (any, bool) {
	if v, ok := a.Get(key); ok {
		return v, true
	}
	return b.Get(key)
}

func getObject(obj *Object, key string) (*Object, bool) {
	v, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	o, ok := v.(*Object)
	return o, ok
}

func getArray(obj *Object, key string) ([]any, bool) {
	v, ok := obj.Get(key)
	if !ok {
		return nil, false
	}
	arr, ok := v.([]any)
	return arr, ok
}
