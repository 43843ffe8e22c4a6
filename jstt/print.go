// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"iter"
	"slices"
)

// TypeLines renders t as TypeScript type syntax.
func TypeLines(t Type) iter.Seq[string] {
	switch t := t.(type) {
	case *Ref:
		return single(t.Name)
	case *Interface:
		if len(t.Properties) == 0 {
			return single("{}")
		}
		return concat(
			single("{"),
			Indent(flatten(each(t.Properties, propertyLines))),
			single("}"),
		)
	case *Union:
		return Join(each(t.Members, TypeLines), "|")
	case *Array:
		return Wrap(TypeLines(t.Elem), "ReadonlyArray<", ">")
	case *Tuple:
		return Wrap(Join(each(t.Elems, TypeLines), ","), "[", "]")
	case *Literal:
		return single(literal(t.Value))
	case *GenericRef:
		return Wrap(Join(each(t.Args, TypeLines), ","), t.ID+"<", ">")
	default:
		return single("any")
	}
}

func propertyLines(p Property) iter.Seq[string] {
	return Wrap(TypeLines(p.Type), "readonly "+p.Name+": ", "")
}

// AliasLines renders a declaration "export type Name = ...".
func AliasLines(a TypeAlias) iter.Seq[string] {
	return Wrap(TypeLines(a.Type), "export type "+TypeName(a.Name)+" = ", "")
}

// ValueLines renders a JSON value as a TypeScript literal.
func ValueLines(v any) iter.Seq[string] {
	switch v := v.(type) {
	case []any:
		if len(v) == 0 {
			return single("[]")
		}
		items := func(yield func(iter.Seq[string]) bool) {
			for _, item := range v {
				if !yield(Wrap(ValueLines(item), "", ",")) {
					return
				}
			}
		}
		return concat(single("["), Indent(flatten(items)), single("]"))
	case *Object:
		if v.Len() == 0 {
			return single("{}")
		}
		members := func(yield func(iter.Seq[string]) bool) {
			for key, item := range v.AllFromFront() {
				if !yield(Wrap(ValueLines(item), propertyKey(key)+": ", ",")) {
					return
				}
			}
		}
		return concat(single("{"), Indent(flatten(members)), single("}"))
	default:
		return single(literal(v))
	}
}

func flatten(seqs iter.Seq[iter.Seq[string]]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for lines := range seqs {
			for line := range lines {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// propertyKey quotes keys that are not valid identifiers.
func propertyKey(name string) string {
	if name == "" {
		return `""`
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return quote(name)
		}
	}
	return name
}

// ConstDecl is a value published next to the type declarations.
type ConstDecl struct {
	Name  string
	Type  Type
	Value any
}

func ConstLines(c ConstDecl) iter.Seq[string] {
	if c.Type == nil {
		return Wrap(ValueLines(c.Value), "export const "+c.Name+" = ", "")
	}
	decl := Wrap(TypeLines(c.Type), "export const "+c.Name+": ", " = ")
	return Join(slices.Values([]iter.Seq[string]{decl, ValueLines(c.Value)}), "")
}

func ImportLines(alias, from string) iter.Seq[string] {
	return single("import * as " + alias + " from " + quote(from))
}
