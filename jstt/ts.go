// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Type is a synthesized TypeScript type: one of *Ref, *Interface, *Union,
// *Array, *Tuple, *Literal and *GenericRef.
type Type interface {
	isType()
}

// Ref names another type, including the primitive ones.
type Ref struct {
	Name string
}

type Property struct {
	Name string // carries a trailing "?" when optional
	Type Type
}

type Interface struct {
	Properties []Property
}

// Union members are never unions themselves and there are at least two of
// them when built with [MakeUnion].
type Union struct {
	Members []Type
}

type Array struct {
	Elem Type
}

type Tuple struct {
	Elems []Type
}

// Literal pins a type to a single JSON value.
type Literal struct {
	Value any
}

// GenericRef is a named type applied to type arguments.
type GenericRef struct {
	ID   string
	Args []Type
}

func (*Ref) isType()        {}
func (*Interface) isType()  {}
func (*Union) isType()      {}
func (*Array) isType()      {}
func (*Tuple) isType()      {}
func (*Literal) isType()    {}
func (*GenericRef) isType() {}

var (
	Any       Type = &Ref{Name: "any"}
	Never     Type = &Ref{Name: "never"}
	String    Type = &Ref{Name: "string"}
	Number    Type = &Ref{Name: "number"}
	Boolean   Type = &Ref{Name: "boolean"}
	Undefined Type = &Ref{Name: "undefined"}
	AnyArray  Type = &Array{Elem: Any}
)

// TypeAlias is one published declaration.
type TypeAlias struct {
	Name string
	Type Type
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch a := a.(type) {
	case *Ref:
		b, ok := b.(*Ref)
		return ok && a.Name == b.Name
	case *Interface:
		b, ok := b.(*Interface)
		return ok && slices.EqualFunc(a.Properties, b.Properties, propertyEqual)
	case *Union:
		b, ok := b.(*Union)
		return ok && slices.EqualFunc(a.Members, b.Members, Equal)
	case *Array:
		b, ok := b.(*Array)
		return ok && Equal(a.Elem, b.Elem)
	case *Tuple:
		b, ok := b.(*Tuple)
		return ok && slices.EqualFunc(a.Elems, b.Elems, Equal)
	case *Literal:
		b, ok := b.(*Literal)
		return ok && literal(a.Value) == literal(b.Value)
	case *GenericRef:
		b, ok := b.(*GenericRef)
		return ok && a.ID == b.ID && slices.EqualFunc(a.Args, b.Args, Equal)
	default:
		return false
	}
}

func propertyEqual(a, b Property) bool {
	return a.Name == b.Name && Equal(a.Type, b.Type)
}

// TypeName normalizes a declaration name: every dot-separated segment gets
// an upper-case first character and hyphens become underscores.
func TypeName(name string) string {
	segments := strings.Split(name, ".")
	for i, s := range segments {
		segments[i] = pascalCase(s)
	}
	return strings.Join(segments, ".")
}

func pascalCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return strings.ReplaceAll(string(unicode.ToUpper(r))+s[size:], "-", "_")
}

func PropertyName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func RefType(name string) *Ref {
	return &Ref{Name: TypeName(name)}
}

func GenericRefType(id string, args ...Type) *GenericRef {
	return &GenericRef{ID: TypeName(id), Args: args}
}
