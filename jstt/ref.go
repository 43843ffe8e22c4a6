// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/lindell/go-ordered-set/orderedset"
)

const (
	definitionsPath = "/definitions/"
	propertiesPath  = "/properties/"
)

// Imports collects the namespaces of other documents referenced during one
// generation run, in the order they were first seen.
type Imports struct {
	set *orderedset.OrderedSet[string]
}

func NewImports() *Imports {
	return &Imports{set: orderedset.New[string]()}
}

func (i *Imports) Add(ns string) {
	i.set.Add(ns)
}

func (i *Imports) Len() int {
	return i.set.Size()
}

func (i *Imports) All() iter.Seq[string] {
	return slices.Values(i.set.Values())
}

// ResolveRef maps a "$ref" value to a type. Unsupported or malformed
// references resolve to any.
func (s *Synthesizer) ResolveRef(ref string) Type {
	if ref == "#" {
		return RefType(s.root.Name)
	}
	before, after, ok := splitRef(ref)
	if !ok {
		s.log.Debug("malformed $ref", slog.String("ref", ref))
		return Any
	}
	prefix := s.typePrefix(before)
	switch {
	case strings.HasPrefix(after, definitionsPath):
		return RefType(prefix + strings.TrimPrefix(after, definitionsPath))
	case strings.HasPrefix(after, propertiesPath):
		return GenericRefType(
			s.propertyType,
			RefType(prefix+s.root.Name),
			&Literal{Value: strings.TrimPrefix(after, propertiesPath)},
		)
	default:
		s.log.Debug("unsupported $ref fragment", slog.String("ref", ref))
		return Any
	}
}

func splitRef(ref string) (before, after string, ok bool) {
	parts := strings.Split(ref, "#")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// typePrefix registers the namespace of the document at path and returns it
// followed by a dot. The namespace is the file name up to its first dot.
func (s *Synthesizer) typePrefix(path string) string {
	if path == "" {
		return ""
	}
	fileName := path[strings.LastIndexByte(path, '/')+1:]
	ns, _, _ := strings.Cut(fileName, ".")
	if ns == "" {
		s.log.Debug("document without a name", slog.String("path", path))
		return ""
	}
	s.imports.Add(ns)
	return ns + "."
}
