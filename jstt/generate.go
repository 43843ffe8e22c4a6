// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/vishalkuo/bimap"
)

type GenerateOptions struct {
	// RootName is the declaration name of the root schema. Defaults to "Main".
	RootName string
	// PropertyType is the generic type used for "#/properties/<name>"
	// references. Defaults to "TsCommonJson.Property".
	PropertyType string
	// Imports maps import aliases to module specifiers. They are emitted
	// sorted by alias, before the imports of referenced documents.
	Imports map[string]string
	// SchemaConst names a constant embedding the schema itself. No constant
	// is emitted when empty.
	SchemaConst     string
	SchemaConstType string
	LogHandler      slog.Handler
}

// Generate translates a root schema and its definitions into a module.
func Generate(schema any, opts GenerateOptions) *TsModule {
	if opts.RootName == "" {
		opts.RootName = DefaultRootName
	}
	log := slog.New(slog.DiscardHandler)
	if opts.LogHandler != nil {
		log = slog.New(opts.LogHandler)
	}

	root := NamedSchema{Name: opts.RootName, Schema: schema}
	imports := NewImports()
	s := NewSynthesizer(root, imports,
		PropertyType(opts.PropertyType),
		LogHandler(opts.LogHandler),
	)

	mod := NewTsModule()
	names := bimap.NewBiMap[string, string]() // raw name <-> published name
	for ns := range AllDefinitions(root) {
		published := TypeName(ns.Name)
		if raw, ok := names.GetInverse(published); ok {
			log.Warn("definitions share a type name",
				slog.String("name", published),
				slog.String("first", raw),
				slog.String("second", ns.Name),
			)
		} else {
			names.Insert(ns.Name, published)
		}
		mod.Aliases = append(mod.Aliases, s.TypeAliases(ns)...)
	}
	log.Debug("synthesized definitions",
		slog.Int("definitions", names.Size()),
		slog.Int("aliases", len(mod.Aliases)),
		slog.Int("imports", imports.Len()),
	)

	for _, alias := range slices.Sorted(maps.Keys(opts.Imports)) {
		mod.Imports.Set(alias, opts.Imports[alias])
	}
	for ns := range imports.All() {
		alias := TypeName(ns)
		if mod.Imports.Has(alias) {
			log.Warn("import alias already in use", slog.String("alias", alias))
			continue
		}
		mod.Imports.Set(alias, "./"+ns)
	}

	if opts.SchemaConst != "" {
		c := ConstDecl{Name: opts.SchemaConst, Value: schema}
		if opts.SchemaConstType != "" {
			c.Type = &Ref{Name: opts.SchemaConstType}
		}
		mod.Consts = append(mod.Consts, c)
	}
	return mod
}
