// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"iter"

	"github.com/elliotchance/orderedmap/v3"
)

type TsModule struct {
	Imports *orderedmap.OrderedMap[string, string] // Module specifiers keyed by alias
	Aliases []TypeAlias
	Consts  []ConstDecl
}

func NewTsModule() *TsModule {
	return &TsModule{Imports: orderedmap.NewOrderedMap[string, string]()}
}

// Lines yields the import lines, then the type declarations, then the
// constants.
func (m *TsModule) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for alias, from := range m.Imports.AllFromFront() {
			for line := range ImportLines(alias, from) {
				if !yield(line) {
					return
				}
			}
		}
		for _, a := range m.Aliases {
			for line := range AliasLines(a) {
				if !yield(line) {
					return
				}
			}
		}
		for _, c := range m.Consts {
			for line := range ConstLines(c) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

type ModuleRenderOptions struct {
	Formatter TsFormatter
}

type TsFormatter func([]byte) ([]byte, error)

func (m *TsModule) Render(opts ModuleRenderOptions) ([]byte, error) {
	var data []byte
	for line := range m.Lines() {
		data = append(data, line...)
		data = append(data, '\n')
	}

	if opts.Formatter != nil {
		var err error
		data, err = opts.Formatter(data)
		if err != nil {
			return nil, err
		}
	}

	return data, nil
}
