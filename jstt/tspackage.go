// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import "golang.org/x/sync/errgroup"

type TsPackage map[string]*TsModule // Keyed by module name

type PackageRenderOptions struct {
	Formatter TsFormatter
	Limit     int
	Write     func(modName string, data []byte) error
}

func (p TsPackage) Render(opts PackageRenderOptions) error {
	var g errgroup.Group
	if opts.Limit > 0 {
		g.SetLimit(opts.Limit)
	}
	for modName, mod := range p {
		g.Go(func() error {
			data, err := mod.Render(ModuleRenderOptions{Formatter: opts.Formatter})
			if err != nil {
				return &RenderError{Module: modName, Err: err}
			}
			return opts.Write(modName, data)
		})
	}
	return g.Wait()
}

type RenderError struct {
	Module string
	Err    error
}

func (e *RenderError) Error() string {
	return e.Module + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
