// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/jstt-go/cmd/jstt/config"
	"github.com/antoniszymanski/jstt-go/cmd/jstt/internal"
	"github.com/antoniszymanski/jstt-go/jstt"
	"github.com/antoniszymanski/sanefmt-go"
	"github.com/hashicorp/go-set/v3"
)

type cmdGenerate struct {
	Path string `arg:"" type:"path" default:"jstt.jsonc"`
}

func (c *cmdGenerate) Run(log *slog.Logger) error {
	var f *os.File
	var err error
	baseDir := "."
	if c.Path != "-" {
		f, err = os.Open(c.Path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		baseDir = filepath.Dir(c.Path)
	} else {
		f = os.Stdin
	}

	data, err := io.ReadAll(jsonc.New(f))
	if err != nil {
		return err
	}

	var cfg config.Config
	if err = json.Unmarshal(data, &cfg); err != nil {
		return err
	}

	pkg, err := transpile(&cfg, baseDir, log)
	if err != nil {
		return err
	}

	var formatter jstt.TsFormatter
	if cfg.Format {
		formatter = func(b []byte) ([]byte, error) {
			return sanefmt.Format(bytes.NewReader(b))
		}
	}

	outputPath := resolve(baseDir, cfg.OutputPath)
	if err = os.MkdirAll(outputPath, 0750); err != nil {
		return err
	}
	return pkg.Render(jstt.PackageRenderOptions{
		Formatter: formatter,
		Limit:     cfg.Concurrency,
		Write: func(modName string, data []byte) error {
			return os.WriteFile(
				filepath.Join(outputPath, modName+".ts"), data, 0600,
			)
		},
	})
}

func transpile(cfg *config.Config, baseDir string, log *slog.Logger) (jstt.TsPackage, error) {
	pkg := make(jstt.TsPackage, len(cfg.Inputs))
	modNames := set.New[string](len(cfg.Inputs))
	for _, input := range cfg.Inputs {
		path := resolve(baseDir, input)
		modName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if modNames.Contains(modName) {
			return nil, fmt.Errorf("%s: module %q is generated by another input", input, modName)
		}
		modNames.Insert(modName)

		if cfg.Validate {
			if err := internal.ValidateSchema(path); err != nil {
				return nil, err
			}
		}
		schema, err := internal.ReadSchema(path)
		if err != nil {
			return nil, err
		}

		opts := cfg.GenerateOptions()
		opts.LogHandler = log.With(slog.String("input", input)).Handler()
		pkg[modName] = jstt.Generate(schema, opts)
		log.Debug("transpiled", slog.String("input", input), slog.String("module", modName))
	}
	return pkg, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}
