// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"fmt"
	"os"
	"path/filepath"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/antoniszymanski/jstt-go/jstt"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ReadSchema decodes the schema document at path. Comments are allowed.
func ReadSchema(path string) (any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	v, err := jstt.DecodeValue(jsonc.New(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// ValidateSchema checks the schema document at path against its meta-schema.
// Documents without "$schema" are checked as draft-07. Other documents it
// references are loaded from disk.
func ValidateSchema(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	f, err := os.Open(abs)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	doc, err := jsonschema.UnmarshalJSON(jsonc.New(f))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft7)
	if err = compiler.AddResource(abs, doc); err != nil {
		return err
	}
	_, err = compiler.Compile(abs)
	return err
}
