// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/antoniszymanski/jstt-go/cmd/jstt/internal"
	"github.com/antoniszymanski/jstt-go/jstt"
	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type Config struct {
	Schema string `json:"$schema,omitzero"`
	// Format the generated files with sanefmt.
	Format bool `json:"format"`
	// Check every input against the draft-07 meta-schema before generating.
	Validate bool `json:"validate"`
	// Directory receiving one .ts file per input.
	OutputPath string `json:"output_path" jsonschema:"required,minLength=1"`
	// JSON Schema files to transpile, relative to the configuration file.
	Inputs internal.Array[string] `json:"inputs" jsonschema:"required,minItems=1"`
	// Type name of each root schema.
	RootName string `json:"root_name" jsonschema:"default=Main"`
	// Generic type used for "#/properties/<name>" references.
	PropertyType string `json:"property_type" jsonschema:"default=TsCommonJson.Property"`
	// Constant embedding each input schema in its module.
	SchemaConst SchemaConst `json:"schema_const"`
	// Module specifiers keyed by import alias, emitted at the top of every module.
	Imports internal.Object[string, string] `json:"imports"`
	// Maximum number of modules rendered at once. Zero means no limit.
	Concurrency int `json:"concurrency" jsonschema:"minimum=0"`
}

type SchemaConst struct {
	// Name of the constant. No constant is emitted when empty.
	Name string `json:"name"`
	// Type annotation of the constant.
	Type string `json:"type"`
}

func Default() Config {
	return Config{
		OutputPath:   "ts",
		Inputs:       internal.Array[string]{"schema.json"},
		RootName:     jstt.DefaultRootName,
		PropertyType: jstt.DefaultPropertyType,
		SchemaConst: SchemaConst{
			Name: "schema",
			Type: "ts_common_schema.Schema",
		},
		Imports: internal.Object[string, string]{
			"ts_common_schema": "@ts-common/schema",
			"TsCommonJson":     "@ts-common/json",
		},
	}
}

func (c *Config) GenerateOptions() jstt.GenerateOptions {
	return jstt.GenerateOptions{
		RootName:        c.RootName,
		PropertyType:    c.PropertyType,
		Imports:         c.Imports,
		SchemaConst:     c.SchemaConst.Name,
		SchemaConstType: c.SchemaConst.Type,
	}
}

func (c *Config) UnmarshalJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type RawConfig Config
	return json.Unmarshal(data, (*RawConfig)(c))
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

// Reflect builds the JSON Schema of [Config]. Field comments become
// descriptions when the sources are found under dir.
func Reflect(dir string) (*invopop.Schema, error) {
	r := invopop.Reflector{
		Anonymous:                  true,
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	typ := reflect.TypeFor[Config]()
	if err := r.AddGoComments(typ.PkgPath(), dir); err != nil {
		return nil, err
	}
	return r.ReflectFromType(typ), nil
}

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
