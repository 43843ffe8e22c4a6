package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/antoniszymanski/jstt-go/cmd/jstt/config"
	"github.com/antoniszymanski/jstt-go/cmd/jstt/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "schemas", "geo.json"), `{
		"definitions": {"point": {"items": [{"type": "number"}, {"type": "number"}]}}
	}`)
	writeFile(t, filepath.Join(dir, "schemas", "place.json"), `{
		// a named point
		"type": "object",
		"properties": {"at": {"$ref": "geo.json#/definitions/point"}},
		"required": ["at"]
	}`)
	writeFile(t, filepath.Join(dir, "jstt.jsonc"), `{
		"output_path": "ts",
		/* both files */
		"inputs": ["schemas/geo.json", "schemas/place.json"],
		"validate": true
	}`)

	cmd := cmdGenerate{Path: filepath.Join(dir, "jstt.jsonc")}
	require.NoError(t, cmd.Run(slog.New(slog.DiscardHandler)))

	geo, err := os.ReadFile(filepath.Join(dir, "ts", "geo.ts"))
	require.NoError(t, err)
	assert.Equal(t, "export type Point = [number,number]\nexport type Main = {\n    readonly [_:string]: any\n}\n", string(geo))

	place, err := os.ReadFile(filepath.Join(dir, "ts", "place.ts"))
	require.NoError(t, err)
	assert.Equal(t,
		"import * as Geo from \"./geo\"\nexport type Main = {\n    readonly at: Geo.Point\n}\n",
		string(place),
	)
}

func TestTranspileRejectsDuplicateModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a", "x.json"), `{}`)
	writeFile(t, filepath.Join(dir, "b", "x.json"), `{}`)

	cfg := config.Default()
	cfg.Inputs = internal.Array[string]{"a/x.json", "b/x.json"}
	_, err := transpile(&cfg, dir, slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, `module "x" is generated by another input`)
}

func TestTranspileReportsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.json"), `{"type": }`)

	cfg := config.Default()
	cfg.Inputs = internal.Array[string]{"bad.json"}
	_, err := transpile(&cfg, dir, slog.New(slog.DiscardHandler))
	assert.ErrorContains(t, err, "bad.json")
}
