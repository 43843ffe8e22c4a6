package jstt

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) any {
	t.Helper()
	v, err := DecodeValue(strings.NewReader(s))
	require.NoError(t, err)
	return v
}

func render(t Type) string {
	return strings.Join(slices.Collect(TypeLines(t)), "\n")
}

func renderAlias(a TypeAlias) string {
	return strings.Join(slices.Collect(AliasLines(a)), "\n")
}

func renderModule(t *testing.T, m *TsModule) string {
	t.Helper()
	data, err := m.Render(ModuleRenderOptions{})
	require.NoError(t, err)
	return string(data)
}
