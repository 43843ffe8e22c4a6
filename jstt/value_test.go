package jstt

import (
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValueKeepsKeyOrder(t *testing.T) {
	v := mustDecode(t, `{"z": 1, "a": {"y": true, "b": null}, "m": [1, "x", 2.5]}`)
	obj, ok := v.(*Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, slices.Collect(obj.Keys()))

	inner, ok := getObject(obj, "a")
	require.True(t, ok)
	assert.Equal(t, []string{"y", "b"}, slices.Collect(inner.Keys()))

	arr, ok := getArray(obj, "m")
	require.True(t, ok)
	assert.Equal(t, []any{json.Number("1"), "x", json.Number("2.5")}, arr)
}

func TestDecodeValueScalars(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{`true`, true},
		{`null`, nil},
		{`"s"`, "s"},
		{`-12e3`, json.Number("-12e3")},
		{`[]`, []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, mustDecode(t, tt.in))
		})
	}
}

func TestDecodeValueErrors(t *testing.T) {
	tests := []string{``, `{"a":`, `{"a": 1} {}`, `[1,]`}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := DecodeValue(strings.NewReader(in))
			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
		})
	}

	_, err := DecodeValue(strings.NewReader(``))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestLiteral(t *testing.T) {
	v := mustDecode(t, `{"b": [1, "<a&b>", false], "a": null}`)
	assert.Equal(t, `{"b":[1,"<a&b>",false],"a":null}`, literal(v))
}
