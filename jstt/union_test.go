package jstt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func lit(v any) Type {
	return &Literal{Value: v}
}

func TestMakeUnionFlattensAndDeduplicates(t *testing.T) {
	got := MakeUnion(
		Number,
		&Union{Members: []Type{Boolean, &Ref{Name: "number"}, RefType("a")}},
		RefType("a"),
		Boolean,
	)
	want := &Union{Members: []Type{Number, Boolean, &Ref{Name: "A"}}}
	assert.True(t, Equal(want, got), render(got))
}

func TestMakeUnionIdempotent(t *testing.T) {
	inputs := [][]Type{
		{String, Number},
		{lit("a"), lit("b"), lit("a")},
		{&Array{Elem: String}, &Union{Members: []Type{Boolean, Number}}, Number},
		{lit(json.Number("1")), Number},
		{Never},
	}
	for _, types := range inputs {
		once := MakeUnion(types...)
		twice := MakeUnion(once)
		assert.True(t, Equal(once, twice), render(once))
	}
}

func TestMakeUnionAnyAbsorbs(t *testing.T) {
	for _, x := range []Type{String, lit("a"), &Interface{}, &Array{Elem: Number}, Undefined} {
		assert.Same(t, Any, MakeUnion(Any, x))
		assert.Same(t, Any, MakeUnion(x, Any))
	}
	assert.Same(t, Any, MakeUnion(&Union{Members: []Type{String, &Ref{Name: "any"}}}))
}

func TestMakeUnionStringAbsorbsStringLiterals(t *testing.T) {
	assert.Same(t, String, MakeUnion(String, lit("a")))
	assert.Same(t, String, MakeUnion(lit("a"), lit("b"), String))

	got := MakeUnion(Number, lit(json.Number("1")))
	want := &Union{Members: []Type{Number, lit(json.Number("1"))}}
	assert.True(t, Equal(want, got), render(got))

	got = MakeUnion(String, lit(json.Number("1")), lit(true))
	want = &Union{Members: []Type{String, lit(json.Number("1")), lit(true)}}
	assert.True(t, Equal(want, got), render(got))
}

func TestMakeUnionDegenerate(t *testing.T) {
	assert.Same(t, String, MakeUnion(String))
	assert.Same(t, String, MakeUnion(String, &Ref{Name: "string"}))
	assert.Same(t, Never, MakeUnion())
}
