package jstt

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(lines ...string) iter.Seq[string] {
	return slices.Values(lines)
}

func seqs(ss ...iter.Seq[string]) iter.Seq[iter.Seq[string]] {
	return slices.Values(ss)
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{"empty", nil, []string{"<>"}},
		{"single", []string{"a"}, []string{"<a>"}},
		{"multiple", []string{"a", "b", "c"}, []string{"<a", "b", "c>"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(Wrap(seq(tt.lines...), "<", ">")))
		})
	}
}

func TestIndent(t *testing.T) {
	got := slices.Collect(Indent(seq("a", "    b")))
	assert.Equal(t, []string{"    a", "        b"}, got)
	assert.Empty(t, slices.Collect(Indent(seq())))
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		in   iter.Seq[iter.Seq[string]]
		want []string
	}{
		{"nothing", seqs(), nil},
		{"single lines", seqs(seq("a"), seq("b"), seq("c")), []string{"a|b|c"}},
		{
			"multi-line members",
			seqs(seq("{", "x", "}"), seq("b"), seq("{", "y", "}")),
			[]string{"{", "x", "}|b|{", "y", "}"},
		},
		{"leading empty member", seqs(seq(), seq("a"), seq("b")), []string{"a|b"}},
		{"inner empty member", seqs(seq("a"), seq(), seq("b")), []string{"a||b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slices.Collect(Join(tt.in, "|")))
		})
	}
}

func TestLinesAreRestartable(t *testing.T) {
	lines := Wrap(Join(seqs(seq("a", "b"), seq("c")), ","), "[", "]")
	first := slices.Collect(lines)
	second := slices.Collect(lines)
	assert.Equal(t, []string{"[a", "b,c]"}, first)
	assert.Equal(t, first, second)
}

func TestLinesStopEarly(t *testing.T) {
	var produced int
	lines := func(yield func(string) bool) {
		for _, s := range []string{"a", "b", "c", "d"} {
			produced++
			if !yield(s) {
				return
			}
		}
	}
	for line := range Indent(Wrap(lines, "<", ">")) {
		assert.Equal(t, "    <a", line)
		break
	}
	assert.Equal(t, 2, produced)
}
