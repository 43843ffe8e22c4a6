// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import "iter"

const indentUnit = "    "

// Wrap merges prefix onto the first line of lines and suffix onto the last.
// When lines is empty it yields the single line prefix+suffix.
func Wrap(lines iter.Seq[string], prefix, suffix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var previous string
		started := false
		for line := range lines {
			if !started {
				previous = prefix + line
				started = true
				continue
			}
			if !yield(previous) {
				return
			}
			previous = line
		}
		if started {
			yield(previous + suffix)
		} else {
			yield(prefix + suffix)
		}
	}
}

func Indent(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if !yield(indentUnit + line) {
				return
			}
		}
	}
}

// Join concatenates line sequences. The separator is merged onto the
// boundary between the last line of one sequence and the first line of the
// next one.
func Join(seqs iter.Seq[iter.Seq[string]], separator string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var previous string
		started := false
		for lines := range seqs {
			if started {
				previous += separator
			}
			first := true
			for line := range lines {
				if first {
					previous += line
					started = true
					first = false
					continue
				}
				if !yield(previous) {
					return
				}
				previous = line
			}
		}
		if started {
			yield(previous)
		}
	}
}

func single(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		yield(s)
	}
}

func concat(seqs ...iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, lines := range seqs {
			for line := range lines {
				if !yield(line) {
					return
				}
			}
		}
	}
}

func each[T any](items []T, f func(T) iter.Seq[string]) iter.Seq[iter.Seq[string]] {
	return func(yield func(iter.Seq[string]) bool) {
		for _, item := range items {
			if !yield(f(item)) {
				return
			}
		}
	}
}
