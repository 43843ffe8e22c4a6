// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"slices"
)

// MakeUnion combines types into one. Nested unions are flattened, duplicates
// are dropped keeping the first occurrence, any absorbs everything and
// string absorbs string literals. A single survivor is returned as is and an
// empty union is never.
func MakeUnion(types ...Type) Type {
	members := make([]Type, 0, len(types))
	for _, t := range types {
		if u, ok := t.(*Union); ok {
			for _, m := range u.Members {
				members = pushUnique(members, m)
			}
		} else {
			members = pushUnique(members, t)
		}
	}

	if slices.ContainsFunc(members, isAny) {
		return Any
	}
	if slices.ContainsFunc(members, isString) {
		members = slices.DeleteFunc(members, isStringLiteral)
	}

	switch len(members) {
	case 0:
		return Never
	case 1:
		return members[0]
	default:
		return &Union{Members: members}
	}
}

func pushUnique(types []Type, t Type) []Type {
	for _, x := range types {
		if Equal(x, t) {
			return types
		}
	}
	return append(types, t)
}

func isAny(t Type) bool {
	return Equal(t, Any)
}

func isString(t Type) bool {
	return Equal(t, String)
}

func isStringLiteral(t Type) bool {
	l, ok := t.(*Literal)
	if !ok {
		return false
	}
	_, ok = l.Value.(string)
	return ok
}
