// Package classes derives CSS class strings from component state.
//
// Components describe their styling as an ordered list of conditional
// fragments instead of concatenating strings imperatively; composition is
// deterministic, so class order is stable across renders and safe to
// snapshot in tests.
package classes

import "strings"

// Fragment is one (condition, class string) pair considered during
// composition. A fragment with When=false never contributes, regardless of
// its Class value.
type Fragment struct {
	When  bool
	Class string
}

// Always wraps a class string in an unconditional fragment.
func Always(class string) Fragment {
	return Fragment{When: true, Class: class}
}

// If wraps a class string in a fragment gated by cond.
func If(cond bool, class string) Fragment {
	return Fragment{When: cond, Class: class}
}

// Compose joins the surviving fragments into a single class string.
//
// Fragments are evaluated in declaration order. A fragment survives iff its
// condition holds and its class is non-empty after trimming. Each surviving
// fragment is split into whitespace-separated tokens; a token already emitted
// by an earlier fragment is dropped, so the first occurrence fixes its
// position. Tokens are joined with single spaces and the result carries no
// leading or trailing whitespace. Compose never fails.
func Compose(fragments ...Fragment) string {
	var tokens []string
	seen := make(map[string]bool)

	for _, f := range fragments {
		if !f.When || strings.TrimSpace(f.Class) == "" {
			continue
		}
		for _, tok := range strings.Fields(f.Class) {
			if seen[tok] {
				continue
			}
			seen[tok] = true
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, " ")
}
