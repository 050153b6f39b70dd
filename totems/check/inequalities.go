package check

import (
	"cmp"

	"github.com/ObliqueMotion/lib-totems/totems/compare"
)

// ordered evaluates `left <op> right` and reports the aligned diagnostic on failure.
func ordered[T cmp.Ordered](t TestingT, op compare.Op, left, right T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if compare.Ordered(op, left, right) {
		return pass(t)
	}

	return fail(t, "left "+op.String()+" right", []detail{
		{"left", left},
		{"right", right},
	}, msgAndArgs...)
}

// Lt passes when left < right under the standard ordering for T.
//
//	check.Lt(t, latency, budget, "latency %v exceeds budget", latency)
func Lt[T cmp.Ordered](t TestingT, left, right T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return ordered(t, compare.OpLt, left, right, msgAndArgs...)
}

// Le passes when left <= right.
func Le[T cmp.Ordered](t TestingT, left, right T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return ordered(t, compare.OpLe, left, right, msgAndArgs...)
}

// Gt passes when left > right.
func Gt[T cmp.Ordered](t TestingT, left, right T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return ordered(t, compare.OpGt, left, right, msgAndArgs...)
}

// Ge passes when left >= right.
func Ge[T cmp.Ordered](t TestingT, left, right T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return ordered(t, compare.OpGe, left, right, msgAndArgs...)
}
