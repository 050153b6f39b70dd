package check

import (
	"cmp"

	"github.com/ObliqueMotion/lib-totems/totems/compare"
	"github.com/ObliqueMotion/lib-totems/totems/safe"
)

// Nth passes when the element at index satisfies the clause.
// An out-of-range index fails with the bounds error; it is never recoverable.
//
//	check.Nth(t, scores, 2, compare.Ge(10))
func Nth[T cmp.Ordered](t TestingT, collection []T, index int, clause compare.Clause[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	element, err := safe.At(collection, index)
	if err != nil {
		return fail(t, "collection has element at index", []detail{
			{"index", index},
			{"error", err},
			{"collection", collection},
		}, msgAndArgs...)
	}

	if clause.Holds(element) {
		return pass(t)
	}

	return fail(t, "nth(left) => left "+clause.Op.String()+" right", []detail{
		{"index", index},
		{"left", element},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}

// NthEq passes when the element at index equals want. Use for element types
// that are comparable but not ordered.
func NthEq[T comparable](t TestingT, collection []T, index int, want T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	element, err := safe.At(collection, index)
	if err != nil {
		return fail(t, "collection has element at index", []detail{
			{"index", index},
			{"error", err},
			{"collection", collection},
		}, msgAndArgs...)
	}

	if element == want {
		return pass(t)
	}

	return fail(t, "nth(left) => left == right", []detail{
		{"index", index},
		{"left", element},
		{"right", want},
	}, msgAndArgs...)
}

// First passes when the first element satisfies the clause.
// An empty collection fails with the bounds error.
func First[T cmp.Ordered](t TestingT, collection []T, clause compare.Clause[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	element, err := safe.First(collection)
	if err != nil {
		return fail(t, "collection has first element", []detail{
			{"error", err},
			{"collection", collection},
		}, msgAndArgs...)
	}

	if clause.Holds(element) {
		return pass(t)
	}

	return fail(t, "first(left) => left "+clause.Op.String()+" right", []detail{
		{"left", element},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}

// Last passes when the last element satisfies the clause.
// An empty collection fails with the bounds error.
func Last[T cmp.Ordered](t TestingT, collection []T, clause compare.Clause[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	element, err := safe.Last(collection)
	if err != nil {
		return fail(t, "collection has last element", []detail{
			{"error", err},
			{"collection", collection},
		}, msgAndArgs...)
	}

	if clause.Holds(element) {
		return pass(t)
	}

	return fail(t, "last(left) => left "+clause.Op.String()+" right", []detail{
		{"left", element},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}
