package check

import "slices"

// Contains passes when item is present in the collection under native equality.
func Contains[T comparable](t TestingT, collection []T, item T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if slices.Contains(collection, item) {
		return pass(t)
	}

	return fail(t, "collection contains item", []detail{
		{"item", item},
		{"collection", collection},
	}, msgAndArgs...)
}

// ContainsPair passes when the map holds the key AND the key maps to value.
func ContainsPair[K, V comparable](t TestingT, m map[K]V, key K, value V, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	got, present := m[key]
	if present && got == value {
		return pass(t)
	}

	return fail(t, "map contains pair", []detail{
		{"key", key},
		{"value", value},
		{"map", m},
	}, msgAndArgs...)
}

// All passes when every element satisfies the predicate.
// An empty collection passes: universal quantification is vacuously true.
func All[T any](t TestingT, collection []T, predicate func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	for i, element := range collection {
		if !predicate(element) {
			return fail(t, "all elements of collection match predicate", []detail{
				{"index", i},
				{"element", element},
				{"collection", collection},
			}, msgAndArgs...)
		}
	}

	return pass(t)
}

// Any passes when at least one element satisfies the predicate.
// An empty collection fails: existential quantification is vacuously false.
func Any[T any](t TestingT, collection []T, predicate func(T) bool, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if slices.ContainsFunc(collection, predicate) {
		return pass(t)
	}

	return fail(t, "any element of collection matches predicate", []detail{
		{"collection", collection},
	}, msgAndArgs...)
}
