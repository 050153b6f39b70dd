package check

import (
	"cmp"
	"errors"

	"github.com/ObliqueMotion/lib-totems/totems/compare"
)

// Ok passes when err is nil. It takes the result pair of a fallible call:
//
//	value, err := strconv.Atoi("5")
//	check.Ok(t, value, err)
func Ok[T any](t TestingT, value T, err error, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if err == nil {
		return pass(t)
	}

	return fail(t, "result is ok", []detail{
		{"value", value},
		{"error", err},
	}, msgAndArgs...)
}

// OkEq passes when err is nil and the unwrapped value equals want.
func OkEq[T comparable](t TestingT, value T, err error, want T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Ok(t, value, err, msgAndArgs...) {
		return false
	}

	if value == want {
		return pass(t)
	}

	return fail(t, "ok(left) => left == right", []detail{
		{"left", value},
		{"right", want},
	}, msgAndArgs...)
}

// OkThat passes when err is nil and the unwrapped value satisfies the clause.
// The comparison semantics are identical for every operator and container:
//
//	value, err := strconv.Atoi("5")
//	check.OkThat(t, value, err, compare.Le(6))
func OkThat[T cmp.Ordered](t TestingT, value T, err error, clause compare.Clause[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Ok(t, value, err, msgAndArgs...) {
		return false
	}

	if clause.Holds(value) {
		return pass(t)
	}

	return fail(t, "ok(left) => left "+clause.Op.String()+" right", []detail{
		{"left", value},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}

// Err passes when err is non-nil.
func Err[T any](t TestingT, value T, err error, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if err != nil {
		return pass(t)
	}

	return fail(t, "result is err", []detail{
		{"value", value},
	}, msgAndArgs...)
}

// ErrIs passes when err is non-nil and matches target under errors.Is.
func ErrIs[T any](t TestingT, value T, err, target error, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Err(t, value, err, msgAndArgs...) {
		return false
	}

	if errors.Is(err, target) {
		return pass(t)
	}

	return fail(t, "err(left) => errors.Is(left, right)", []detail{
		{"left", err},
		{"right", target},
	}, msgAndArgs...)
}

// Some passes when the optional value is present (non-nil pointer).
func Some[T any](t TestingT, ptr *T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if ptr != nil {
		return pass(t)
	}

	return fail(t, "option is some", []detail{
		{"option", ptr},
	}, msgAndArgs...)
}

// SomeEq passes when the optional value is present and equals want.
func SomeEq[T comparable](t TestingT, ptr *T, want T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Some(t, ptr, msgAndArgs...) {
		return false
	}

	if *ptr == want {
		return pass(t)
	}

	return fail(t, "some(left) => left == right", []detail{
		{"left", *ptr},
		{"right", want},
	}, msgAndArgs...)
}

// SomeThat passes when the optional value is present and satisfies the clause.
func SomeThat[T cmp.Ordered](t TestingT, ptr *T, clause compare.Clause[T], msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if !Some(t, ptr, msgAndArgs...) {
		return false
	}

	if clause.Holds(*ptr) {
		return pass(t)
	}

	return fail(t, "some(left) => left "+clause.Op.String()+" right", []detail{
		{"left", *ptr},
		{"right", clause.Rhs},
	}, msgAndArgs...)
}

// None passes when the optional value is absent (nil pointer).
func None[T any](t TestingT, ptr *T, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if ptr == nil {
		return pass(t)
	}

	return fail(t, "option is none", []detail{
		{"value", *ptr},
	}, msgAndArgs...)
}
