// Package check provides readable test assertions over result-like, optional,
// collection, positional, and ordered subjects.
//
// Each check wraps a boolean condition that would otherwise need a generic
// assertion plus a hand-written message, and reports a diagnostic naming the
// check, the condition, and the actual vs expected values:
//
//	check failed: (ok(left) => left <= right)
//	   left: 5
//	  right: 4
//
// Result subjects are Go's (value, error) pairs:
//
//	value, err := strconv.Atoi("5")
//	check.Ok(t, value, err)
//	check.OkThat(t, value, err, compare.Le(6))
//
// Optional subjects are pointers: non-nil is present, nil is absent.
//
//	check.SomeEq(t, user.Nickname, "zab")
//	check.None(t, user.DeletedAt)
//
// A failed check reports through the testing.T failure channel and stops the
// running test via FailNow, matching the hard-failure contract of the
// underlying test framework. Every check also returns a bool so callers in
// softer harnesses (mocks, fuzz drivers) can branch on the outcome.
package check
