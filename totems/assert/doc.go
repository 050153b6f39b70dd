// Package assert provides always-on runtime assertions for detecting programming bugs.
//
// Unlike the test-facing check package, these assertions are intended to remain
// enabled in production code. They are designed for detecting invariant
// violations, programming errors, and impossible states - NOT for input
// validation or expected error conditions.
//
// # Design Philosophy
//
// Assertions are for catching bugs, not for handling user input:
//
//   - Use assertions for conditions that should NEVER be false if the code is correct
//   - Use error returns for conditions that CAN legitimately fail (I/O, user input, etc.)
//   - Assertions return errors so callers can stop execution immediately
//
// Good assertion usage:
//
//	a := assert.New(ctx, logger, "parser", "parse")
//	if err := a.NotNil(ctx, config, "config must be loaded before parsing starts"); err != nil {
//	    return err
//	}
//	if err := a.That(ctx, len(items) > 0, "processItems called with empty slice"); err != nil {
//	    return err
//	}
//
// Bad assertion usage (use error returns instead):
//
//	// DON'T: User input validation
//	_ = a.That(ctx, email != "", "email is required") // Use validation errors
//
//	// DON'T: I/O that can fail
//	_ = a.NoError(ctx, file.Read(), "file must read") // Use proper error handling
//
// # Core Assertion Methods
//
//	a.That(ctx context.Context, ok bool, msg string, kv ...any) error
//	a.NotNil(ctx context.Context, v any, msg string, kv ...any) error
//	a.NotEmpty(ctx context.Context, s string, msg string, kv ...any) error
//	a.NoError(ctx context.Context, err error, msg string, kv ...any) error
//	a.Never(ctx context.Context, msg string, kv ...any) error
//
// All methods accept optional key-value pairs that are rendered as indented
// detail lines in logs and errors. Odd numbers of key-value arguments are
// handled gracefully with a "MISSING_VALUE" marker.
//
// # Observability Integration
//
// Failed assertions emit telemetry signals:
//
//  1. Metrics: assertion_failed_total with component/operation/assertion labels.
//     Initialize with InitAssertionMetrics(metricsFactory).
//
//  2. Tracing: assertion.failed span events, with stack traces unless
//     production mode is enabled via runtime.SetProductionMode(true).
package assert
