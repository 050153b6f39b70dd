package check

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

// TestingT is the minimal testing interface required by checks.
// *testing.T satisfies it.
type TestingT interface {
	Errorf(format string, args ...any)
}

// tHelper marks a check function as a helper so failures point at the caller.
type tHelper interface {
	Helper()
}

// failNower stops the running test after a failed check, giving checks
// the same require-style hard-failure behavior as testing.T.
type failNower interface {
	FailNow()
}

var (
	failHeader = color.New(color.FgRed, color.Bold).SprintFunc()
	labelText  = color.New(color.FgCyan).SprintFunc()
)

// detail is one labeled value line in a failure diagnostic.
type detail struct {
	label string
	value any
}

// fail reports a failed check and halts the test when the harness supports it.
// Always returns false so call sites can `return fail(...)`.
func fail(t TestingT, condition string, details []detail, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	var sb strings.Builder

	sb.WriteString(failHeader("check failed:"))
	sb.WriteString(" (")
	sb.WriteString(condition)
	sb.WriteString(")")

	width := 0
	for _, d := range details {
		if len(d.label) > width {
			width = len(d.label)
		}
	}

	for _, d := range details {
		sb.WriteString("\n")
		padding := strings.Repeat(" ", width-len(d.label)+2)
		sb.WriteString(padding)
		sb.WriteString(labelText(d.label))
		sb.WriteString(": ")
		sb.WriteString(renderValue(d.value))
	}

	if msg := messageFromMsgAndArgs(msgAndArgs...); msg != "" {
		sb.WriteString("\n  ")
		sb.WriteString(msg)
	}

	t.Errorf("%s", sb.String())

	if f, ok := t.(failNower); ok {
		f.FailNow()
	}

	return false
}

// pass marks the check function as a helper and reports success.
func pass(t TestingT) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return true
}

const maxRenderedLength = 200 // Truncate rendered values longer than this

// renderValue formats a value for a diagnostic line. Composite values are
// dumped with go-spew so element types stay visible; everything else uses
// the default formatting.
func renderValue(v any) string {
	if v == nil {
		return "<nil>"
	}

	var s string

	switch reflect.ValueOf(v).Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		s = strings.TrimSuffix(spew.Sprintf("%#v", v), "\n")
	default:
		s = fmt.Sprintf("%v", v)
	}

	if len(s) <= maxRenderedLength {
		return s
	}

	return s[:maxRenderedLength] + "... (truncated " + strconv.Itoa(len(s)-maxRenderedLength) + " chars)"
}

// messageFromMsgAndArgs renders the optional trailing message arguments,
// following the single-value / format-string convention.
func messageFromMsgAndArgs(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	default:
		if format, ok := msgAndArgs[0].(string); ok {
			return fmt.Sprintf(format, msgAndArgs[1:]...)
		}

		return fmt.Sprint(msgAndArgs...)
	}
}
