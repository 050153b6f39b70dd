package jsoncheck

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// TestingT is the minimal testing interface required by checks.
// *testing.T satisfies it.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

type failNower interface {
	FailNow()
}

var (
	failHeader = color.New(color.FgRed, color.Bold).SprintFunc()
	labelText  = color.New(color.FgCyan).SprintFunc()
)

type detail struct {
	label string
	value any
}

// fail reports a failed check and halts the test when the harness supports it.
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
		sb.WriteString(strings.Repeat(" ", width-len(d.label)+2))
		sb.WriteString(labelText(d.label))
		sb.WriteString(": ")
		sb.WriteString(fmt.Sprintf("%v", d.value))
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

func pass(t TestingT) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	return true
}

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
