package compare

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrBadClause indicates text that does not match the `value <op> <literal>` grammar.
var ErrBadClause = errors.New("malformed comparison clause")

// ErrNotComparable indicates operands that cannot be compared with the requested operator.
var ErrNotComparable = errors.New("operands are not comparable")

// subjectKeyword is the only subject the textual grammar accepts.
const subjectKeyword = "value"

// ParsedClause is an untyped clause produced from the textual grammar.
// The right-hand side stays as source text until evaluation, when it is
// coerced against the actual value's type.
type ParsedClause struct {
	Op  Op
	Rhs string
}

// ParseClause parses the grammar `value <op> <literal>` into a ParsedClause.
//
//	clause, err := compare.ParseClause("value >= 18")
//
// The subject must be the literal keyword "value". The operator must be one
// of ==, !=, <, <=, >, >=. Everything after the operator is the right-hand
// literal; surrounding single or double quotes are stripped.
func ParseClause(src string) (ParsedClause, error) {
	fields := strings.Fields(src)
	if len(fields) < 3 {
		return ParsedClause{}, fmt.Errorf("%w: %q (want \"value <op> <literal>\")", ErrBadClause, src)
	}

	if fields[0] != subjectKeyword {
		return ParsedClause{}, fmt.Errorf("%w: subject must be %q, got %q", ErrBadClause, subjectKeyword, fields[0])
	}

	op, err := ParseOp(fields[1])
	if err != nil {
		return ParsedClause{}, fmt.Errorf("%w: %v", ErrBadClause, err)
	}

	rhs := strings.Join(fields[2:], " ")
	rhs = strings.Trim(rhs, `"'`)

	return ParsedClause{Op: op, Rhs: rhs}, nil
}

// MustParseClause is ParseClause that panics on malformed input.
// Intended for clause literals in test tables.
func MustParseClause(src string) ParsedClause {
	clause, err := ParseClause(src)
	if err != nil {
		panic(err)
	}

	return clause
}

// Holds evaluates the clause against an actual value of any type.
//
// Both sides are coerced to float64 when possible so "18" and 18.0 compare
// equal. Ordering operators require numeric operands; equality operators fall
// back to deep equality and then to string comparison.
func (c ParsedClause) Holds(actual any) (bool, error) {
	if !c.Op.Valid() {
		return false, fmt.Errorf("%w: Op(%d)", ErrUnknownOp, c.Op)
	}

	actualNum, actualOK := toFloat64(actual)
	rhsNum, rhsOK := toFloat64(c.Rhs)

	if actualOK && rhsOK {
		return Ordered(c.Op, actualNum, rhsNum), nil
	}

	switch c.Op {
	case OpEq:
		return looseEqual(actual, c.Rhs), nil
	case OpNe:
		return !looseEqual(actual, c.Rhs), nil
	default:
		return false, fmt.Errorf("%w: %v %s %v requires numeric operands", ErrNotComparable, actual, c.Op, c.Rhs)
	}
}

// String renders the clause in grammar form.
func (c ParsedClause) String() string {
	return fmt.Sprintf("value %s %v", c.Op, c.Rhs)
}

// looseEqual compares under deep equality first, then by string rendering,
// so JSON-decoded values compare naturally against textual operands.
func looseEqual(actual any, rhs string) bool {
	if reflect.DeepEqual(actual, rhs) {
		return true
	}

	return fmt.Sprintf("%v", actual) == rhs
}

// toFloat64 coerces numeric types and numeric strings to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}

	return 0, false
}
