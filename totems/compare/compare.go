package compare

import (
	"cmp"
	"errors"
	"fmt"
)

// Op identifies one of the six supported comparison operators.
type Op uint8

const (
	// OpEq is equality (==).
	OpEq Op = iota
	// OpNe is inequality (!=).
	OpNe
	// OpLt is less-than (<).
	OpLt
	// OpLe is less-or-equal (<=).
	OpLe
	// OpGt is greater-than (>).
	OpGt
	// OpGe is greater-or-equal (>=).
	OpGe
)

// ErrUnknownOp indicates an operator token outside the supported grammar.
var ErrUnknownOp = errors.New("unknown comparison operator")

// String returns the operator token.
func (op Op) String() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return "unknown"
	}
}

// Valid reports whether op is one of the six supported operators.
func (op Op) Valid() bool {
	return op <= OpGe
}

// ParseOp converts an operator token back into an Op.
func ParseOp(token string) (Op, error) {
	switch token {
	case "==":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLe, nil
	case ">":
		return OpGt, nil
	case ">=":
		return OpGe, nil
	}

	return OpEq, fmt.Errorf("%w: %q", ErrUnknownOp, token)
}

// Ordered evaluates `left <op> right` under Go's standard ordering for T.
// The evaluation is identical no matter which container (result, option,
// collection index) supplied left.
func Ordered[T cmp.Ordered](op Op, left, right T) bool {
	switch op {
	case OpEq:
		return left == right
	case OpNe:
		return left != right
	case OpLt:
		return left < right
	case OpLe:
		return left <= right
	case OpGt:
		return left > right
	case OpGe:
		return left >= right
	default:
		return false
	}
}

// Clause pairs an operator with a right-hand operand. A Clause is evaluated
// against a left-hand value that an assertion has already unwrapped.
type Clause[T cmp.Ordered] struct {
	Op  Op
	Rhs T
}

// Eq builds a `value == rhs` clause.
func Eq[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpEq, Rhs: rhs} }

// Ne builds a `value != rhs` clause.
func Ne[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpNe, Rhs: rhs} }

// Lt builds a `value < rhs` clause.
func Lt[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpLt, Rhs: rhs} }

// Le builds a `value <= rhs` clause.
func Le[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpLe, Rhs: rhs} }

// Gt builds a `value > rhs` clause.
func Gt[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpGt, Rhs: rhs} }

// Ge builds a `value >= rhs` clause.
func Ge[T cmp.Ordered](rhs T) Clause[T] { return Clause[T]{Op: OpGe, Rhs: rhs} }

// Holds reports whether `left <op> rhs` is true.
func (c Clause[T]) Holds(left T) bool {
	return Ordered(c.Op, left, c.Rhs)
}

// String renders the clause in grammar form, e.g. "value <= 6".
func (c Clause[T]) String() string {
	return fmt.Sprintf("value %s %v", c.Op, c.Rhs)
}
