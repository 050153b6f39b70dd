package compare

import "github.com/shopspring/decimal"

// Decimal evaluates `left <op> right` for arbitrary-precision decimals using
// exact comparison, so 1.10 and 1.1 compare equal regardless of scale.
func Decimal(op Op, left, right decimal.Decimal) bool {
	cmp := left.Cmp(right)

	switch op {
	case OpEq:
		return cmp == 0
	case OpNe:
		return cmp != 0
	case OpLt:
		return cmp < 0
	case OpLe:
		return cmp <= 0
	case OpGt:
		return cmp > 0
	case OpGe:
		return cmp >= 0
	default:
		return false
	}
}
