package assert

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain predicates for use with Asserter.That. Each returns a plain bool so
// callers keep the assertion message and key-value context at the call site:
//
//	if err := a.That(ctx, assert.Positive(count), "count must be positive", "count", count); err != nil {
//	    return err
//	}

// Positive reports whether n > 0.
func Positive(n int64) bool {
	return n > 0
}

// NonNegative reports whether n >= 0.
func NonNegative(n int64) bool {
	return n >= 0
}

// NotZero reports whether n != 0.
func NotZero(n int64) bool {
	return n != 0
}

// InRange reports whether min <= n <= max.
func InRange(n, min, max int64) bool {
	return n >= min && n <= max
}

// ValidUUID reports whether s parses as a UUID.
func ValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// maxDecimalExponent bounds the exponent range accepted by ValidAmount and ValidScale.
const maxDecimalExponent = 18

// ValidAmount reports whether d's exponent is within [-18, 18].
func ValidAmount(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -maxDecimalExponent && exp <= maxDecimalExponent
}

// ValidScale reports whether scale is within [0, 18].
func ValidScale(scale int) bool {
	return scale >= 0 && scale <= maxDecimalExponent
}

// PositiveDecimal reports whether d > 0.
func PositiveDecimal(d decimal.Decimal) bool {
	return d.IsPositive()
}

// NonNegativeDecimal reports whether d >= 0.
func NonNegativeDecimal(d decimal.Decimal) bool {
	return !d.IsNegative()
}
