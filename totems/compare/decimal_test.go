//go:build unit

package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimal(t *testing.T) {
	t.Parallel()

	one := decimal.NewFromFloat(1.1)
	oneTrailing := decimal.NewFromFloat(1.10)
	two := decimal.NewFromFloat(2.5)

	tests := []struct {
		name  string
		op    Op
		left  decimal.Decimal
		right decimal.Decimal
		want  bool
	}{
		{"eq ignores scale", OpEq, one, oneTrailing, true},
		{"ne fails on equal", OpNe, one, oneTrailing, false},
		{"lt holds", OpLt, one, two, true},
		{"le holds on equal", OpLe, one, oneTrailing, true},
		{"gt holds", OpGt, two, one, true},
		{"ge fails", OpGe, one, two, false},
		{"invalid op", Op(99), one, two, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Decimal(tt.op, tt.left, tt.right))
		})
	}
}
