//go:build unit

package safe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst_Success(t *testing.T) {
	t.Parallel()

	slice := []int{1, 2, 3}

	result, err := First(slice)

	assert.NoError(t, err)
	assert.Equal(t, 1, result)
}

func TestFirst_EmptySlice(t *testing.T) {
	t.Parallel()

	slice := []int{}

	result, err := First(slice)

	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.Equal(t, 0, result)
}

func TestLast_Success(t *testing.T) {
	t.Parallel()

	slice := []string{"a", "b", "c"}

	result, err := Last(slice)

	assert.NoError(t, err)
	assert.Equal(t, "c", result)
}

func TestLast_EmptySlice(t *testing.T) {
	t.Parallel()

	result, err := Last([]int{})

	assert.ErrorIs(t, err, ErrEmptySlice)
	assert.Equal(t, 0, result)
}

func TestAt_Success(t *testing.T) {
	t.Parallel()

	slice := []int{10, 20, 30}

	result, err := At(slice, 1)

	assert.NoError(t, err)
	assert.Equal(t, 20, result)
}

func TestAt_NegativeIndex(t *testing.T) {
	t.Parallel()

	_, err := At([]int{10, 20, 30}, -1)

	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestAt_IndexTooLarge(t *testing.T) {
	t.Parallel()

	_, err := At([]int{10, 20, 30}, 3)

	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	assert.Contains(t, err.Error(), "index 3, length 3")
}

func TestAtOrDefault(t *testing.T) {
	t.Parallel()

	slice := []string{"x", "y"}

	assert.Equal(t, "y", AtOrDefault(slice, 1, "fallback"))
	assert.Equal(t, "fallback", AtOrDefault(slice, 5, "fallback"))
	assert.Equal(t, "fallback", AtOrDefault(slice, -1, "fallback"))
}
