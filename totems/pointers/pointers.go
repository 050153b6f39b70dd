// Package pointers provides helpers for pointer creation and conversions.
//
// Optional values in this library are modeled as pointers: a non-nil pointer
// is a present value, a nil pointer is an absent one. These helpers reduce
// boilerplate when building optional subjects at call sites.
package pointers

// To returns a pointer to the given value.
//
// Example:
//
//	opt := pointers.To(42) // *int holding 42
func To[T any](value T) *T {
	return &value
}

// Deref returns the value pointed to, or the zero value if the pointer is nil.
func Deref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}

	return *ptr
}

// DerefOr returns the value pointed to, or defaultValue if the pointer is nil.
func DerefOr[T any](ptr *T, defaultValue T) T {
	if ptr == nil {
		return defaultValue
	}

	return *ptr
}
