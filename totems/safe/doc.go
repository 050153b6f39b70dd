// Package safe provides panic-free, bounds-checked slice accessors.
//
// Core APIs are First, Last, and At. Functions that can fail return explicit
// errors instead of panicking, so positional assertions can report an
// out-of-bounds access as a diagnostic rather than a crash.
package safe
