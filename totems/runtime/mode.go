// Package runtime holds process-wide runtime configuration shared by the
// assertion packages, such as the production mode flag that gates stack
// trace capture on assertion failures.
package runtime

import "sync"

var (
	// productionMode controls whether sensitive diagnostics are redacted.
	// When true, stack traces are suppressed in assertion failure output.
	productionMode   bool
	productionModeMu sync.RWMutex
)

// SetProductionMode enables or disables production mode.
// In production mode, stack traces and detailed failure diagnostics are redacted.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}
