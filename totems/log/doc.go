// Package log defines the logging interface and typed logging fields used by
// lib-totems when reporting assertion failures.
//
// Adapters (such as the zap package) implement Logger so applications can keep
// logging calls consistent across backends.
package log
