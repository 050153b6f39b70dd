// Package constant centralizes shared names used across lib-totems packages,
// primarily telemetry metric and event identifiers.
package constant
