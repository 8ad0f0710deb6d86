//go:build debug

package verify

// Debug/DebugEq run only when the debug tag is set.
const debugChecks = true
