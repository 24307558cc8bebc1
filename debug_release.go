//go:build !debug

package openqmc

// DebugLog is a no-op outside builds tagged "debug".
func DebugLog(format string, args ...interface{}) {}

// DebugLogOnce is a no-op outside builds tagged "debug".
func DebugLogOnce(format string, args ...interface{}) {}

// DebugDump is a no-op outside builds tagged "debug".
func DebugDump(label string, v interface{}) {}

// assertf is a no-op outside builds tagged "debug": release builds trust
// the caller and pay no branch cost for precondition checks.
func assertf(cond bool, format string, args ...interface{}) {}
