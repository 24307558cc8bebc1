//go:build debug

package openqmc

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

var debugWriter io.Writer = plainStderr()

func plainStderr() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return colorable.NewColorableStderr()
	}
	return os.Stderr
}

// DebugLog prints a formatted diagnostic. It compiles to a no-op outside
// builds tagged "debug".
func DebugLog(format string, args ...interface{}) {
	fmt.Fprintf(debugWriter, "\x1b[36m[openqmc]\x1b[0m "+format+"\n", args...)
}

var debugOnce sync.Once

// DebugLogOnce prints a formatted diagnostic at most once per process.
func DebugLogOnce(format string, args ...interface{}) {
	debugOnce.Do(func() {
		DebugLog(format, args...)
	})
}

// DebugDump pretty-prints v (typically a sampler or domain state) for
// diagnostics; it is never on the hot path.
func DebugDump(label string, v interface{}) {
	fmt.Fprintf(debugWriter, "\x1b[36m[openqmc]\x1b[0m %s: %s\n", label, spew.Sdump(v))
}

// assertf panics with a formatted message when cond is false. Precondition
// violations are only checked in debug builds; release builds trust the
// caller, per the library's error-handling contract.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("openqmc: "+format, args...))
	}
}
