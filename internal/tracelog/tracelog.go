// Package tracelog gives the search engines (bppq, bpcrt) and the CLI a
// single leveled logger, built on charmbracelet/log, so that the optional
// search-tree trace view costs nothing when disabled and needs no plumbing
// changes when enabled.
package tracelog

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger wraps *log.Logger with the two call shapes the search engines and
// CLI actually need: structured node-expansion tracing and general debug
// output. It is safe to use at its zero value only via New/Default.
type Logger struct {
	l *log.Logger
}

// Default returns a Logger writing to os.Stderr at log.WarnLevel — quiet
// unless the caller raises the level via SetLevel.
func Default() *Logger {
	return New(os.Stderr, log.WarnLevel)
}

// New builds a Logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
	})
	l.SetLevel(level)

	return &Logger{l: l}
}

// SetLevel raises or lowers the logger's threshold, e.g. in response to the
// CLI's -v flag.
func (lg *Logger) SetLevel(level log.Level) {
	lg.l.SetLevel(level)
}

// Node logs one search-engine node expansion: the bit position and how many
// children survived pruning. Call sites pass this as an engine's Trace
// callback; at WarnLevel or above it costs one interface check and nothing
// else.
func (lg *Logger) Node(pos, validChildren int) {
	lg.l.Debug("expand", "pos", pos, "children", validChildren)
}

// NodeCRT is Node's BP-CRT analog, additionally carrying the kp value the
// current search is exploring.
func (lg *Logger) NodeCRT(kp interface{ String() string }, pos, validChildren int) {
	lg.l.Debug("expand", "kp", kp.String(), "pos", pos, "children", validChildren)
}

// Infof logs an informational message, e.g. keypair generation progress.
func (lg *Logger) Infof(format string, args ...interface{}) {
	lg.l.Infof(format, args...)
}

// Debugf logs a debug message.
func (lg *Logger) Debugf(format string, args ...interface{}) {
	lg.l.Debugf(format, args...)
}
