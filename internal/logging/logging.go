// Package logging builds the structured hclog.Logger threaded explicitly
// into ingest (AMBIENT STACK), rather
// than read from a package-level global the way the original tool read
// its BOOST_LOG_TRIVIAL macros.
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds a logger for the "netlist-paths" subsystem at a level
// selected by the --verbose/--debug CLI flags: debug implies verbose.
func New(verbose, debug bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case debug:
		level = hclog.Debug
	case verbose:
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "netlist-paths",
		Level:  level,
		Output: os.Stderr,
	})
}
