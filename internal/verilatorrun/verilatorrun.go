package verilatorrun

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/jameshanlon/netlist-paths/errs"
)

// Config describes a single front-end invocation (§6). Compiler defaults
// to "verilator" when empty.
type Config struct {
	Compiler  string
	Sources   []string
	Includes  []string // rendered as +incdir+<path>
	Defines   []string // rendered as -D<macro>
	XMLOutput string
}

// Args renders the compatibility-critical flag sequence from §6, in a
// fixed order so invocations are reproducible and easy to log.
func (c Config) Args() []string {
	args := []string{
		"+1800-2012ext+.sv",
		"--bbox-sys",
		"--bbox-unsup",
		"--xml-only",
		"--flatten",
		"--error-limit", "10000",
		"--xml-output", c.XMLOutput,
	}
	for _, inc := range c.Includes {
		args = append(args, "+incdir+"+inc)
	}
	for _, def := range c.Defines {
		args = append(args, "-D"+def)
	}
	args = append(args, c.Sources...)
	return args
}

// Run invokes the front end and propagates its exit status: a non-zero
// exit or a failure to start the process surfaces as an IO error
// carrying the captured stderr.
func Run(ctx context.Context, cfg Config) error {
	compiler := cfg.Compiler
	if compiler == "" {
		compiler = "verilator"
	}
	cmd := exec.CommandContext(ctx, compiler, cfg.Args()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errs.Wrap(errs.IO, compiler, "front-end invocation failed: "+stderr.String(), err)
	}
	return nil
}
