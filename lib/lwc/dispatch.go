package lwc

import (
	"fmt"
	"io"
	"strings"
)

type state int

const (
	showHelp state = iota
	runAllMetrics
	runSelectedFlags
)

// Invocation is the command line, program name excluded.  The last argument
// is the path unless it looks like a flag; everything else is a flag token.
type Invocation struct {
	Flags   []string
	Path    string
	HasPath bool
}

// ParseArgs splits args into flag tokens and the target path
func ParseArgs(args []string) Invocation {
	if len(args) == 0 {
		return Invocation{}
	}
	last := args[len(args)-1]
	if strings.HasPrefix(last, "-") {
		return Invocation{Flags: args}
	}
	return Invocation{Flags: args[:len(args)-1], Path: last, HasPath: true}
}

// Dispatcher maps an invocation onto scanners and prints what they find.
type Dispatcher struct {
	Spec *CommandSpec
	Out  io.Writer
}

func NewDispatcher(out io.Writer) *Dispatcher {
	return &Dispatcher{Spec: NewCommandSpec(), Out: out}
}

// Main runs lwc against args, writing counts and diagnostics to out.
func Main(args []string, out io.Writer) error {
	return NewDispatcher(out).Run(args)
}

func (d *Dispatcher) classify(inv Invocation) state {
	if len(inv.Flags) == 0 && !inv.HasPath {
		return showHelp
	}
	for _, token := range inv.Flags {
		if m, ok := d.Spec.Lookup(token); ok && m == Help {
			return showHelp
		}
	}
	if len(inv.Flags) == 0 {
		return runAllMetrics
	}
	return runSelectedFlags
}

// Run executes one invocation.  Usage problems are printed and skipped; the
// first FileAccessError or ReadError stops the run and is returned.
func (d *Dispatcher) Run(args []string) error {
	inv := ParseArgs(args)
	switch d.classify(inv) {
	case showHelp:
		d.Spec.Usage(d.Out)
		return nil
	case runAllMetrics:
		for _, m := range DefaultMetrics {
			if err := d.count(m, inv.Path); err != nil {
				return err
			}
		}
		return nil
	}

	for _, token := range inv.Flags {
		m, ok := d.Spec.Lookup(token)
		if !ok {
			d.report(&UsageError{Arg: token})
			continue
		}
		if !inv.HasPath {
			d.report(&UsageError{NoPath: true})
			continue
		}
		if err := d.count(m, inv.Path); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dispatcher) count(m Metric, path string) error {
	result, err := Count(m, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(d.Out, result)
	return nil
}

func (d *Dispatcher) report(err *UsageError) {
	fmt.Fprintln(d.Out, err)
}
