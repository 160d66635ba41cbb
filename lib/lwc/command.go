package lwc

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// CommandSpec is the fixed flag table.  Each flag maps to exactly one Metric.
type CommandSpec struct {
	fs      *pflag.FlagSet
	metrics map[string]Metric
}

// NewCommandSpec declares the flags in the order they are listed in the usage
func NewCommandSpec() *CommandSpec {
	cs := &CommandSpec{
		fs: pflag.NewFlagSet("lwc", pflag.ContinueOnError),
		metrics: map[string]Metric{
			HelpFlag: Help,
			ByteFlag: ByteCount,
			LineFlag: LineCount,
			WordFlag: WordCount,
			CharFlag: CharCount,
			LongFlag: MaxLineLength,
		},
	}
	cs.fs.SortFlags = false
	cs.fs.BoolP(HelpFlag, "h", false, "Print this message")
	cs.fs.BoolP(ByteFlag, "c", false, "Outputs the number of bytes in a file")
	cs.fs.BoolP(LineFlag, "l", false, "Outputs the number of lines in a file")
	cs.fs.BoolP(WordFlag, "w", false, "Outputs the number of words in a file")
	cs.fs.BoolP(CharFlag, "m", false, "Outputs the number of characters in a file")
	cs.fs.BoolP(LongFlag, "L", false, "Outputs the display width of the longest line")
	setUsage(cs.fs)
	return cs
}

// Lookup resolves a token that is exactly -x or --name.
func (cs *CommandSpec) Lookup(token string) (Metric, bool) {
	var flag *pflag.Flag
	switch {
	case strings.HasPrefix(token, "--") && len(token) > 2:
		flag = cs.fs.Lookup(token[2:])
	case len(token) == 2 && token[0] == '-' && token[1] != '-':
		flag = cs.fs.ShorthandLookup(token[1:])
	}
	if flag == nil {
		return 0, false
	}
	m, ok := cs.metrics[flag.Name]
	return m, ok
}

// Usage prints the help text to w
func (cs *CommandSpec) Usage(w io.Writer) {
	cs.fs.SetOutput(w)
	cs.fs.Usage()
}

func setUsage(fs *pflag.FlagSet) {
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), `Usage: lwc [OPTION]... FILE
  or:  lwc FILE
Print byte, line, word, and character counts for FILE, one count per line,
each followed by the base name of FILE.  A word is a non-zero-length sequence
of characters delimited by white space.

With no OPTION the byte, line, word and character counts are printed, in
that order.  Otherwise counts are printed in the order the options are given.

`)
		fs.PrintDefaults()
	}
}
