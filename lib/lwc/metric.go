package lwc

import "fmt"

// Metric selects what gets counted.  Help is the odd one out: it has no scanner.
type Metric int

const (
	Help Metric = iota
	ByteCount
	LineCount
	WordCount
	CharCount
	MaxLineLength
)

// Long flag names, also used as the metric names
const (
	HelpFlag = "help"
	ByteFlag = "bytes"
	LineFlag = "lines"
	WordFlag = "words"
	CharFlag = "chars"
	LongFlag = "max-line-length"
)

// DefaultMetrics run, in this order, when only a file is given.
var DefaultMetrics = []Metric{ByteCount, LineCount, WordCount, CharCount}

func (m Metric) String() string {
	switch m {
	case Help:
		return HelpFlag
	case ByteCount:
		return ByteFlag
	case LineCount:
		return LineFlag
	case WordCount:
		return WordFlag
	case CharCount:
		return CharFlag
	case MaxLineLength:
		return LongFlag
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Result is one count, labelled with the base name of the file it came from.
type Result struct {
	Metric   Metric
	Count    uint
	Filename string
}

func (r Result) String() string {
	return fmt.Sprintf("%d %s", r.Count, r.Filename)
}
