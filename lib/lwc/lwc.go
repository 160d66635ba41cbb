package lwc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/yarbelk/lwc/lib"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Count runs the scanner for m against the file at path.
func Count(m Metric, path string) (Result, error) {
	var count uint
	var err error
	switch m {
	case ByteCount:
		count, err = countBytes(path)
	case LineCount:
		count, err = scanFile(path, Lines)
	case WordCount:
		count, err = scanFile(path, Words)
	case CharCount:
		count, err = scanFile(path, Chars)
	case MaxLineLength:
		count, err = scanFile(path, Longest)
	default:
		return Result{Metric: m}, fmt.Errorf("no scanner for %v", m)
	}
	if err != nil {
		return Result{Metric: m}, err
	}
	return Result{Metric: m, Count: count, Filename: lib.FileName(path)}, nil
}

// countBytes only looks at the metadata, the content is never read
func countBytes(path string) (uint, error) {
	fi, err := lib.Stat(path)
	if err != nil {
		return 0, accessError(path, err)
	}
	return uint(fi.Size()), nil
}

func scanFile(path string, scan func(io.Reader) (uint, error)) (uint, error) {
	in, err := lib.Open(path)
	if err != nil {
		return 0, accessError(path, err)
	}
	defer in.Close()

	count, err := scan(in)
	var re *ReadError
	if errors.As(err, &re) {
		re.Path = path
	}
	return count, err
}

// eachLine calls fn with every line of in, terminator stripped.  An
// unterminated last line is still a line.
func eachLine(in io.Reader, fn func(line string)) error {
	buffered := bufio.NewReader(transform.NewReader(in, encoding.UTF8Validator))
	var lineNo uint
	for {
		line, err := buffered.ReadString('\n')
		if err != nil && err != io.EOF {
			return &ReadError{Line: lineNo + 1, Err: err}
		}
		if len(line) > 0 {
			lineNo++
			fn(trimEOL(line))
		}
		if err == io.EOF {
			return nil
		}
	}
}

// trimEOL drops "\n" or "\r\n".  A lone trailing "\r" stays.
func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	return strings.TrimSuffix(line[:len(line)-1], "\r")
}

// Lines counts the lines in in.
func Lines(in io.Reader) (uint, error) {
	var count uint
	err := eachLine(in, func(string) { count++ })
	return count, err
}

// Words counts maximal runs of non-space characters.
func Words(in io.Reader) (uint, error) {
	var count uint
	err := eachLine(in, func(line string) {
		count += uint(len(strings.Fields(line)))
	})
	return count, err
}

// Chars counts runes, not counting line terminators.
func Chars(in io.Reader) (uint, error) {
	var count uint
	err := eachLine(in, func(line string) {
		count += uint(utf8.RuneCountInString(line))
	})
	return count, err
}

// Longest is the display width of the widest line.
func Longest(in io.Reader) (uint, error) {
	var longest uint
	err := eachLine(in, func(line string) {
		if w := lineWidth(line); w > longest {
			longest = w
		}
	})
	return longest, err
}

func runeSize(r rune) uint {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianNarrow:
		return 1
	case width.EastAsianFullwidth, width.EastAsianWide:
		return 2
	default:
		return 1
	}
}

func lineWidth(line string) (longest uint) {
	var position uint
	for _, r := range line {
		switch r {
		case '\t':
			// round up to 8 ( set LSBs to 111, then add one)
			position = (position | 7) + 1
		case '\r', '\f':
			if position > longest {
				longest = position
			}
			position = 0
		case ' ', '\u00A0':
			position += runeSize(r)
		default:
			if unicode.IsPrint(r) {
				position += runeSize(r)
			}
		}
	}
	if position > longest {
		longest = position
	}
	return longest
}
