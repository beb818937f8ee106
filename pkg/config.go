package histogram

import (
	"errors"
	"fmt"
	"math"
)

func handle(format string) func(...any) error {
	return func(args ...any) error {
		return fmt.Errorf(format, args...)
	}
}

const DefaultPrecision = 6

type Config struct {
	Input string
	Output string
	Lower float64
	Upper float64
	Intervals int
	// Field separator; 0 splits on runs of whitespace.
	Delim byte
	// Significant digits in the output; -1 is the shortest exact form.
	Precision int
}

func ParseConfig(args []string) (Config, error) {
	c := Config{Precision: DefaultPrecision}

	if _, e := ScanFlag(args, "-l", Required, &c.Lower); e != nil {
		return c, e
	}
	if _, e := ScanFlag(args, "-u", Required, &c.Upper); e != nil {
		return c, e
	}
	var n int64
	if _, e := ScanFlag(args, "-n", Required, &n); e != nil {
		return c, e
	}
	c.Intervals = int(n)

	var e error
	if c.Input, e = FlagToken(args, "-i", Optional); e != nil {
		return c, e
	}
	if c.Output, e = FlagToken(args, "-o", Optional); e != nil {
		return c, e
	}

	var prec int64
	ok, e := ScanFlag(args, "-p", Optional, &prec)
	if e != nil {
		return c, e
	}
	if ok {
		c.Precision = int(prec)
	}

	d, e := FlagToken(args, "-d", Optional)
	if e != nil {
		return c, e
	}
	if c.Delim, e = ParseDelim(d); e != nil {
		return c, &OptionError{"-d", e}
	}

	return c, c.Validate()
}

func ParseDelim(s string) (byte, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}
	if len(s) != 1 {
		return 0, fmt.Errorf("delimiter %q is not a single byte", s)
	}
	return s[0], nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Reject ranges that would divide by zero or put every record at a negative
// index.
func (c Config) Validate() error {
	if !finite(c.Lower) {
		return &OptionError{"-l", fmt.Errorf("lower limit %v is not finite", c.Lower)}
	}
	if !finite(c.Upper) {
		return &OptionError{"-u", fmt.Errorf("upper limit %v is not finite", c.Upper)}
	}
	if c.Upper <= c.Lower {
		return &OptionError{"-u", fmt.Errorf("upper limit %v <= lower limit %v", c.Upper, c.Lower)}
	}
	if c.Intervals <= 0 {
		return &OptionError{"-n", errors.New("number of intervals must be positive")}
	}
	if c.Precision < -1 {
		return &OptionError{"-p", fmt.Errorf("precision %v < -1", c.Precision)}
	}
	return nil
}
