package histogram

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jgbaldwinbrown/csvh"
)

const (
	ExitOK = 0
	ExitOption = 1
	ExitIO = 2
	ExitRecord = 3
)

const usage = `  Weighted histogram.

  Reads two columns, position and weight, and sums the weights falling in
  each of n equal bins between the lower and upper limit. The first output
  column is the center of each bin, the second is the unnormalized sum.

  USAGE:
    histogram -l [lower limit] -u [upper limit] -n [number of intervals]

  OPTIONAL:
    -i [input path]   read this file instead of stdin (.gz is decompressed)
    -o [output path]  write this file instead of stdout (.gz is compressed)
    -d [delimiter]    single-byte field separator, or "tab"; default is whitespace
    -p [digits]       significant digits in the output, -1 for shortest exact (default 6)

  EXAMPLE:
    Histogram of a uniform distribution

    seq 1 10000 | awk '{print rand(), 1}' | histogram -l 0 -u 1 -n 10000 > flatHistogram.dat
`

func Usage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// Read every record from the configured input into a new histogram. The
// input is closed before returning.
func ReadHistogram(c Config, stdin io.Reader) (*Histogram, error) {
	h := handle("ReadHistogram: %w")

	r, e := OpenInput(c.Input, stdin)
	if e != nil { return nil, h(e) }
	defer r.Close()

	hist := NewFromConfig(c)
	if e := hist.Fill(ReadRecords(r, c.Delim)); e != nil {
		return nil, h(e)
	}
	return hist, nil
}

func WriteHistogram(c Config, stdout io.Writer, hist *Histogram) (err error) {
	h := handle("WriteHistogram: %w")

	w, e := CreateOutput(c.Output, stdout)
	if e != nil { return h(e) }
	defer func() { csvh.DeferE(&err, w.Close()) }()

	if _, e := Fprint(w, hist, c.Precision); e != nil {
		return h(e)
	}
	return nil
}

// Nothing is written unless the whole input was read successfully.
func Run(c Config, stdin io.Reader, stdout io.Writer) error {
	hist, e := ReadHistogram(c, stdin)
	if e != nil {
		return e
	}
	return WriteHistogram(c, stdout, hist)
}

func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var oe *OptionError
	if errors.As(err, &oe) {
		return ExitOption
	}
	var re *RecordError
	if errors.As(err, &re) {
		return ExitRecord
	}
	return ExitIO
}

// Main runs the whole program against the given arguments (without the
// program name) and streams, and returns the process exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	c, e := ParseConfig(args)
	if e != nil {
		logger.Printf("ERROR: %v", e)
		Usage(stderr)
		return ExitCode(e)
	}

	if e := Run(c, stdin, stdout); e != nil {
		logger.Printf("ERROR: %v", e)
		return ExitCode(e)
	}
	return ExitOK
}
