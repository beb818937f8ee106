package histogram

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iter"
	"github.com/jgbaldwinbrown/lscan/pkg"
)

type Record struct {
	Pos float64
	Weight float64
}

// A line that could not be parsed as a record. Line numbers start at 1.
type RecordError struct {
	Line int
	Text string
	Err error
}

func (r *RecordError) Error() string {
	return fmt.Sprintf("line %v: malformed record %q: %v", r.Line, r.Text, r.Err)
}

func (r *RecordError) Unwrap() error {
	return r.Err
}

func IsSkippable(line string) bool {
	t := strings.TrimSpace(line)
	return t == "" || t[0] == '#'
}

// Only the first two fields are used; the rest of the line is ignored.
func ParseRecord(fields []string) (Record, error) {
	var r Record
	if len(fields) < 2 {
		return r, fmt.Errorf("len(fields) %v < 2", len(fields))
	}
	_, e := csvh.ScanF(fields[:2], StrictScan, &r.Pos, &r.Weight)
	return r, e
}

func splitter(delim byte) func([]string, string) []string {
	if delim == 0 {
		return func(_ []string, line string) []string {
			return strings.Fields(line)
		}
	}

	split := lscan.ByByte(delim)
	return func(buf []string, line string) []string {
		buf = lscan.SplitByFunc(buf, line, split)
		for i, f := range buf {
			buf[i] = strings.TrimSpace(f)
		}
		return buf
	}
}

func ReadRecords(r io.Reader, delim byte) *iter.Iterator[Record] {
	return &iter.Iterator[Record]{Iteratef: func(yield func(Record) error) error {
		s := bufio.NewScanner(r)
		s.Buffer([]byte{}, 1e12)
		split := splitter(delim)
		var line []string

		for n := 1; s.Scan(); n++ {
			if IsSkippable(s.Text()) {
				continue
			}
			line = split(line, s.Text())
			rec, e := ParseRecord(line)
			if e != nil {
				return &RecordError{n, s.Text(), e}
			}
			if e := yield(rec); e != nil {
				return e
			}
		}
		return s.Err()
	}}
}
