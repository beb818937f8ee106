package histogram

import (
	"bufio"
	"io"

	"github.com/jgbaldwinbrown/csvh"
)

func IsStdio(path string) bool {
	return path == "" || path == "-"
}

// Open the histogram input. Paths ending in .gz are decompressed; "" and "-"
// read stdin, which is never closed.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if IsStdio(path) {
		return io.NopCloser(stdin), nil
	}
	return csvh.OpenMaybeGz(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

type Writer struct {
	w io.WriteCloser
	*bufio.Writer
}

func (w *Writer) Close() error {
	var err error
	if e := w.Flush(); err == nil {
		err = e
	}
	if e := w.w.Close(); err == nil {
		err = e
	}
	return err
}

// Create a buffered output. "" and "-" write to stdout, which is flushed but
// not closed.
func CreateOutput(path string, stdout io.Writer) (*Writer, error) {
	if IsStdio(path) {
		return &Writer{nopWriteCloser{stdout}, bufio.NewWriter(stdout)}, nil
	}
	w, e := csvh.CreateMaybeGz(path)
	if e != nil {
		return nil, e
	}
	return &Writer{w, bufio.NewWriter(w)}, nil
}
