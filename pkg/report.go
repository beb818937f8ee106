package histogram

import (
	"fmt"
	"io"
	"strconv"
)

func FormatFloat(x float64, prec int) string {
	return strconv.FormatFloat(x, 'g', prec, 64)
}

// Write one "center  sum" line per bin, in bin order.
func Fprint(w io.Writer, h *Histogram, prec int) (int, error) {
	n := 0
	for i, sum := range h.Sums {
		linen, e := fmt.Fprintf(w, "%v  %v\n", FormatFloat(h.Center(i), prec), FormatFloat(sum, prec))
		n += linen
		if e != nil { return n, fmt.Errorf("Fprint: %w", e) }
	}
	return n, nil
}
