package histogram

import (
	"math"

	"github.com/jgbaldwinbrown/iter"
)

// Histogram holds weighted sums over len(Sums) equal-width bins spanning
// [Lower, Upper).
type Histogram struct {
	Lower float64
	Upper float64
	Sums []float64
}

func New(lower, upper float64, intervals int) *Histogram {
	return &Histogram{lower, upper, make([]float64, intervals)}
}

func NewFromConfig(c Config) *Histogram {
	return New(c.Lower, c.Upper, c.Intervals)
}

// Index returns the bin holding pos, or false if pos is outside
// [Lower, Upper) or NaN.
func (h *Histogram) Index(pos float64) (int, bool) {
	n := float64(len(h.Sums))
	f := math.Floor(n * (pos - h.Lower) / (h.Upper - h.Lower))
	if math.IsNaN(f) || f < 0 || f >= n {
		return 0, false
	}
	return int(f), true
}

func (h *Histogram) Add(pos, weight float64) bool {
	i, ok := h.Index(pos)
	if !ok {
		return false
	}
	h.Sums[i] += weight
	return true
}

func (h *Histogram) Center(i int) float64 {
	return (float64(i)+0.5)/float64(len(h.Sums))*(h.Upper-h.Lower) + h.Lower
}

// Add every record from it. Records outside the range are dropped without
// comment.
func (h *Histogram) Fill(it iter.Iter[Record]) error {
	return it.Iterate(func(r Record) error {
		h.Add(r.Pos, r.Weight)
		return nil
	})
}
