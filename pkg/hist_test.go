package histogram

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/iter"
	"github.com/montanaflynn/stats"
)

const scenarioExpect = `0.05  1
0.15  1
0.25  0
0.35  0
0.45  0
0.55  0
0.65  0
0.75  0
0.85  0
0.95  1
`

func TestFprintScenario(t *testing.T) {
	h := New(0, 1, 10)
	for _, pos := range []float64{0.05, 0.15, 0.95, 1.5} {
		h.Add(pos, 1)
	}

	var b strings.Builder
	_, e := Fprint(&b, h, DefaultPrecision)
	if e != nil { panic(e) }

	out := b.String()
	if out != scenarioExpect {
		t.Errorf("out != expect\nout:\n%v\nexpect:\n%v\n", out, scenarioExpect)
	}
}

func TestIndex(t *testing.T) {
	h := New(0, 1, 10)
	cases := []struct {
		pos float64
		idx int
		ok bool
	}{
		{0, 0, true},
		{0.05, 0, true},
		{0.1, 1, true},
		{0.999, 9, true},
		{1, 0, false},
		{1.5, 0, false},
		{-0.01, 0, false},
		{-5, 0, false},
		{math.NaN(), 0, false},
		{math.Inf(1), 0, false},
		{math.Inf(-1), 0, false},
	}

	for _, c := range cases {
		idx, ok := h.Index(c.pos)
		if idx != c.idx || ok != c.ok {
			t.Errorf("Index(%v) = %v, %v; expect %v, %v", c.pos, idx, ok, c.idx, c.ok)
		}
	}
}

func TestCenter(t *testing.T) {
	h := New(-2, 3, 7)
	width := (3.0 - -2.0) / 7
	for i := range h.Sums {
		expect := -2 + (float64(i)+0.5)*width
		if math.Abs(h.Center(i)-expect) > 1e-12 {
			t.Errorf("Center(%v) %v != expect %v", i, h.Center(i), expect)
		}
		idx, ok := h.Index(h.Center(i))
		if !ok || idx != i {
			t.Errorf("center %v of bin %v falls in bin %v, %v", h.Center(i), i, idx, ok)
		}
	}
}

func TestFillConservesWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := New(-1, 1, 17)

	var recs []Record
	var inside []float64
	for i := 0; i < 5000; i++ {
		r := Record{rng.Float64()*3 - 1.5, rng.Float64() * 10}
		recs = append(recs, r)
		if r.Pos >= -1 && r.Pos < 1 {
			inside = append(inside, r.Weight)
		}
	}

	if e := h.Fill(iter.SliceIter[Record](recs)); e != nil { panic(e) }

	got, e := stats.Sum(h.Sums)
	if e != nil { panic(e) }
	expect, e := stats.Sum(inside)
	if e != nil { panic(e) }

	if math.Abs(got-expect) > 1e-6 {
		t.Errorf("histogram total %v != in-range weight %v", got, expect)
	}
	if len(h.Sums) != 17 {
		t.Errorf("len(h.Sums) %v != 17", len(h.Sums))
	}
}
