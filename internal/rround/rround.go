// Package rround implements decimal rounding with round-half-to-even
// semantics on the exact binary value, matching the reference decimal
// rounding bit for bit.
//
// Rounding to two digits is the hot path of the physics model and is served
// from a precomputed table. Every other precision goes through the exact
// formatting fallback.
package rround

import (
	"fmt"
	"math"
	"strconv"
	"sync"
)

// FastDigits is the precision served from the lookup table.
const FastDigits = 2

// DefaultSpan covers |x| <= 10000 at two digits.
const DefaultSpan = 1_000_000

// Table holds the two-digit lookup data. It is immutable once built and safe
// for concurrent use.
type Table struct {
	span       int
	muls       []float64 // muls[i] = Fallback(0.01*(i-span), 2)
	thresholds []float64 // largest value that still rounds to muls[i]
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table, building it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(DefaultSpan)
	})
	return defaultTable
}

// Round rounds x to the given number of decimal digits using the default table.
func Round(x float64, digits int) float64 {
	return Default().Round(x, digits)
}

// NewTable builds a table covering the indices [-span, span] at two digits.
// It panics if the reference rounding does not produce a strictly increasing
// sequence.
func NewTable(span int) *Table {
	return buildTable(span, Fallback)
}

func buildTable(span int, ref func(float64, int) float64) *Table {
	if span <= 0 {
		panic(fmt.Sprintf("rround: invalid table span %d", span))
	}

	t := &Table{
		span:       span,
		muls:       make([]float64, 2*span+2),
		thresholds: make([]float64, 2*span+1),
	}

	for i := range t.muls {
		t.muls[i] = ref(0.01*float64(i-span), FastDigits)
	}

	for i := 0; i+1 < len(t.muls); i++ {
		if !(t.muls[i] < t.muls[i+1]) {
			panic(fmt.Sprintf("rround: table not increasing at %d: %v >= %v", i, t.muls[i], t.muls[i+1]))
		}
	}

	for i := range t.thresholds {
		l, r := t.muls[i], t.muls[i+1]
		m := l + (r-l)/2
		for ref(m, FastDigits) == l {
			m = math.Nextafter(m, math.Inf(1))
		}
		for ref(m, FastDigits) == r {
			m = math.Nextafter(m, math.Inf(-1))
		}
		t.thresholds[i] = m
	}

	return t
}

// Span returns the half-width of the table in hundredths.
func (t *Table) Span() int {
	return t.span
}

// Round rounds x to digits decimal places. Two-digit requests inside the
// table range are answered with two array lookups.
func (t *Table) Round(x float64, digits int) float64 {
	if digits != FastDigits {
		return Fallback(x, digits)
	}

	f := math.Floor(x * 100)
	// The negated form also rejects NaN.
	if !(f >= -float64(t.span) && f <= float64(t.span)) {
		return Fallback(x, digits)
	}

	i := int(f) + t.span
	if x > t.thresholds[i] {
		i++
	}
	return t.muls[i]
}

// Fallback is the exact reference rounding: x is expanded to its exact
// decimal value, rounded half to even at digits places and parsed back.
func Fallback(x float64, digits int) float64 {
	if digits < 0 {
		panic(fmt.Sprintf("rround: negative digits %d", digits))
	}
	if digits == 0 {
		return roundToInteger(x)
	}

	s := strconv.FormatFloat(x, 'f', digits, 64)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("rround: cannot parse %q: %v", s, err))
	}
	return v
}

func roundToInteger(x float64) float64 {
	r := math.RoundToEven(x)
	if math.Abs(r) >= 0x1p63 && !math.IsInf(r, 0) {
		// Already integral and outside the int64 range.
		return r
	}
	return float64(toInt64(r))
}

// toInt64 converts an integral float. Non-finite input means a coordinate
// escaped the model and is treated as a broken invariant.
func toInt64(x float64) int64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("rround: cannot convert %v to an integer", x))
	}
	return int64(x)
}
