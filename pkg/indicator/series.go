package indicator

import (
	"strconv"

	"github.com/moznion/go-optional"
)

// FillValue replaces undefined entries when an engine is built with fillNaN.
const FillValue = 20.0

// Series is an indicator output aligned to window positions.
// A None entry means "not available yet", which is distinct from a computed zero.
type Series []optional.Option[float64]

// Defined returns the number of Some entries.
func (s Series) Defined() int {
	n := 0
	for _, v := range s {
		if v.IsSome() {
			n++
		}
	}

	return n
}

// Last returns the last defined entry, or None if there is none.
func (s Series) Last() optional.Option[float64] {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].IsSome() {
			return s[i]
		}
	}

	return optional.None[float64]()
}

// Float64s flattens the series, writing fallback wherever an entry is undefined.
func (s Series) Float64s(fallback float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		if v.IsNone() {
			out[i] = fallback

			continue
		}

		out[i] = v.Unwrap()
	}

	return out
}

// filled returns a copy of s with every undefined entry set to FillValue.
func (s Series) filled() Series {
	out := make(Series, len(s))
	for i, v := range s {
		if v.IsNone() {
			out[i] = optional.Some(FillValue)

			continue
		}

		out[i] = v
	}

	return out
}

// round2 rounds half to even on the exact binary value, matching
// the two-decimal rounding applied to price deltas before smoothing.
func round2(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)

	return r
}
