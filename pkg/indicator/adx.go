package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// ADX implements Wilder's Average Directional Index with its +DI and -DI components.
//
// All smoothed series are materialized by NewADX and never mutated, so an *ADX
// is safe for concurrent readers. Every accessor returns N-window+1 entries,
// one per window position.
type ADX struct {
	window  int
	fillNaN bool

	// Wilder running sums, one entry per window position.
	trueRange Series
	plusDM    Series
	minusDM   Series
}

// NewADX builds the smoothed true range and directional movement series from
// aligned highs, lows and closes.
//
// It fails with ErrCodeInvalidWindow when window <= 0, and with
// ErrCodeInvalidInput when the three series differ in length or hold fewer
// than window+2 bars.
func NewADX(highs, lows, closes []float64, window int, fillNaN bool) (*ADX, error) {
	if window <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "window must be a positive integer, got %d", window)
	}

	n := len(closes)
	if len(highs) != n || len(lows) != n {
		return nil, errors.Newf(errors.ErrCodeInvalidInput,
			"high, low and close must have equal lengths, got %d, %d and %d", len(highs), len(lows), n)
	}

	// n-window cannot overflow; window+2 can.
	if n-window < 2 {
		required := window + 2
		if required < window {
			required = math.MaxInt
		}

		return nil, errors.Wrap(errors.ErrCodeInvalidInput, "not enough bars to form a smoothing window",
			errors.NewInsufficientDataErrorf(required, n, "", "need at least %d bars for window %d, got %d", required, window, n))
	}

	pos, neg := directionalStrength(highs, lows)

	return &ADX{
		window:    window,
		fillNaN:   fillNaN,
		trueRange: wilderSmooth(directionalMovement(highs, lows, closes), window),
		plusDM:    wilderSmooth(pos, window),
		minusDM:   wilderSmooth(neg, window),
	}, nil
}

// Window returns the smoothing period.
func (a *ADX) Window() int { return a.window }

// FillNaN reports whether undefined entries are replaced by FillValue.
func (a *ADX) FillNaN() bool { return a.fillNaN }

// Len returns the number of window positions, N-window+1.
func (a *ADX) Len() int { return len(a.trueRange) }

// PlusDI returns the positive directional indicator per window position.
func (a *ADX) PlusDI() Series {
	return a.fill(a.directionalIndicator(a.plusDM))
}

// MinusDI returns the negative directional indicator per window position.
func (a *ADX) MinusDI() Series {
	return a.fill(a.directionalIndicator(a.minusDM))
}

// ADX returns the average directional index per window position.
// Positions before Window() are undefined; position Window() is the mean of
// the first Window() directional index values, and later positions follow
// adx[i] = (adx[i-1]*(window-1) + dx[i-1]) / window.
func (a *ADX) ADX() Series {
	dx := a.directionalIndex()
	out := make(Series, len(dx))

	if len(out) <= a.window {
		return a.fill(out)
	}

	w := float64(a.window)

	sum := 0.0
	for _, v := range dx[:a.window] {
		sum += v.Unwrap()
	}

	prev := sum / w
	out[a.window] = optional.Some(prev)

	for i := a.window + 1; i < len(out); i++ {
		prev = (prev*(w-1) + dx[i-1].Unwrap()) / w
		out[i] = optional.Some(prev)
	}

	return a.fill(out)
}

// directionalIndex returns 100*|+DI - -DI| / (+DI + -DI) per position, 0 on a
// zero sum and undefined where either indicator is undefined.
func (a *ADX) directionalIndex() Series {
	plus := a.directionalIndicator(a.plusDM)
	minus := a.directionalIndicator(a.minusDM)

	out := make(Series, len(plus))
	for i := range plus {
		if plus[i].IsNone() || minus[i].IsNone() {
			continue
		}

		p, m := plus[i].Unwrap(), minus[i].Unwrap()
		if p+m == 0 {
			out[i] = optional.Some(0.0)

			continue
		}

		out[i] = optional.Some(100 * math.Abs((p-m)/(p+m)))
	}

	return out
}

// directionalIndicator divides a smoothed movement series by the smoothed true range.
func (a *ADX) directionalIndicator(movement Series) Series {
	out := make(Series, len(a.trueRange))
	for i, tr := range a.trueRange {
		if tr.IsNone() || movement[i].IsNone() {
			continue
		}

		if tr.Unwrap() == 0 {
			out[i] = optional.Some(0.0)

			continue
		}

		out[i] = optional.Some(100 * (movement[i].Unwrap() / tr.Unwrap()))
	}

	return out
}

func (a *ADX) fill(s Series) Series {
	if !a.fillNaN {
		return s
	}

	return s.filled()
}

// directionalMovement returns round(max(highs[i], closes[i-1]) - min(lows[i], closes[i-1]), 2).
// Index 0 has no predecessor and is reported as 0; wilderSmooth never reads it.
func directionalMovement(highs, lows, closes []float64) []float64 {
	out := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		out[i] = round2(math.Max(highs[i], closes[i-1]) - math.Min(lows[i], closes[i-1]))
	}

	return out
}

// directionalStrength splits bar-to-bar moves into positive and negative
// directional movement. Index 0 is 0 in both series.
func directionalStrength(highs, lows []float64) (pos, neg []float64) {
	pos = make([]float64, len(highs))
	neg = make([]float64, len(highs))

	for i := 1; i < len(highs); i++ {
		up := round2(highs[i] - highs[i-1])
		down := round2(lows[i-1] - lows[i])

		if up > down && up > 0 {
			pos[i] = math.Abs(up)
		}

		if down > up && down > 0 {
			neg[i] = math.Abs(down)
		}
	}

	return pos, neg
}

// wilderSmooth seeds with sum(raw[1:window+1]) and then applies
// S[i] = S[i-1] - S[i-1]/window + raw[window+i].
//
// The result has len(raw)-window+1 entries. The final entry would need
// raw[len(raw)], which does not exist, so it stays undefined.
func wilderSmooth(raw []float64, window int) Series {
	out := make(Series, len(raw)-window+1)
	w := float64(window)

	prev := 0.0
	for _, v := range raw[1 : window+1] {
		prev += v
	}

	out[0] = optional.Some(prev)

	for i := 1; window+i < len(raw); i++ {
		prev = prev - prev/w + raw[window+i]
		out[i] = optional.Some(prev)
	}

	return out
}
