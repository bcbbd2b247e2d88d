package types

import "time"

// Bar is one time-indexed price observation.
type Bar struct {
	Time   time.Time `json:"time" yaml:"time"`
	Open   float64   `json:"open" yaml:"open"`
	High   float64   `json:"high" yaml:"high"`
	Low    float64   `json:"low" yaml:"low"`
	Close  float64   `json:"close" yaml:"close"`
	Volume float64   `json:"volume" yaml:"volume"`
}

// Bars is a price history ordered by increasing Time.
// Nothing in this module re-sorts a Bars value; ordering is the caller's job.
type Bars []Bar

// Highs returns the high prices in bar order.
func (b Bars) Highs() []float64 {
	out := make([]float64, len(b))
	for i, bar := range b {
		out[i] = bar.High
	}

	return out
}

// Lows returns the low prices in bar order.
func (b Bars) Lows() []float64 {
	out := make([]float64, len(b))
	for i, bar := range b {
		out[i] = bar.Low
	}

	return out
}

// Closes returns the closing prices in bar order.
func (b Bars) Closes() []float64 {
	out := make([]float64, len(b))
	for i, bar := range b {
		out[i] = bar.Close
	}

	return out
}

// Until returns the bars whose Time is at or before cutoff, preserving order.
func (b Bars) Until(cutoff time.Time) Bars {
	out := make(Bars, 0, len(b))
	for _, bar := range b {
		if !bar.Time.After(cutoff) {
			out = append(out, bar)
		}
	}

	return out
}
