package indicator

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/types"
)

// EMA computes an Exponential Moving Average of closes as of a cutoff time.
//
// No state is derived at construction; each ComputeAsOf call filters and
// reduces the full bar sequence, so one EMA can serve any number of cutoffs.
type EMA struct {
	bars   types.Bars
	length int
}

// NewEMA creates an EMA over bars, which must be ordered by increasing Time.
// It fails with ErrCodeInvalidWindow when length <= 0.
func NewEMA(bars types.Bars, length int) (*EMA, error) {
	if length <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidWindow, "length must be a positive integer, got %d", length)
	}

	return &EMA{
		bars:   bars,
		length: length,
	}, nil
}

// Length returns the lookback period.
func (e *EMA) Length() int { return e.length }

// ComputeAsOf returns the EMA over the closes of bars with Time <= cutoff.
// It returns None when fewer than Length() bars fall at or before cutoff.
func (e *EMA) ComputeAsOf(cutoff time.Time) optional.Option[float64] {
	closes := e.bars.Until(cutoff).Closes()
	if len(closes) < e.length {
		return optional.None[float64]()
	}

	return optional.Some(calculateExponentialMovingAverage(closes, e.length))
}

// calculateExponentialMovingAverage seeds with the SMA of the first period
// prices, then applies EMA = price*alpha + EMA_prev*(1-alpha) with
// alpha = 2/(period+1). len(prices) must be at least period.
func calculateExponentialMovingAverage(prices []float64, period int) float64 {
	sma := 0.0
	for _, p := range prices[:period] {
		sma += p
	}

	sma /= float64(period)

	alpha := 2.0 / float64(period+1)

	ema := sma
	for _, p := range prices[period:] {
		ema = alpha*p + (1-alpha)*ema
	}

	return ema
}
