// Package analysis composes the ADX and EMA indicators over one price history.
package analysis

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/indicator"
	"github.com/rxtech-lab/argo-indicators/pkg/logger"
	"github.com/rxtech-lab/argo-indicators/pkg/types"
	"go.uber.org/zap"
)

// Snapshot holds every indicator computed from the bars at or before Time.
type Snapshot struct {
	Time time.Time
	// Bars is the number of bars at or before Time.
	Bars int
	// ADXReady is false when there were too few bars to build the ADX engine;
	// ADX, PlusDI and MinusDI are empty in that case.
	ADXReady bool
	ADX      indicator.Series
	PlusDI   indicator.Series
	MinusDI  indicator.Series
	EMA      optional.Option[float64]
}

// Latest is the most recent defined value of each indicator.
type Latest struct {
	ADX     optional.Option[float64]
	PlusDI  optional.Option[float64]
	MinusDI optional.Option[float64]
	EMA     optional.Option[float64]
}

// Latest returns the last defined entry of each series. With FillNaN enabled
// the fill value counts as defined.
func (s Snapshot) Latest() Latest {
	return Latest{
		ADX:     s.ADX.Last(),
		PlusDI:  s.PlusDI.Last(),
		MinusDI: s.MinusDI.Last(),
		EMA:     s.EMA,
	}
}

// computed lists the indicators that have a value in the snapshot.
func (s Snapshot) computed() []string {
	names := make([]string, 0, 4)
	if s.ADXReady {
		names = append(names,
			string(types.IndicatorTypeADX),
			string(types.IndicatorTypePlusDI),
			string(types.IndicatorTypeMinusDI),
		)
	}

	if s.EMA.IsSome() {
		names = append(names, string(types.IndicatorTypeEMA))
	}

	return names
}

// Analyzer builds snapshots for a single symbol.
type Analyzer struct {
	config indicator.Config
	logger *logger.Logger
}

// NewAnalyzer validates config and returns an Analyzer. A nil log discards output.
func NewAnalyzer(config indicator.Config, log *logger.Logger) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Analyzer{
		config: config,
		logger: log,
	}, nil
}

// Config returns the indicator configuration in use.
func (a *Analyzer) Config() indicator.Config {
	return a.config
}

// Analyze computes the ADX series and the EMA from the bars at or before cutoff.
// bars must be ordered by increasing Time. Too little history for the ADX is
// not an error; the snapshot reports ADXReady=false instead.
func (a *Analyzer) Analyze(bars types.Bars, cutoff time.Time) (Snapshot, error) {
	history := bars.Until(cutoff)
	snapshot := Snapshot{
		Time: cutoff,
		Bars: len(history),
	}

	ema, err := a.config.NewEMA(history)
	if err != nil {
		return Snapshot{}, errors.Wrap(errors.ErrCodeIndicatorCalculation, "failed to build EMA", err)
	}

	snapshot.EMA = ema.ComputeAsOf(cutoff)

	adx, err := a.config.NewADX(history)

	switch {
	case err == nil:
		snapshot.ADXReady = true
		snapshot.ADX = adx.ADX()
		snapshot.PlusDI = adx.PlusDI()
		snapshot.MinusDI = adx.MinusDI()
	case errors.IsInsufficientDataError(err):
		a.logger.Warn("not enough history for ADX",
			zap.String("indicator", string(types.IndicatorTypeADX)),
			zap.Time("cutoff", cutoff),
			zap.Int("bars", len(history)),
			zap.Int("window", a.config.ADX.Window),
		)
	default:
		return Snapshot{}, errors.Wrap(errors.ErrCodeIndicatorCalculation, "failed to build ADX", err)
	}

	a.logger.Debug("computed indicator snapshot",
		zap.Time("cutoff", cutoff),
		zap.Strings("indicators", snapshot.computed()),
		zap.Int("bars", len(history)),
		zap.Bool("adx_ready", snapshot.ADXReady),
		zap.Bool("ema_ready", snapshot.EMA.IsSome()),
	)

	return snapshot, nil
}
