package types

// IndicatorType names an indicator series in logs and snapshots.
type IndicatorType string

const (
	IndicatorTypeADX     IndicatorType = "adx"
	IndicatorTypePlusDI  IndicatorType = "plus_di"
	IndicatorTypeMinusDI IndicatorType = "minus_di"
	IndicatorTypeEMA     IndicatorType = "ema"
)
