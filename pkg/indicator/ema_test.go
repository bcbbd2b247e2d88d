package indicator

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/types"
	"github.com/stretchr/testify/suite"
)

type EMATestSuite struct {
	suite.Suite
	start time.Time
	bars  types.Bars
}

func TestEMASuite(t *testing.T) {
	suite.Run(t, new(EMATestSuite))
}

func (suite *EMATestSuite) SetupTest() {
	suite.start = time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)

	closes := []float64{100, 102, 104, 103, 107, 109, 110, 111, 112, 115}
	suite.bars = make(types.Bars, len(closes))

	for i, c := range closes {
		suite.bars[i] = types.Bar{
			Time:  suite.start.Add(time.Duration(i) * time.Hour),
			Close: c,
		}
	}
}

func (suite *EMATestSuite) at(hour int) time.Time {
	return time.Date(2024, 10, 1, hour, 0, 0, 0, time.UTC)
}

func (suite *EMATestSuite) TestNewEMAInvalidLength() {
	for _, length := range []int{0, -1} {
		ema, err := NewEMA(suite.bars, length)
		suite.Nil(ema)
		suite.True(errors.HasCode(err, errors.ErrCodeInvalidWindow), "length %d", length)
		suite.Contains(err.Error(), "length must be a positive integer")
	}
}

func (suite *EMATestSuite) TestLength() {
	ema, err := NewEMA(suite.bars, 5)
	suite.Require().NoError(err)
	suite.Equal(5, ema.Length())
}

func (suite *EMATestSuite) TestWorkedExample() {
	ema, err := NewEMA(suite.bars, 5)
	suite.Require().NoError(err)

	// seed = mean(100, 102, 104, 103, 107) = 103.2, then 109, 110, 111, 112
	value := ema.ComputeAsOf(suite.at(17))
	suite.Require().True(value.IsSome())
	suite.InDelta(109.44691358024693, value.Unwrap(), 1e-9)
}

func (suite *EMATestSuite) TestComputeAsOf() {
	ema, err := NewEMA(suite.bars, 5)
	suite.Require().NoError(err)

	tests := []struct {
		name     string
		cutoff   time.Time
		expected float64
	}{
		{name: "exactly length bars returns the seed", cutoff: suite.at(13), expected: 103.2},
		{name: "cutoff between bars", cutoff: suite.at(13).Add(59 * time.Minute), expected: 103.2},
		{name: "one step after the seed", cutoff: suite.at(14), expected: 105.13333333333334},
		{name: "all bars", cutoff: suite.at(18), expected: 111.2979423868313},
		{name: "cutoff after the last bar", cutoff: suite.at(23), expected: 111.2979423868313},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			value := ema.ComputeAsOf(tc.cutoff)
			suite.Require().True(value.IsSome())
			suite.InDelta(tc.expected, value.Unwrap(), 1e-9)
		})
	}
}

func (suite *EMATestSuite) TestInsufficientData() {
	ema, err := NewEMA(suite.bars, 5)
	suite.Require().NoError(err)

	suite.True(ema.ComputeAsOf(suite.at(12)).IsNone())
	suite.True(ema.ComputeAsOf(suite.at(8)).IsNone())

	long, err := NewEMA(suite.bars, 11)
	suite.Require().NoError(err)
	suite.True(long.ComputeAsOf(suite.at(23)).IsNone())

	empty, err := NewEMA(nil, 3)
	suite.Require().NoError(err)
	suite.True(empty.ComputeAsOf(suite.at(23)).IsNone())
}

func (suite *EMATestSuite) TestRepeatedCallsAreIndependent() {
	ema, err := NewEMA(suite.bars, 5)
	suite.Require().NoError(err)

	first := ema.ComputeAsOf(suite.at(17))
	_ = ema.ComputeAsOf(suite.at(18))
	_ = ema.ComputeAsOf(suite.at(10))
	suite.Equal(first, ema.ComputeAsOf(suite.at(17)))
}

func (suite *EMATestSuite) TestLengthOneTracksClose() {
	ema, err := NewEMA(suite.bars, 1)
	suite.Require().NoError(err)

	// alpha = 1, so the EMA is the last close
	suite.InDelta(112.0, ema.ComputeAsOf(suite.at(17)).Unwrap(), 1e-12)
}

func (suite *EMATestSuite) TestCalculateExponentialMovingAverage() {
	suite.InDelta(2.0, calculateExponentialMovingAverage([]float64{1, 2, 3}, 3), 1e-12)
	// seed 1.5, alpha 2/3: 2/3*3 + 1/3*1.5 = 2.5
	suite.InDelta(2.5, calculateExponentialMovingAverage([]float64{1, 2, 3}, 2), 1e-12)
}
