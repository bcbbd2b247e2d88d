package indicator

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
	"github.com/rxtech-lab/argo-indicators/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	DefaultADXWindow = 14
	DefaultEMALength = 20
)

// ADXConfig configures the ADX engine.
type ADXConfig struct {
	Window  int  `json:"window" yaml:"window" jsonschema:"title=Window,description=Wilder smoothing period,minimum=1,default=14" validate:"gt=0"`
	FillNaN bool `json:"fillNaN" yaml:"fill_nan" jsonschema:"title=Fill NaN,description=Replace undefined entries with 20,default=false"`
}

// EMAConfig configures the EMA calculator.
type EMAConfig struct {
	Length int `json:"length" yaml:"length" jsonschema:"title=Length,description=EMA lookback period,minimum=1,default=20" validate:"gt=0"`
}

// Config groups the indicator parameters for one price history.
type Config struct {
	ADX ADXConfig `json:"adx" yaml:"adx" jsonschema:"title=ADX"`
	EMA EMAConfig `json:"ema" yaml:"ema" jsonschema:"title=EMA"`
}

// DefaultConfig returns a 14-period ADX without fill and a 20-period EMA.
func DefaultConfig() Config {
	return Config{
		ADX: ADXConfig{
			Window:  DefaultADXWindow,
			FillNaN: false,
		},
		EMA: EMAConfig{
			Length: DefaultEMALength,
		},
	}
}

// Validate checks the config. A non-positive window or length is reported
// with ErrCodeInvalidWindow, anything else with ErrCodeInvalidConfiguration.
func (c *Config) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			if fieldErr.Field() == "Window" || fieldErr.Field() == "Length" {
				return errors.Wrap(errors.ErrCodeInvalidWindow, "invalid config", err)
			}
		}
	}

	return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
}

// NewADX builds an ADX engine over bars using the ADX section.
func (c *Config) NewADX(bars types.Bars) (*ADX, error) {
	return NewADX(bars.Highs(), bars.Lows(), bars.Closes(), c.ADX.Window, c.ADX.FillNaN)
}

// NewEMA builds an EMA calculator over bars using the EMA section.
func (c *Config) NewEMA(bars types.Bars) (*EMA, error) {
	return NewEMA(bars, c.EMA.Length)
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected. Empty input yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil && !stderrors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse YAML config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// ConfigJSONSchema returns the JSON schema of Config with definitions inlined.
func ConfigJSONSchema() (string, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(Config{})

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal config schema", err)
	}

	return string(schemaBytes), nil
}
