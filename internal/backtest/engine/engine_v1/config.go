package engine

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"

	"github.com/BloomFiLabs/BloomKeeper-sub003/internal/backtest/engine/engine_v1/fees"
	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

type BacktestEngineV1Config struct {
	// PeriodsPerYear annualizes the sharpe ratio. 252 treats each tick
	// as one trading day.
	PeriodsPerYear          int        `yaml:"periods_per_year" json:"periods_per_year" validate:"gt=0" jsonschema:"title=Periods Per Year,description=Number of return periods per year used to annualize the sharpe ratio,minimum=1"`
	EmergencyCloseThreshold float64    `yaml:"emergency_close_threshold" json:"emergency_close_threshold" validate:"gt=0,lte=1" jsonschema:"title=Emergency Close Threshold,description=Liquidation proximity above which a risk limit breach event is published,minimum=0,maximum=1"`
	MaxDataGap              int        `yaml:"max_data_gap" json:"max_data_gap" validate:"gte=0" jsonschema:"title=Max Data Gap,description=Number of consecutive incomplete ticks tolerated before the run aborts,minimum=0"`
	AllowNegativeCash       bool       `yaml:"allow_negative_cash" json:"allow_negative_cash" jsonschema:"title=Allow Negative Cash,description=Whether trades may push the cash balance below zero"`
	FeeModel                fees.Model `yaml:"fee_model" json:"fee_model" jsonschema:"title=Fee Model,description=Fee model applied to trades that carry no explicit fee"`
	FeeRate                 float64    `yaml:"fee_rate" json:"fee_rate" validate:"gte=0" jsonschema:"title=Fee Rate,description=Fraction of notional charged per trade by the percentage fee model,minimum=0"`
	// MaxTicks caps the number of processed ticks. Zero means no cap.
	MaxTicks int `yaml:"max_ticks" json:"max_ticks" validate:"gte=0" jsonschema:"title=Max Ticks,description=Maximum number of ticks to process before stopping the run. Zero disables the cap,minimum=0"`
}

// DefaultConfig returns the settings an engine runs with when the yaml
// config leaves a field unset.
func DefaultConfig() BacktestEngineV1Config {
	return BacktestEngineV1Config{
		PeriodsPerYear:          252,
		EmergencyCloseThreshold: 0.7,
		MaxDataGap:              5,
		AllowNegativeCash:       false,
		FeeModel:                fees.ModelZero,
		FeeRate:                 0,
		MaxTicks:                0,
	}
}

func (c *BacktestEngineV1Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEngineConfig, "invalid engine configuration", err)
	}

	if _, err := fees.GetFeeModel(c.FeeModel, c.FeeRate); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidEngineConfig, "invalid engine configuration", err)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if strings.Contains(t.String(), "fees.Model") {
				return &jsonschema.Schema{
					Type: "string",
					Enum: fees.AllModels,
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)
	schema.Title = "backtest-engine-v1-config"
	schema.Description = "Configuration schema for BacktestEngineV1"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateSchemaJSON generates a JSON schema string for the BacktestEngineV1Config
func (c *BacktestEngineV1Config) GenerateSchemaJSON() (string, error) {
	schema, err := c.GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
