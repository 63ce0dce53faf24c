package strategy

import (
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/BloomFiLabs/BloomKeeper-sub003/pkg/errors"
)

// Config carries a strategy's identity and parameters. Strategy-
// specific knobs go in Params; the engine itself only reads
// StrategyID and RequiredFields.
type Config struct {
	// StrategyID identifies the strategy instance in trades, events
	// and results.
	StrategyID string `yaml:"strategy_id" json:"strategy_id" validate:"required"`
	// RequiredFields names the MarketData fields the strategy needs
	// every tick. Ticks missing one fall under the engine's data-gap
	// policy.
	RequiredFields []string `yaml:"required_fields" json:"required_fields"`
	// Params are strategy-specific numeric parameters.
	Params map[string]float64 `yaml:"params" json:"params"`
}

// ParseConfig parses a YAML strategy config.
func ParseConfig(content string) (Config, error) {
	var config Config
	if err := yaml.Unmarshal([]byte(content), &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeStrategyConfigInvalid, "failed to parse strategy config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeStrategyConfigInvalid, "invalid strategy config", err)
	}

	return nil
}

// Param returns a named parameter or the given default when unset.
func (c *Config) Param(name string, fallback float64) float64 {
	if value, ok := c.Params[name]; ok {
		return value
	}

	return fallback
}
