package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/roundel-game/roundel/pkg/roundel"
)

var ErrOddRingCells = errors.New("ring-cells must be even, center lines need an opposite cell")

// Settings of the interactive game. Every field has an environment
// fallback so the binary runs without a config file at all.
type Config struct {
	RingCells uint8  `yaml:"ring-cells" env:"ROUNDEL_RING_CELLS" env-default:"8"`
	LogLevel  string `yaml:"log-level" env:"ROUNDEL_LOG_LEVEL" env-default:"info"`
	LogFile   string `yaml:"log-file" env:"ROUNDEL_LOG_FILE" env-default:"roundel.log"`
	NoColor   bool   `yaml:"no-color" env:"ROUNDEL_NO_COLOR" env-default:"false"`
}

// Load the configuration from path if the file exists, otherwise from
// the environment and the defaults
func Load(path string) (*Config, error) {
	conf := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, conf); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (conf *Config) validate() error {
	if conf.RingCells == 0 {
		return roundel.ErrNoCells
	}
	if conf.RingCells > roundel.MaxRingCells {
		return roundel.ErrTooManyCells
	}
	// The interactive game always plays with the center cell, so the
	// even-length precondition of the center rule applies here
	if conf.RingCells%2 != 0 {
		return ErrOddRingCells
	}
	return nil
}
