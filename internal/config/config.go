package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Console  Console `yaml:"console"`
}

type Console struct {
	Prompt string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"Your play: "`

	// cleanenv treats false as unset, so boolean defaults live in newDefault instead of env-default.
	ClearScreen bool `yaml:"clear-screen" env:"CONSOLE_CLEAR_SCREEN"`
	Replay      bool `yaml:"replay" env:"CONSOLE_REPLAY"`
}

func newDefault() *Config {
	return &Config{
		Console: Console{
			ClearScreen: true,
			Replay:      true,
		},
	}
}

// MustLoad - load configuration from the yml file when it exists, otherwise from the environment only.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := newDefault()

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	return config, nil
}
