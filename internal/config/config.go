package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultValues is the demo set checked when a config names no values:
// two palindromes and a near miss.
var DefaultValues = []int64{121, 123, 1001}

type Config struct {
	Values []int64 `yaml:"values"`
	Plot   bool    `yaml:"plot"`
}

func DefaultConfig() *Config {
	return &Config{
		Values: append([]int64(nil), DefaultValues...),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
