package main

import (
	"fmt"
	"os"

	"github.com/UTD-JLA/dictionary/internal/loader"
	"github.com/UTD-JLA/dictionary/pkg/pairs"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Capacity      int            `toml:"capacity"`
	MaxConcurrent int            `toml:"max_concurrent"`
	Lookup        []string       `toml:"lookup"`
	Print         bool           `toml:"print"`
	Sources       []pairs.Source `toml:"source"`
}

func NewConfig() *Config {
	return &Config{}
}

func (c *Config) Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}

	defer file.Close()

	if err = toml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return nil
}

func (c *Config) LoaderConfig() loader.Config {
	lc := loader.NewDefaultConfig(c.Sources...).WithCapacity(c.Capacity)

	if c.MaxConcurrent > 0 {
		lc = lc.WithMaxConcurrent(c.MaxConcurrent)
	}

	return lc
}
