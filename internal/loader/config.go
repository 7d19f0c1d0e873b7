package loader

import "github.com/UTD-JLA/dictionary/pkg/pairs"

const (
	defaultMaxConcurrent = 4
)

type Config struct {
	Sources       []pairs.Source
	Capacity      int
	MaxConcurrent int
}

func (c Config) WithSources(sources ...pairs.Source) Config {
	c.Sources = sources
	return c
}

// WithCapacity presizes the merged dictionary. Zero sizes it from the number
// of pairs read.
func (c Config) WithCapacity(capacity int) Config {
	c.Capacity = capacity
	return c
}

func (c Config) WithMaxConcurrent(n int) Config {
	c.MaxConcurrent = n
	return c
}

func NewDefaultConfig(sources ...pairs.Source) Config {
	return Config{
		Sources:       sources,
		MaxConcurrent: defaultMaxConcurrent,
	}
}
