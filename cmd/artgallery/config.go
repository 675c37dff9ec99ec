package main

import (
	"os"

	"github.com/osuushi/artgallery/polyio"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings for a run. A --config file fills these in, and flags given on the
// command line take precedence over it.
type Config struct {
	Input   string  `yaml:"input"`
	Format  string  `yaml:"format"`
	Random  int     `yaml:"random"`
	Seed    int64   `yaml:"seed"`
	PNG     string  `yaml:"png"`
	Scale   float64 `yaml:"scale"`
	Imgcat  bool    `yaml:"imgcat"`
	Frames  string  `yaml:"frames"`
	Out     string  `yaml:"out"`
	Dump    bool    `yaml:"dump"`
	Verbose bool    `yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Format: polyio.FormatAuto,
		Seed:   1,
	}
}

// Read a YAML config on top of the defaults. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return config, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, errors.Wrapf(err, "decoding config %s", path)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	known := false
	for _, format := range polyio.Formats {
		if c.Format == format {
			known = true
		}
	}
	if !known {
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.Random < 0 {
		return errors.Errorf("random vertex count must not be negative, got %d", c.Random)
	}
	if c.Random > 0 && c.Random < 3 {
		return errors.Errorf("a random polygon needs at least 3 vertices, got %d", c.Random)
	}
	if c.Scale < 0 {
		return errors.Errorf("scale must not be negative, got %v", c.Scale)
	}
	if c.Imgcat && c.PNG == "" {
		return errors.New("imgcat needs a png path")
	}
	return nil
}
