package stream

import (
	"fmt"
	"os"

	"github.com/matt-g-everett/rainbow/rainbow"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration shared by the command line, the MQTT
// streamer and the HTTP API.
type Config struct {
	Rainbow struct {
		Spectrum []string `yaml:"spectrum"`
		Min      float64  `yaml:"min"`
		Max      float64  `yaml:"max"`
	} `yaml:"rainbow"`
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		Topics   struct {
			Values string `yaml:"values"`
			Colour string `yaml:"colour"`
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Api struct {
		Listen string `yaml:"listen"`
	} `yaml:"api"`
	Gauge struct {
		Pixels     int    `yaml:"pixels"`
		Background string `yaml:"background"`
	} `yaml:"gauge"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var c Config
	c.Rainbow.Spectrum = append([]string(nil), rainbow.DefaultSpectrum...)
	c.Rainbow.Min = rainbow.DefaultMin
	c.Rainbow.Max = rainbow.DefaultMax
	c.Mqtt.ClientID = "rainbow"
	c.Mqtt.Topics.Values = "rainbow/value"
	c.Mqtt.Topics.Colour = "rainbow/colour"
	c.Api.Listen = ":3000"
	c.Gauge.Pixels = 500
	c.Gauge.Background = "000000"
	return c
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}

	if c.Gauge.Pixels <= 0 || c.Gauge.Pixels > maxPixels {
		return c, fmt.Errorf("gauge pixels must be within 1..%d, got %d", maxPixels, c.Gauge.Pixels)
	}
	if _, err := rainbow.ParseColor(c.Gauge.Background); err != nil {
		return c, fmt.Errorf("gauge background: %w", err)
	}

	return c, nil
}

// NewRainbow builds a Rainbow from the configured range and spectrum.
func (c *Config) NewRainbow() (*rainbow.Rainbow, error) {
	r := rainbow.New()
	if err := r.SetNumberRange(c.Rainbow.Min, c.Rainbow.Max); err != nil {
		return nil, err
	}
	if err := r.SetSpectrum(c.Rainbow.Spectrum); err != nil {
		return nil, err
	}
	return r, nil
}
