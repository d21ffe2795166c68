// Package config loads client settings from YAML, applying defaults and
// validating the result.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults used for any omitted field.
const (
	DefaultBaseURL      = "http://localhost:8000"
	DefaultPollInterval = Duration(time.Second)
	DefaultFetchTimeout = Duration(time.Second)
	DefaultWindowLen    = 50
	DefaultYMin         = -1.0
	DefaultYMax         = 1.0
	DefaultXLabel       = "Time"
	DefaultYLabel       = "sin(t)"
)

// Duration wraps time.Duration so YAML values can be written as "500ms" or
// "1s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "parse duration %q", s)
	}
	*d = Duration(dur)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config holds all client settings.
type Config struct {
	Feed  FeedConfig  `yaml:"feed"`
	Chart ChartConfig `yaml:"chart"`
}

// FeedConfig describes the polled endpoint and buffering.
type FeedConfig struct {
	BaseURL      string   `yaml:"base_url"`
	PollInterval Duration `yaml:"poll_interval"`
	FetchTimeout Duration `yaml:"fetch_timeout"`
	WindowLen    int      `yaml:"window_len"`
}

// ChartConfig describes the fixed value domain and axis labels.
type ChartConfig struct {
	YMin   *float64 `yaml:"y_min"`
	YMax   *float64 `yaml:"y_max"`
	XLabel string   `yaml:"x_label"`
	YLabel string   `yaml:"y_label"`
}

// Default returns a fully populated Config.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path, fills in defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %q", path)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %q", path)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %q", path)
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Feed.BaseURL == "" {
		c.Feed.BaseURL = DefaultBaseURL
	}
	if c.Feed.PollInterval == 0 {
		c.Feed.PollInterval = DefaultPollInterval
	}
	if c.Feed.FetchTimeout == 0 {
		c.Feed.FetchTimeout = DefaultFetchTimeout
	}
	if c.Feed.WindowLen == 0 {
		c.Feed.WindowLen = DefaultWindowLen
	}
	if c.Chart.YMin == nil {
		v := DefaultYMin
		c.Chart.YMin = &v
	}
	if c.Chart.YMax == nil {
		v := DefaultYMax
		c.Chart.YMax = &v
	}
	if c.Chart.XLabel == "" {
		c.Chart.XLabel = DefaultXLabel
	}
	if c.Chart.YLabel == "" {
		c.Chart.YLabel = DefaultYLabel
	}
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if c.Feed.PollInterval <= 0 {
		return errors.Errorf("poll interval (%v) must be > 0", c.Feed.PollInterval.Std())
	}
	if c.Feed.FetchTimeout > c.Feed.PollInterval {
		return errors.Errorf("fetch timeout (%v) must be <= poll interval (%v)",
			c.Feed.FetchTimeout.Std(), c.Feed.PollInterval.Std())
	}
	if c.Feed.WindowLen < 1 {
		return errors.Errorf("window length (%d) must be >= 1", c.Feed.WindowLen)
	}
	if *c.Chart.YMin >= *c.Chart.YMax {
		return errors.Errorf("y domain [%v, %v] must have y_min < y_max",
			*c.Chart.YMin, *c.Chart.YMax)
	}
	return nil
}
