package stream

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/ledtween/tween"
)

// Config is the yaml configuration for the streamer, the API and the
// animation set.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate      float64 `yaml:"frameRate"`
		TimeScale      float64 `yaml:"timeScale"`
		CycleSecs      float64 `yaml:"cycleSecs"`
		TransitionSecs float64 `yaml:"transitionSecs"`
	} `yaml:"stream"`
	Api struct {
		Listen    string `yaml:"listen"`
		StaticDir string `yaml:"staticDir"`
	} `yaml:"api"`
	Animations []AnimationConfig `yaml:"animations"`
}

// AnimationConfig describes one animation instance and its tween settings.
type AnimationConfig struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Duration    float64  `yaml:"duration"`
	Mode        string   `yaml:"mode"`
	Curve       string   `yaml:"curve"`
	StartDelay  float64  `yaml:"startDelay"`
	RealTime    bool     `yaml:"realTime"`
	Colours     []string `yaml:"colours"`
	TrailLength int      `yaml:"trailLength"`
}

// Settings carries the resolved tween configuration shared by the built-in
// animations.
type Settings struct {
	Duration   float64
	Mode       tween.Mode
	Curve      tween.Curve
	StartDelay float64
	RealTime   bool
}

// Apply copies the settings onto a driver.
func (s Settings) Apply(d *tween.Driver) {
	d.Duration = s.Duration
	d.Mode = s.Mode
	d.Curve = s.Curve
	d.StartDelay = s.StartDelay
	d.RealTime = s.RealTime
}

// Settings resolves the tween configuration, substituting per-type defaults
// for omitted fields.
func (a AnimationConfig) Settings() (Settings, error) {
	s := Settings{
		Duration:   a.Duration,
		Mode:       defaultMode(a.Type),
		Curve:      tween.DefaultCurve,
		StartDelay: a.StartDelay,
		RealTime:   a.RealTime,
	}
	if a.Mode != "" {
		mode, err := tween.ParseMode(a.Mode)
		if err != nil {
			return s, fmt.Errorf("animation %s: %w", a.Name, err)
		}
		s.Mode = mode
	}
	if a.Curve != "" {
		curve, err := tween.ParseCurve(a.Curve)
		if err != nil {
			return s, fmt.Errorf("animation %s: %w", a.Name, err)
		}
		s.Curve = curve
	}
	return s, nil
}

// Palette converts the configured hex colours.
func (a AnimationConfig) Palette() ([]colorful.Color, error) {
	palette := make([]colorful.Color, 0, len(a.Colours))
	for _, hex := range a.Colours {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("animation %s: bad colour %q: %w", a.Name, hex, err)
		}
		palette = append(palette, c)
	}
	return palette, nil
}

func defaultMode(animType string) tween.Mode {
	switch animType {
	case "pulse":
		return tween.PingPong
	case "trail":
		return tween.Loop
	}
	return tween.Once
}

// ParseConfig decodes and validates a yaml configuration document.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	c.applyDefaults()
	for _, ac := range c.Animations {
		if _, err := ac.Settings(); err != nil {
			return c, err
		}
	}
	return c, nil
}

// LoadConfig reads a yaml configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

func (c *Config) applyDefaults() {
	if c.Stream.FrameRate <= 0 {
		c.Stream.FrameRate = 30
	}
	if c.Stream.TimeScale <= 0 {
		c.Stream.TimeScale = 1
	}
	if c.Stream.CycleSecs <= 0 {
		c.Stream.CycleSecs = 60
	}
	if c.Stream.TransitionSecs <= 0 {
		c.Stream.TransitionSecs = 5
	}
	if c.Api.Listen == "" {
		c.Api.Listen = ":3000"
	}
	if c.Api.StaticDir == "" {
		c.Api.StaticDir = "client/dist"
	}
}
