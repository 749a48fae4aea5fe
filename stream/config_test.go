package stream_test

import (
	"strings"
	"testing"

	"github.com/matt-g-everett/ledtween/stream"
	"github.com/matt-g-everett/ledtween/tween"
)

const configDoc = `
mqtt:
  url: tcp://broker.local:1883
  username: ledtween
  password: secret
  topics:
    stream: home/xmastree/stream
    control: home/xmastree/control
stream:
  frameRate: 25
  timeScale: 0.5
  cycleSecs: 120
  transitionSecs: 2
animations:
  - name: breathe
    type: pulse
    duration: 3
    curve: in-out-sine
    colours: ["#804020", "#100505"]
  - name: drift
    type: fade
    duration: 10
    mode: once
    startDelay: 1.5
    colours: ["#100505", "#051010", "#101005"]
  - name: rainbow
    type: trail
    duration: 8
    mode: loop
    realTime: true
    trailLength: 200
`

func TestParseConfig(t *testing.T) {
	cfg, err := stream.ParseConfig([]byte(configDoc))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if cfg.Mqtt.URL != "tcp://broker.local:1883" {
		t.Fatalf("unexpected mqtt url %q", cfg.Mqtt.URL)
	}
	if cfg.Mqtt.Topics.Control != "home/xmastree/control" {
		t.Fatalf("unexpected control topic %q", cfg.Mqtt.Topics.Control)
	}
	if cfg.Stream.FrameRate != 25 || cfg.Stream.TimeScale != 0.5 {
		t.Fatalf("stream section not decoded: %+v", cfg.Stream)
	}
	if len(cfg.Animations) != 3 {
		t.Fatalf("expected 3 animations, got %d", len(cfg.Animations))
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := stream.ParseConfig([]byte("animations:\n  - name: a\n    type: pulse\n"))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if cfg.Stream.FrameRate != 30 {
		t.Fatalf("expected default frame rate 30, got %f", cfg.Stream.FrameRate)
	}
	if cfg.Stream.TimeScale != 1 {
		t.Fatalf("expected default time scale 1, got %f", cfg.Stream.TimeScale)
	}
	if cfg.Stream.CycleSecs != 60 || cfg.Stream.TransitionSecs != 5 {
		t.Fatalf("expected default cycle settings, got %+v", cfg.Stream)
	}
	if cfg.Api.Listen != ":3000" {
		t.Fatalf("expected default listen address, got %q", cfg.Api.Listen)
	}
}

func TestAnimationSettings(t *testing.T) {
	cases := []struct {
		name     string
		config   stream.AnimationConfig
		wantMode tween.Mode
		wantErr  string
	}{
		{
			name:     "pulse_defaults_to_pingpong",
			config:   stream.AnimationConfig{Name: "p", Type: "pulse", Duration: 2},
			wantMode: tween.PingPong,
		},
		{
			name:     "trail_defaults_to_loop",
			config:   stream.AnimationConfig{Name: "t", Type: "trail", Duration: 2},
			wantMode: tween.Loop,
		},
		{
			name:     "explicit_mode_wins",
			config:   stream.AnimationConfig{Name: "p", Type: "pulse", Mode: "once"},
			wantMode: tween.Once,
		},
		{
			name:    "unknown_mode",
			config:  stream.AnimationConfig{Name: "p", Type: "pulse", Mode: "bounce"},
			wantErr: "unknown playback mode",
		},
		{
			name:    "unknown_curve",
			config:  stream.AnimationConfig{Name: "p", Type: "pulse", Curve: "wobble"},
			wantErr: "unknown curve",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			settings, err := c.config.Settings()
			if c.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), c.wantErr) {
					t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if settings.Mode != c.wantMode {
				t.Fatalf("expected mode %v, got %v", c.wantMode, settings.Mode)
			}
			if settings.Curve == nil {
				t.Fatalf("settings must always carry a curve")
			}
		})
	}
}

func TestPaletteRejectsBadColours(t *testing.T) {
	config := stream.AnimationConfig{Name: "p", Type: "pulse", Colours: []string{"#80", "#100505"}}
	if _, err := config.Palette(); err == nil {
		t.Fatalf("expected an error for a malformed hex colour")
	}

	config.Colours = []string{"#804020", "#100505"}
	palette, err := config.Palette()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(palette) != 2 {
		t.Fatalf("expected 2 colours, got %d", len(palette))
	}
}
