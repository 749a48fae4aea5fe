package stream

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matt-g-everett/ledtween/tween"
)

var (
	defaultFore, _ = colorful.Hex("#808080")
	defaultBack, _ = colorful.Hex("#000005")
)

// Controller that manages animations. It owns the frame clock, cycles
// through the configured animations and crossfades between them with a
// Once-mode tween driving the blend factor.
type Controller struct {
	mu         sync.Mutex
	clock      *tween.Clock
	animations map[string]Animation
	order      []string
	current    string
	next       string
	transition float64
	blend      *tween.Driver
	blendTgt   *tween.FloatTarget
	cycle      time.Duration
	paused     bool
	lastFrame  *Frame
}

// NewController creates an instance of a Controller from configuration.
func NewController(config Config) (*Controller, error) {
	c := new(Controller)
	c.clock = tween.NewClock(config.Stream.TimeScale)
	c.cycle = time.Duration(config.Stream.CycleSecs * float64(time.Second))
	c.animations = make(map[string]Animation)

	c.blendTgt = tween.NewFloatTarget(
		func() float64 { return c.transition },
		func(v float64) { c.transition = v })
	c.blend = tween.NewDriver(c.blendTgt, config.Stream.TransitionSecs)
	c.blendTgt.SetRange(0, 1)
	// Crossfades run on real time so a slowed timeScale cannot drag an
	// animation switch out.
	c.blend.RealTime = true
	c.blend.OnComplete(func(*tween.Driver) { c.finishTransition() })

	if err := c.Reload(config); err != nil {
		return nil, err
	}

	return c, nil
}

// Reload replaces the animation set from configuration, keeping the current
// selection where it survives.
func (c *Controller) Reload(config Config) error {
	animations := make(map[string]Animation, len(config.Animations))
	order := make([]string, 0, len(config.Animations))
	for _, ac := range config.Animations {
		if ac.Name == "" {
			return fmt.Errorf("animation of type %q needs a name", ac.Type)
		}
		if _, exists := animations[ac.Name]; exists {
			return fmt.Errorf("duplicate animation %q", ac.Name)
		}
		a, err := buildAnimation(ac)
		if err != nil {
			return err
		}
		animations[ac.Name] = a
		order = append(order, ac.Name)
	}
	if len(order) == 0 {
		return fmt.Errorf("no animations configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.animations = animations
	c.order = order
	if _, ok := animations[c.current]; !ok {
		c.current = order[0]
		c.next = ""
		c.transition = 0
	}
	if c.next != "" {
		if _, ok := animations[c.next]; !ok {
			c.next = ""
			c.transition = 0
		}
	}
	return nil
}

// buildAnimation constructs one animation from its configuration.
func buildAnimation(cfg AnimationConfig) (Animation, error) {
	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	switch cfg.Type {
	case "pulse":
		fore, back := defaultFore, defaultBack
		if len(palette) > 0 {
			fore = palette[0]
		}
		if len(palette) > 1 {
			back = palette[1]
		}
		return NewPulse(fore, back, settings), nil
	case "fade":
		if len(palette) < 2 {
			return nil, fmt.Errorf("animation %s: fade needs at least two colours", cfg.Name)
		}
		return NewFade(palette, settings), nil
	case "trail":
		length := cfg.TrailLength
		if length <= 0 {
			length = 180
		}
		return NewGradientTrail(DefaultGradient, length, settings), nil
	}
	return nil, fmt.Errorf("animation %s: unknown type %q", cfg.Name, cfg.Type)
}

// Names lists the animations in configured order.
func (c *Controller) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}

// Current reports the animation being displayed. While a crossfade is
// running this is the outgoing animation.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Paused reports whether frame time is frozen.
func (c *Controller) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Pause freezes the controller's clock; frames keep streaming the last
// rendered state.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume unfreezes the controller's clock.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
}

// Switch starts a crossfade to the named animation.
func (c *Controller) Switch(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.switchLocked(name)
}

func (c *Controller) switchLocked(name string) error {
	if _, ok := c.animations[name]; !ok {
		return fmt.Errorf("unknown animation %q", name)
	}
	if name == c.current && c.next == "" {
		return nil
	}
	c.next = name
	c.blendTgt.SetRange(0, 1)
	c.blend.ResetToBeginning(true)
	return nil
}

// finishTransition runs from the blend tween's completion signal, under the
// controller lock held by Frame. The transition factor is left at the
// tween's final sample so the finishing frame still blends fully.
func (c *Controller) finishTransition() {
	c.current = c.next
	c.next = ""
}

func (c *Controller) cycleAnimation() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.order) < 2 || c.paused || c.next != "" {
		return
	}

	idx := 0
	for i, name := range c.order {
		if name == c.current {
			idx = i
			break
		}
	}
	if err := c.switchLocked(c.order[(idx+1)%len(c.order)]); err != nil {
		log.Printf("Cycle: %v", err)
	}
}

// Frame renders the next frame at the given wall time, advancing all tween
// drivers through the shared clock.
func (c *Controller) Frame(now time.Time) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		if c.lastFrame == nil {
			c.lastFrame = c.renderLocked()
		}
		return c.lastFrame
	}

	c.clock.Update(now)
	c.lastFrame = c.renderLocked()
	return c.lastFrame
}

func (c *Controller) renderLocked() *Frame {
	if c.next == "" {
		return c.animations[c.current].CalculateFrame(c.clock)
	}

	// Ticking the blend tween may complete the transition and swap
	// current/next, so pin both sides first.
	from, to := c.current, c.next
	c.blend.Advance(c.clock)
	f1 := c.animations[from].CalculateFrame(c.clock)
	f2 := c.animations[to].CalculateFrame(c.clock)
	return f1.InterpolateFrame(f2, c.transition)
}

// Run causes the Controller to cycle through animations.
func (c *Controller) Run() {
	publishTimer := time.NewTicker(c.cycle)
	for {
		<-publishTimer.C
		c.cycleAnimation()
	}
}
