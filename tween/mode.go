package tween

import "fmt"

// Mode governs what happens when progress reaches a timeline boundary.
type Mode int

const (
	// Once plays a single pass then stops, firing the completion signal.
	Once Mode = iota
	// Loop wraps back to the start, keeping the fractional remainder.
	Loop
	// PingPong reverses direction at either boundary.
	PingPong
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case Loop:
		return "loop"
	case PingPong:
		return "pingpong"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode converts a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "once":
		return Once, nil
	case "loop":
		return Loop, nil
	case "pingpong":
		return PingPong, nil
	}
	return Once, fmt.Errorf("unknown playback mode %q", s)
}
