package stream

import "github.com/matt-g-everett/ledtween/tween"

// An Animation implements a way to render a specific animation. An
// implementation advances its tween drivers from the shared clock before
// rendering the frame.
type Animation interface {
	CalculateFrame(clock *tween.Clock) *Frame
}
