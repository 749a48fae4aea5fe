package tween

// A FloatTarget tweens a single float64 property through a get/set pair.
type FloatTarget struct {
	get   func() float64
	set   func(float64)
	start float64
	end   float64
}

// NewFloatTarget creates an instance of a FloatTarget over the given
// accessors.
func NewFloatTarget(get func() float64, set func(float64)) *FloatTarget {
	t := new(FloatTarget)
	t.get = get
	t.set = set
	return t
}

// SetRange sets both endpoints explicitly, replacing any captured values.
func (t *FloatTarget) SetRange(start, end float64) {
	t.start = start
	t.end = end
}

// SampleAt writes the unclamped linear interpolation of the endpoints.
func (t *FloatTarget) SampleAt(factor float64, finished bool) {
	t.set(lerp(t.start, t.end, factor))
}

// CaptureStart stores the property's current value as the start endpoint.
func (t *FloatTarget) CaptureStart() {
	t.start = t.get()
}

// CaptureEnd stores the property's current value as the end endpoint.
func (t *FloatTarget) CaptureEnd() {
	t.end = t.get()
}

// lerp interpolates without clamping so overshooting curves extrapolate.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
