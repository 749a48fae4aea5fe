package tween

// A Target knows how to turn an eased progress factor into a concrete value
// on some animated property, and how to read the property's current value
// back as an endpoint. Concrete targets are thin adapters; the driver only
// ever holds this interface.
type Target interface {
	// SampleAt writes the interpolated value for the given eased factor to
	// the underlying property. The factor may fall outside [0,1] when the
	// curve overshoots, so implementations interpolate without clamping.
	// finished reports the driver's finish state for this sample.
	SampleAt(factor float64, finished bool)

	// CaptureStart stores the property's current value as the start endpoint.
	CaptureStart()

	// CaptureEnd stores the property's current value as the end endpoint.
	CaptureEnd()
}
