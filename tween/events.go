package tween

// Handle identifies a registered callback so it can be removed later.
type Handle int

// Callback receives the driver that raised the signal.
type Callback func(*Driver)

type handler struct {
	id Handle
	fn Callback
}

// signal holds an ordered list of callbacks dispatched synchronously in
// registration order.
type signal struct {
	last     Handle
	handlers []handler
}

func (s *signal) add(fn Callback) Handle {
	s.last++
	s.handlers = append(s.handlers, handler{s.last, fn})
	return s.last
}

func (s *signal) remove(h Handle) bool {
	for i := range s.handlers {
		if s.handlers[i].id == h {
			s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *signal) emit(d *Driver) {
	for _, h := range s.handlers {
		h.fn(d)
	}
}
