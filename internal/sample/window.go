package sample

// DefaultWindowLen is the number of samples kept for the scrolling chart.
const DefaultWindowLen = 50

// Window is a bounded FIFO of samples in chronological order. Appending
// beyond capacity evicts the single oldest entry.
type Window struct {
	samples []Sample
	max     int
}

// NewWindow creates a Window holding at most max samples. A non-positive max
// falls back to DefaultWindowLen.
func NewWindow(max int) *Window {
	if max <= 0 {
		max = DefaultWindowLen
	}
	return &Window{
		samples: make([]Sample, 0, max),
		max:     max,
	}
}

// Append adds s at the end, dropping the oldest sample when the window is
// full.
func (w *Window) Append(s Sample) {
	if len(w.samples) >= w.max {
		copy(w.samples, w.samples[1:])
		w.samples[len(w.samples)-1] = s
		return
	}
	w.samples = append(w.samples, s)
}

// Reset clears the window.
func (w *Window) Reset() {
	w.samples = w.samples[:0]
}

// Len returns the number of buffered samples.
func (w *Window) Len() int {
	return len(w.samples)
}

// Cap returns the configured maximum.
func (w *Window) Cap() int {
	return w.max
}

// Latest returns the newest sample, or false when the window is empty.
func (w *Window) Latest() (Sample, bool) {
	if len(w.samples) == 0 {
		return Sample{}, false
	}
	return w.samples[len(w.samples)-1], true
}

// Snapshot returns a copy of the current contents, oldest first. Callers must
// not retain it past the next append.
func (w *Window) Snapshot() []Sample {
	if len(w.samples) == 0 {
		return nil
	}
	out := make([]Sample, len(w.samples))
	copy(out, w.samples)
	return out
}
