package analysis

import "sync"

// Exchange hands a fixed-capacity sample window from a real-time capture
// callback to the frame loop. Single writer, single reader. Both sides hold
// the lock only for one copy, so the capture thread never waits on analysis
// or rendering.
type Exchange struct {
	mu  sync.Mutex
	buf []float64
	n   int
}

// NewExchange creates an exchange holding up to capacity samples.
// capacity falls back to 512 when non-positive.
func NewExchange(capacity int) *Exchange {
	if capacity <= 0 {
		capacity = 512
	}
	return &Exchange{buf: make([]float64, capacity)}
}

// Capacity returns the fixed window capacity.
func (e *Exchange) Capacity() int {
	return len(e.buf)
}

// Write copies the newest samples in, truncating to capacity. Called from
// the capture callback.
func (e *Exchange) Write(samples []float64) {
	e.mu.Lock()
	e.n = copy(e.buf, samples)
	e.mu.Unlock()
}

// Read copies the current window into dst and returns the sample count.
// Called once per frame by the consumer; implements SampleSource.
func (e *Exchange) Read(dst []float64) int {
	e.mu.Lock()
	n := copy(dst, e.buf[:e.n])
	e.mu.Unlock()
	return n
}
