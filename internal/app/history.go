package app

// Ring is a fixed-capacity circular buffer of float64 samples.
type Ring struct {
	buf   []float64
	pos   int
	count int
}

// NewRing creates a new circular buffer with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		buf: make([]float64, capacity),
	}
}

// Push adds a value, overwriting the oldest when full.
func (r *Ring) Push(val float64) {
	r.buf[r.pos] = val
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns all stored values in chronological order.
func (r *Ring) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		start := r.pos
		n := copy(result, r.buf[start:])
		copy(result[n:], r.buf[:start])
	}
	return result
}

// Last returns the most recent value, or 0 if empty.
func (r *Ring) Last() float64 {
	if r.count == 0 {
		return 0
	}
	idx := (r.pos - 1 + len(r.buf)) % len(r.buf)
	return r.buf[idx]
}

// Mean returns the average of the stored values, or 0 if empty.
func (r *Ring) Mean() float64 {
	if r.count == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range r.buf[:r.count] {
		sum += v
	}
	return sum / float64(r.count)
}

// Len returns the number of stored values.
func (r *Ring) Len() int {
	return r.count
}

// Reset drops all stored values.
func (r *Ring) Reset() {
	r.pos = 0
	r.count = 0
}
