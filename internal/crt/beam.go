package crt

import (
	"math"
	"time"

	"crt-scope.klederson.com/internal/config"
)

// Point is a normalized screen position in [-1, 1]².
type Point struct {
	X, Y float64
}

// TrailPoint is a past beam position and the time it was drawn.
type TrailPoint struct {
	Point
	At time.Time
}

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// Option configures a Model.
type Option func(*Model)

// WithClock replaces time.Now as the trail's time source.
func WithClock(c Clock) Option {
	return func(m *Model) {
		m.now = c
	}
}

// WithPersistenceBounds sets the [min, max] range for SetPersistence.
func WithPersistenceBounds(minMs, maxMs int) Option {
	return func(m *Model) {
		m.minMs = minMs
		m.maxMs = maxMs
	}
}

// Model is the beam deflection model with its persistence trail.
// It is owned by a single goroutine and is not safe for concurrent use.
type Model struct {
	pos   Point
	stale bool

	persistMs    int
	minMs, maxMs int

	trail []TrailPoint
	now   Clock
}

// NewModel creates a beam centered on the screen with the given persistence.
func NewModel(persistMs int, opts ...Option) *Model {
	m := &Model{
		minMs: config.PersistMsMin,
		maxMs: config.PersistMsMax,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.SetPersistence(persistMs)
	return m
}

// Gain returns the deflection per volt for acceleration voltage va.
// The MinVa floor keeps the gain at or below 4.0 as va approaches zero.
func Gain(va float64) float64 {
	return config.GainNumerator / math.Max(config.MinVa, va)
}

// Step deflects the beam for voltages vx, vy under acceleration va and
// records the new position on the trail.
//
// dt is reserved for a time-integrating model and does not affect the
// result. Non-finite inputs leave the previous position in place and mark
// the model stale until the next good step.
func (m *Model) Step(dt time.Duration, vx, vy, va float64) Point {
	if !finite(vx) || !finite(vy) || !finite(va) {
		m.stale = true
		return m.pos
	}

	k := Gain(va)
	m.Record(clampUnit(vx*k), clampUnit(vy*k))
	return m.pos
}

// Record places the beam at (x, y), clamped to the screen, and appends it
// to the trail. It is used directly by models that compute the impact point
// themselves.
func (m *Model) Record(x, y float64) Point {
	if !finite(x) || !finite(y) {
		m.stale = true
		return m.pos
	}
	m.stale = false
	m.pos = Point{X: clampUnit(x), Y: clampUnit(y)}

	now := m.now()
	m.trail = append(m.trail, TrailPoint{Point: m.pos, At: now})
	m.prune(now)
	return m.pos
}

// Hold marks the current frame as failed without moving the beam.
func (m *Model) Hold() {
	m.stale = true
}

// Position returns the current beam position.
func (m *Model) Position() Point {
	return m.pos
}

// Stale reports whether the last step was rejected and the position held.
func (m *Model) Stale() bool {
	return m.stale
}

// Persistence returns the trail window in milliseconds.
func (m *Model) Persistence() int {
	return m.persistMs
}

// PersistenceDuration returns the trail window as a duration.
func (m *Model) PersistenceDuration() time.Duration {
	return time.Duration(m.persistMs) * time.Millisecond
}

// SetPersistence clamps ms to the configured bounds and stores it.
// The trail is re-filtered on the next Step or Trail call.
func (m *Model) SetPersistence(ms int) int {
	if ms < m.minMs {
		ms = m.minMs
	}
	if ms > m.maxMs {
		ms = m.maxMs
	}
	m.persistMs = ms
	return ms
}

// AdjustPersistence shifts the window by delta milliseconds.
func (m *Model) AdjustPersistence(delta int) int {
	return m.SetPersistence(m.persistMs + delta)
}

// Trail evicts expired entries and returns the remainder, oldest first.
func (m *Model) Trail() []TrailPoint {
	m.prune(m.now())
	out := make([]TrailPoint, len(m.trail))
	copy(out, m.trail)
	return out
}

// Len returns the number of stored trail entries without pruning.
func (m *Model) Len() int {
	return len(m.trail)
}

// Clear empties the trail. The beam position is kept.
func (m *Model) Clear() {
	m.trail = m.trail[:0]
}

// Now returns the model's clock reading.
func (m *Model) Now() time.Time {
	return m.now()
}

func (m *Model) prune(now time.Time) {
	limit := now.Add(-m.PersistenceDuration())
	i := 0
	for i < len(m.trail) && m.trail[i].At.Before(limit) {
		i++
	}
	if i == 0 {
		return
	}
	n := copy(m.trail, m.trail[i:])
	m.trail = m.trail[:n]
}

// Fade returns the trail opacity for an entry of the given age:
// 1 when fresh, falling linearly to 0 at the persistence window.
func Fade(age, persistence time.Duration) float64 {
	if persistence <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, 1-age.Seconds()/persistence.Seconds()))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
