package status

import "sync/atomic"

// Counter identifies a monotonically increasing metric
type Counter uint8

const (
	ShotsFired Counter = iota
	ShotsDenied
	Reloads
	Heals
	LevelUps
	GlassHits
	Sessions
	Frames
	counterCount
)

var counterNames = [counterCount]string{
	ShotsFired:  "shots.fired",
	ShotsDenied: "shots.denied",
	Reloads:     "reloads",
	Heals:       "heals",
	LevelUps:    "level.ups",
	GlassHits:   "glass.hits",
	Sessions:    "sessions",
	Frames:      "frames",
}

func (c Counter) String() string {
	if c < counterCount {
		return counterNames[c]
	}
	return "counter.unknown"
}

// Label identifies a short text metric
type Label uint8

const (
	Phase Label = iota
	SessionID
	LastEvent
	labelCount
)

var labelNames = [labelCount]string{
	Phase:     "phase",
	SessionID: "session.id",
	LastEvent: "event.last",
}

func (l Label) String() string {
	if l < labelCount {
		return labelNames[l]
	}
	return "label.unknown"
}

// Flag identifies a boolean metric
type Flag uint8

const (
	AudioMuted Flag = iota
	AudioAvailable
	flagCount
)

// Registry holds the fixed metric set published by the controller, audio and frame loop
// Writers and the render pass may run on different goroutines; every slot is atomic
// All methods tolerate a nil registry
type Registry struct {
	counters [counterCount]atomic.Int64
	labels   [labelCount]labelValue
	flags    [flagCount]atomic.Bool
}

// NewRegistry creates a registry with every metric at its zero value
func NewRegistry() *Registry {
	return &Registry{}
}

// Inc increments a counter
func (r *Registry) Inc(c Counter) {
	if r == nil || c >= counterCount {
		return
	}
	r.counters[c].Add(1)
}

// Count returns a counter value
func (r *Registry) Count(c Counter) int64 {
	if r == nil || c >= counterCount {
		return 0
	}
	return r.counters[c].Load()
}

// RangeCounters visits every counter in declaration order
func (r *Registry) RangeCounters(fn func(c Counter, v int64)) {
	for c := Counter(0); c < counterCount; c++ {
		fn(c, r.Count(c))
	}
}

// SetLabel stores a text metric, truncated to MaxLabelLen runes
func (r *Registry) SetLabel(l Label, val string) {
	if r == nil || l >= labelCount {
		return
	}
	r.labels[l].store(val)
}

// Label returns a text metric, empty until first set
func (r *Registry) Label(l Label) string {
	if r == nil || l >= labelCount {
		return ""
	}
	return r.labels[l].load()
}

// SetFlag stores a boolean metric
func (r *Registry) SetFlag(f Flag, val bool) {
	if r == nil || f >= flagCount {
		return
	}
	r.flags[f].Store(val)
}

// Flag returns a boolean metric
func (r *Registry) Flag(f Flag) bool {
	if r == nil || f >= flagCount {
		return false
	}
	return r.flags[f].Load()
}
