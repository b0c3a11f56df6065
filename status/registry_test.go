package status

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Counters(t *testing.T) {
	r := NewRegistry()
	r.Inc(ShotsFired)
	r.Inc(ShotsFired)
	r.Inc(Reloads)

	assert.Equal(t, int64(2), r.Count(ShotsFired))
	assert.Equal(t, int64(1), r.Count(Reloads))
	assert.Equal(t, int64(0), r.Count(Heals))
}

func TestRegistry_RangeCountersInOrder(t *testing.T) {
	r := NewRegistry()
	r.Inc(Frames)
	r.Inc(GlassHits)

	var rows []string
	r.RangeCounters(func(c Counter, v int64) {
		if v > 0 {
			rows = append(rows, c.String())
		}
	})
	assert.Equal(t, []string{"glass.hits", "frames"}, rows)

	n := 0
	r.RangeCounters(func(Counter, int64) { n++ })
	assert.Equal(t, int(counterCount), n)
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	assert.NotPanics(t, func() {
		r.Inc(Frames)
		r.SetLabel(Phase, "Menu")
		r.SetFlag(AudioMuted, true)
		r.RangeCounters(func(Counter, int64) {})
	})
	assert.Zero(t, r.Count(Frames))
	assert.Empty(t, r.Label(Phase))
	assert.False(t, r.Flag(AudioMuted))
}

func TestRegistry_OutOfRangeKeysIgnored(t *testing.T) {
	r := NewRegistry()
	assert.NotPanics(t, func() {
		r.Inc(counterCount)
		r.SetLabel(labelCount, "x")
		r.SetFlag(flagCount, true)
	})
	assert.Equal(t, "counter.unknown", counterCount.String())
	assert.Equal(t, "label.unknown", labelCount.String())
}

func TestRegistry_LabelTruncatesByRune(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "", r.Label(LastEvent))

	r.SetLabel(LastEvent, "EventGlassShatteredAndMore")
	assert.Equal(t, "EventGlassShatteredA", r.Label(LastEvent))

	r.SetLabel(Phase, strings.Repeat("ф", MaxLabelLen+5))
	assert.Equal(t, strings.Repeat("ф", MaxLabelLen), r.Label(Phase))
}

func TestRegistry_Flags(t *testing.T) {
	r := NewRegistry()
	r.SetFlag(AudioAvailable, true)
	assert.True(t, r.Flag(AudioAvailable))
	assert.False(t, r.Flag(AudioMuted))
}

func TestRegistry_ConcurrentInc(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc(Frames)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(800), r.Count(Frames))
}
