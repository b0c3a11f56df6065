package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RoundTripNames(t *testing.T) {
	for _, et := range []EventType{
		EventStartGame, EventResume, EventOpenMenu, EventReturnToMenu,
		EventShoot, EventReload, EventHeal, EventHitGlass,
		EventShotFired, EventShotDenied, EventGlassShattered, EventPhaseChanged,
	} {
		name := GetEventName(et)
		assert.NotEmpty(t, name, "event %d has no name", et)

		back, ok := GetEventType(name)
		assert.True(t, ok, name)
		assert.Equal(t, et, back, name)
	}
}

func TestRegistry_Tick(t *testing.T) {
	et, ok := GetEventType("tick")
	assert.True(t, ok)
	assert.Equal(t, EventTick, et)
	assert.Equal(t, "Tick", EventTick.String())
}

func TestRegistry_Unknown(t *testing.T) {
	_, ok := GetEventType("EventDoesNotExist")
	assert.False(t, ok)
	assert.Equal(t, "EventUnknown", EventType(9999).String())
}

func TestNewPayloadStruct(t *testing.T) {
	p, ok := NewPayloadStruct(EventHeal).(*HealPayload)
	assert.True(t, ok)
	assert.Zero(t, p.Amount)

	assert.Nil(t, NewPayloadStruct(EventShoot))
}

func TestEventType_IsAction(t *testing.T) {
	assert.True(t, EventShoot.IsAction())
	assert.True(t, EventHitGlass.IsAction())
	assert.False(t, EventTick.IsAction())
	assert.False(t, EventShotFired.IsAction())
}
