package event

import (
	"log"

	"github.com/lixenwraith/gman-shooter/parameter"
)

// Queue buffers controller feedback between a state change and the next frame drain
// It is owned by the goroutine driving the controller and is not safe for concurrent use
// When full, the oldest entry is dropped so the latest phase change is never lost
type Queue struct {
	events []GameEvent
}

func NewQueue() *Queue {
	return &Queue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event, evicting the oldest one at capacity
func (q *Queue) Push(ev GameEvent) {
	if len(q.events) >= parameter.EventQueueSize {
		log.Printf("[event] feedback queue full, dropping %s", q.events[0].Type)
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
	}
	q.events = append(q.events, ev)
}

// Consume drains the queue and returns pending events in FIFO order, nil when empty
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}
