package parameter

import "time"

const (
	// DefaultFrameRate is the redraw rate of the presentation loop
	DefaultFrameRate = 30

	// FrameUpdateInterval is the redraw period at the default frame rate
	FrameUpdateInterval = time.Second / DefaultFrameRate

	// EventQueueSize caps feedback held between frame drains
	EventQueueSize = 256

	// InputChannelSize buffers terminal events between poller and game loop
	InputChannelSize = 256

	// MaxSettleSteps bounds chained automatic FSM transitions per settle
	MaxSettleSteps = 8
)
