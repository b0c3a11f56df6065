package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityGrid
	PriorityArena
	PriorityBody
	PriorityBoss
	PriorityHands
	PriorityScreen
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
