package fsm

import (
	"time"

	"github.com/lixenwraith/gman-shooter/event"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions and guards (e.g., *game.Controller)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID // Stored during load for reset/init

	// Runtime State
	activeStateID StateID       // The current leaf node
	timeInState   time.Duration // Time elapsed in current state
	activePath    []StateID     // Stack of active states (Root -> Child -> Leaf)

	// Dependency Injection
	guardReg        map[string]GuardFunc[T]
	guardFactoryReg map[string]GuardFactoryFunc[T]
	actionReg       map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node, used for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventTick = auto-transition
	Guard    GuardFunc[T]    // nil = Always true
	Actions  []Action[T]     // Run between exit and enter phases
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)

// GuardFactoryFunc creates a parameterized guard from config args
// Used for configurable guards like LevelAtLeast with a level parameter
type GuardFactoryFunc[T any] func(args map[string]any) (GuardFunc[T], error)
