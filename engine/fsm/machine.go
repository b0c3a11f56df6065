package fsm

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lixenwraith/gman-shooter/event"
	"github.com/lixenwraith/gman-shooter/parameter"
)

var (
	ErrNoInitialState = errors.New("fsm: no initial state configured")
	ErrUnknownState   = errors.New("fsm: unknown state")
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
		activePath:      make([]StateID, 0, 4),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter for the chain Root -> Initial
func (m *Machine[T]) Init(ctx T) error {
	if m.InitialStateID == StateNone {
		return ErrNoInitialState
	}
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("%w: initial state ID %d", ErrUnknownState, m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		if n, exists := m.nodes[id]; exists {
			runActions(ctx, n.OnEnter)
		}
	}

	m.Settle(ctx)
	return nil
}

// Update advances time in the current state and evaluates automatic transitions
// Returns true if any transition occurred
func (m *Machine[T]) Update(ctx T, dt time.Duration) bool {
	if m.activeStateID == StateNone {
		return false
	}
	m.timeInState += dt
	return m.Settle(ctx)
}

// Settle evaluates Tick transitions until none fire, bounded by MaxSettleSteps
func (m *Machine[T]) Settle(ctx T) bool {
	moved := false
	for step := 0; step < parameter.MaxSettleSteps; step++ {
		if !m.dispatch(ctx, event.EventTick) {
			break
		}
		moved = true
	}
	return moved
}

// HandleEvent routes an external event through the active path
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if eventType == event.EventTick {
		return false
	}
	return m.dispatch(ctx, eventType)
}

// dispatch bubbles an event up from the leaf, taking the first transition whose guard passes
func (m *Machine[T]) dispatch(ctx T, eventType event.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for i := range node.Transitions {
			trans := &node.Transitions[i]
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs the state change: exit to LCA, transition actions, enter to target
func (m *Machine[T]) transition(ctx T, trans *Transition[T]) {
	targetID := trans.TargetID

	// Internal transition: actions only, no exit/enter
	if m.activeStateID == targetID {
		runActions(ctx, trans.Actions)
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		if node, exists := m.nodes[currentPath[i]]; exists {
			runActions(ctx, node.OnExit)
		}
	}

	runActions(ctx, trans.Actions)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		if node, exists := m.nodes[targetPath[i]]; exists {
			runActions(ctx, node.OnEnter)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Reset exits the active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		if node, ok := m.nodes[m.activePath[i]]; ok {
			runActions(ctx, node.OnExit)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// CurrentState returns the active leaf StateID
func (m *Machine[T]) CurrentState() StateID {
	return m.activeStateID
}

// CurrentStateName returns the active leaf name, empty before Init
func (m *Machine[T]) CurrentStateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time spent in the current leaf state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// IsInState reports whether the named state is on the active path (leaf or ancestor)
func (m *Machine[T]) IsInState(name string) bool {
	for _, id := range m.activePath {
		if m.nodes[id].Name == name {
			return true
		}
	}
	return false
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	for id, node := range m.nodes {
		if node.Name == name {
			return id, true
		}
	}
	return StateNone, false
}

// StateNames returns all state names except Root, sorted
func (m *Machine[T]) StateNames() []string {
	names := make([]string, 0, len(m.nodes))
	for id, node := range m.nodes {
		if id != StateRoot {
			names = append(names, node.Name)
		}
	}
	sort.Strings(names)
	return names
}
