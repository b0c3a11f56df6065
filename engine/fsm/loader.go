package fsm

import (
	"fmt"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/gman-shooter/event"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	return m.load(&config)
}

func (m *Machine[T]) load(config *RootConfig) error {
	if config.States == nil {
		config.States = make(map[string]*StateConfig)
	}

	// Clear existing graph
	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.InitialStateID = StateNone

	// Root node always exists, config may still attach transitions to it
	m.AddState(StateRoot, "Root", StateNone)
	nameToID := map[string]StateID{"Root": StateRoot}
	if config.States["Root"] == nil {
		config.States["Root"] = &StateConfig{}
	}

	// Sort keys for deterministic ID generation
	stateNames := make([]string, 0, len(config.States))
	for name := range config.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nextID := StateRoot + 1
	for _, name := range stateNames {
		nameToID[name] = nextID
		nextID++
	}

	// Create nodes before compiling, transitions may reference any state
	for _, name := range stateNames {
		cfg := config.States[name]
		if cfg == nil {
			cfg = &StateConfig{}
			config.States[name] = cfg
		}
		pName := cfg.Parent
		if pName == "" {
			pName = "Root"
		}
		parentID, ok := nameToID[pName]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
		}
		m.AddState(nameToID[name], name, parentID)
	}

	for name, cfg := range config.States {
		node := m.nodes[nameToID[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return fmt.Errorf("state '%s' OnEnter: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return fmt.Errorf("state '%s' OnExit: %w", name, err)
		}
		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	if config.InitialState == "" {
		return ErrNoInitialState
	}
	initialID, ok := nameToID[config.InitialState]
	if !ok {
		return fmt.Errorf("%w: initial state '%s'", ErrUnknownState, config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", cfg.Action)
		}
		actions = append(actions, Action[T]{
			Func: fn,
			Args: cfg.Args,
		})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok {
			return fmt.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType, ok := event.GetEventType(cfg.Trigger)
		if !ok {
			return fmt.Errorf("unknown event type '%s'", cfg.Trigger)
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			// Check factory first
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				g, err := factory(cfg.GuardArgs)
				if err != nil {
					return fmt.Errorf("guard '%s': %w", cfg.Guard, err)
				}
				guard = g
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return fmt.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		actions, err := m.compileActions(cfg.Actions)
		if err != nil {
			return fmt.Errorf("transition to '%s': %w", cfg.Target, err)
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
			Actions:  actions,
		})
	}
	return nil
}
