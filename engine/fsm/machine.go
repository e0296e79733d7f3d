package fsm

import (
	"fmt"

	"github.com/AidanMaskelyne/invaders/event"
)

// StateID is a unique identifier for a state
type StateID int

// StateNone marks the machine as uninitialized
const StateNone StateID = -1

// ActionFunc executes a side effect on state entry or exit
type ActionFunc[T any] func(ctx T)

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// Transition defines a link between states
type Transition[T any] struct {
	Event  event.Type
	Target StateID
	Guard  GuardFunc[T] // nil = always true
}

// State represents one node in the machine
type State[T any] struct {
	ID          StateID
	Name        string
	OnEnter     []ActionFunc[T]
	OnExit      []ActionFunc[T]
	Transitions []Transition[T]
}

// Machine is a flat finite state machine
// T is the context type passed to actions and guards (e.g., *engine.World)
//
// Events with no matching transition from the current state are silently
// ignored: invalid transitions are no-ops, never errors
type Machine[T any] struct {
	states  map[StateID]*State[T]
	current StateID
	initial StateID
}

// NewMachine creates an empty machine
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		states:  make(map[StateID]*State[T]),
		current: StateNone,
		initial: StateNone,
	}
}

// AddState registers a state node. Last registration wins on duplicate IDs
func (m *Machine[T]) AddState(s *State[T]) {
	m.states[s.ID] = s
}

// AddTransition appends an event-triggered transition to a registered state
func (m *Machine[T]) AddTransition(from StateID, ev event.Type, target StateID, guard GuardFunc[T]) error {
	s, ok := m.states[from]
	if !ok {
		return fmt.Errorf("fsm: transition from unknown state %d", from)
	}
	if _, ok := m.states[target]; !ok {
		return fmt.Errorf("fsm: transition to unknown state %d", target)
	}
	s.Transitions = append(s.Transitions, Transition[T]{Event: ev, Target: target, Guard: guard})
	return nil
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	s, ok := m.states[initial]
	if !ok {
		return fmt.Errorf("fsm: initial state %d not found", initial)
	}
	m.initial = initial
	m.current = initial
	for _, action := range s.OnEnter {
		action(ctx)
	}
	return nil
}

// HandleEvent routes an event through the current state
// Returns true if a transition fired; unmatched events are no-ops
func (m *Machine[T]) HandleEvent(ctx T, eventType event.Type) bool {
	if m.current == StateNone {
		return false
	}

	node := m.states[m.current]
	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, trans.Target)
		return true
	}
	return false
}

// ForceTo performs an unconditional transition, running exit and enter
// actions. Used for fallback paths (aborted Running entry returns to Menu)
func (m *Machine[T]) ForceTo(ctx T, target StateID) error {
	if _, ok := m.states[target]; !ok {
		return fmt.Errorf("fsm: force to unknown state %d", target)
	}
	m.transition(ctx, target)
	return nil
}

// transition performs the state change with exit/enter actions
func (m *Machine[T]) transition(ctx T, target StateID) {
	if m.current == target {
		return
	}

	if node, ok := m.states[m.current]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}

	m.current = target

	if node, ok := m.states[target]; ok {
		for _, action := range node.OnEnter {
			action(ctx)
		}
	}
}

// Current returns the active state id
func (m *Machine[T]) Current() StateID {
	return m.current
}

// StateName returns the active state's name, empty when uninitialized
func (m *Machine[T]) StateName() string {
	if node, ok := m.states[m.current]; ok {
		return node.Name
	}
	return ""
}

// Reset exits the current state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.initial == StateNone {
		return fmt.Errorf("fsm: reset before init")
	}
	if node, ok := m.states[m.current]; ok {
		for _, action := range node.OnExit {
			action(ctx)
		}
	}
	m.current = StateNone
	return m.Init(ctx, m.initial)
}
