package fsm

import (
	"testing"

	"github.com/AidanMaskelyne/invaders/event"
)

const (
	stateA StateID = iota
	stateB
	stateC
)

type trace struct {
	log []string
}

func record(tr *trace, label string) ActionFunc[*trace] {
	return func(_ *trace) {
		tr.log = append(tr.log, label)
	}
}

func newTestMachine(tr *trace) *Machine[*trace] {
	m := NewMachine[*trace]()
	m.AddState(&State[*trace]{
		ID:      stateA,
		Name:    "a",
		OnEnter: []ActionFunc[*trace]{record(tr, "enter-a")},
		OnExit:  []ActionFunc[*trace]{record(tr, "exit-a")},
	})
	m.AddState(&State[*trace]{
		ID:      stateB,
		Name:    "b",
		OnEnter: []ActionFunc[*trace]{record(tr, "enter-b")},
		OnExit:  []ActionFunc[*trace]{record(tr, "exit-b")},
	})
	m.AddState(&State[*trace]{ID: stateC, Name: "c"})
	return m
}

// TestMachineInit verifies init enters the initial state with actions
func TestMachineInit(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)

	if err := m.Init(tr, stateA); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if m.Current() != stateA {
		t.Errorf("Expected state a, got %d", m.Current())
	}
	if len(tr.log) != 1 || tr.log[0] != "enter-a" {
		t.Errorf("Expected [enter-a], got %v", tr.log)
	}
	if m.StateName() != "a" {
		t.Errorf("Expected name a, got %q", m.StateName())
	}
}

// TestMachineInitUnknownState verifies init rejects unregistered states
func TestMachineInitUnknownState(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)

	if err := m.Init(tr, StateID(99)); err == nil {
		t.Error("Expected error for unknown initial state")
	}
}

// TestMachineTransition verifies exit then enter ordering
func TestMachineTransition(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	if err := m.AddTransition(stateA, event.EventGameStart, stateB, nil); err != nil {
		t.Fatalf("AddTransition failed: %v", err)
	}
	_ = m.Init(tr, stateA)
	tr.log = nil

	if !m.HandleEvent(tr, event.EventGameStart) {
		t.Fatal("Expected transition to fire")
	}
	if m.Current() != stateB {
		t.Errorf("Expected state b, got %d", m.Current())
	}
	if len(tr.log) != 2 || tr.log[0] != "exit-a" || tr.log[1] != "enter-b" {
		t.Errorf("Expected [exit-a enter-b], got %v", tr.log)
	}
}

// TestMachineUnmatchedEventNoop verifies invalid transitions are silent
func TestMachineUnmatchedEventNoop(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	_ = m.AddTransition(stateA, event.EventGameStart, stateB, nil)
	_ = m.Init(tr, stateA)
	tr.log = nil

	if m.HandleEvent(tr, event.EventGameRestart) {
		t.Error("Expected no transition for unmatched event")
	}
	if m.Current() != stateA {
		t.Errorf("Expected state unchanged, got %d", m.Current())
	}
	if len(tr.log) != 0 {
		t.Errorf("Expected no actions, got %v", tr.log)
	}
}

// TestMachineGuard verifies guarded transitions only fire when allowed
func TestMachineGuard(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	allow := false
	_ = m.AddTransition(stateA, event.EventGameStart, stateB,
		func(_ *trace) bool { return allow })
	_ = m.Init(tr, stateA)

	if m.HandleEvent(tr, event.EventGameStart) {
		t.Error("Expected guard to block transition")
	}

	allow = true
	if !m.HandleEvent(tr, event.EventGameStart) {
		t.Error("Expected guarded transition to fire")
	}
}

// TestMachineAddTransitionUnknown verifies wiring to missing states errors
func TestMachineAddTransitionUnknown(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)

	if err := m.AddTransition(StateID(99), event.EventGameStart, stateB, nil); err == nil {
		t.Error("Expected error for unknown source state")
	}
	if err := m.AddTransition(stateA, event.EventGameStart, StateID(99), nil); err == nil {
		t.Error("Expected error for unknown target state")
	}
}

// TestMachineForceTo verifies unconditional transitions run actions
func TestMachineForceTo(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	_ = m.Init(tr, stateB)
	tr.log = nil

	if err := m.ForceTo(tr, stateA); err != nil {
		t.Fatalf("ForceTo failed: %v", err)
	}
	if m.Current() != stateA {
		t.Errorf("Expected state a, got %d", m.Current())
	}
	if len(tr.log) != 2 || tr.log[0] != "exit-b" || tr.log[1] != "enter-a" {
		t.Errorf("Expected [exit-b enter-a], got %v", tr.log)
	}
}

// TestMachineSelfTransitionNoop verifies forcing the current state is a no-op
func TestMachineSelfTransitionNoop(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	_ = m.Init(tr, stateA)
	tr.log = nil

	if err := m.ForceTo(tr, stateA); err != nil {
		t.Fatalf("ForceTo failed: %v", err)
	}
	if len(tr.log) != 0 {
		t.Errorf("Expected no actions on self transition, got %v", tr.log)
	}
}

// TestMachineReset verifies reset re-enters the initial state
func TestMachineReset(t *testing.T) {
	tr := &trace{}
	m := newTestMachine(tr)
	_ = m.AddTransition(stateA, event.EventGameStart, stateB, nil)
	_ = m.Init(tr, stateA)
	m.HandleEvent(tr, event.EventGameStart)
	tr.log = nil

	if err := m.Reset(tr); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if m.Current() != stateA {
		t.Errorf("Expected initial state after reset, got %d", m.Current())
	}
	if len(tr.log) != 2 || tr.log[0] != "exit-b" || tr.log[1] != "enter-a" {
		t.Errorf("Expected [exit-b enter-a], got %v", tr.log)
	}
}
