package focus

import (
	"github.com/go-drift/textfield/pkg/errors"
	"github.com/go-drift/textfield/pkg/scheduler"
)

// Phase is the machine's view of the native focus transition.
type Phase int

const (
	// PhaseUnfocused means the field does not hold focus.
	PhaseUnfocused Phase = iota

	// PhasePendingFocus means a native focus request is in flight.
	PhasePendingFocus

	// PhaseFocused means the field holds focus.
	PhaseFocused

	// PhasePendingResign means a native resign request is in flight.
	PhasePendingResign
)

func (p Phase) String() string {
	switch p {
	case PhaseUnfocused:
		return "unfocused"
	case PhasePendingFocus:
		return "pending-focus"
	case PhaseFocused:
		return "focused"
	case PhasePendingResign:
		return "pending-resign"
	default:
		return "unknown"
	}
}

// MachineConfig wires a Machine to its host and native control.
type MachineConfig struct {
	// Controller supplies host demands. Nil disables the demand protocol;
	// the machine then only tracks native transitions.
	Controller *Controller

	// RequestNative asks the native control to take focus.
	RequestNative func() error

	// ResignNative asks the native control to give up focus.
	ResignNative func() error

	// CanFocus gates focus transitions. Nil permits all.
	CanFocus func() bool

	// CanResign gates resign transitions. Nil permits all.
	CanResign func() bool

	// OnFocusChange is notified after every completed transition,
	// including transitions the host did not demand.
	OnFocusChange func(focused bool)

	// Deliver schedules focus notifications and demand resets. Nil uses
	// scheduler.NextTick.
	Deliver scheduler.Scheduler
}

// Machine drives one field's focus transitions. It consumes host demands
// from the controller, issues native requests, answers the native control's
// begin/end gates, and settles each demand exactly once.
//
// All methods must be called from the UI context.
type Machine struct {
	controller *Controller
	phase      Phase

	// pendingGen stamps the demand being carried by the in-flight
	// transition. Zero marks a transition with no demand attached.
	pendingGen uint64

	requestNative func() error
	resignNative  func() error
	canFocus      func() bool
	canResign     func() bool
	onFocusChange func(bool)
	deliver       scheduler.Scheduler

	unsubscribe func()
}

// NewMachine creates a machine and subscribes it to the controller. The
// machine does not act on a demand already held by the controller until
// Evaluate is called, so the native view can be created first.
func NewMachine(cfg MachineConfig) *Machine {
	m := &Machine{
		controller:    cfg.Controller,
		requestNative: cfg.RequestNative,
		resignNative:  cfg.ResignNative,
		canFocus:      cfg.CanFocus,
		canResign:     cfg.CanResign,
		onFocusChange: cfg.OnFocusChange,
		deliver:       cfg.Deliver,
	}
	if m.requestNative == nil {
		m.requestNative = func() error { return nil }
	}
	if m.resignNative == nil {
		m.resignNative = func() error { return nil }
	}
	if m.deliver == nil {
		m.deliver = scheduler.NextTick{}
	}
	if m.controller != nil {
		m.unsubscribe = m.controller.AddListener(m.Evaluate)
	}
	return m
}

// Dispose detaches the machine from its controller.
func (m *Machine) Dispose() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

// SetController swaps the demand source, keeping the current phase. An
// in-flight transition loses its demand bookkeeping; a demand left on the
// old controller stays there, unsettled.
func (m *Machine) SetController(c *Controller) {
	if m.controller == c {
		return
	}
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.controller = c
	m.pendingGen = 0
	if c != nil {
		m.unsubscribe = c.AddListener(m.Evaluate)
	}
	m.Evaluate()
}

// Phase returns the current transition phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// IsFocused reports whether the field holds focus.
func (m *Machine) IsFocused() bool {
	return m.phase == PhaseFocused
}

// Evaluate examines the controller's demand and advances it as far as the
// current phase allows. A demand that is already satisfied is settled
// without touching the native control; a demand that conflicts with an
// in-flight transition waits for the transition to finish, at which point
// DidBegin or DidEnd re-evaluates.
func (m *Machine) Evaluate() {
	if m.controller == nil {
		return
	}
	demand, gen := m.controller.snapshot()

	switch demand {
	case DemandBecome:
		switch m.phase {
		case PhaseFocused:
			m.scheduleFulfill(gen)
		case PhasePendingFocus:
			m.pendingGen = gen
		case PhaseUnfocused:
			m.beginFocus(gen)
		case PhasePendingResign:
			// Wait for the resign to settle; DidEnd re-evaluates.
		}

	case DemandResign:
		switch m.phase {
		case PhaseUnfocused:
			m.scheduleFulfill(gen)
		case PhasePendingResign:
			m.pendingGen = gen
		case PhaseFocused:
			m.beginResign(gen)
		case PhasePendingFocus:
			// Wait for the focus to settle; DidBegin re-evaluates.
		}
	}
}

// RequestFocus starts a focus transition with no demand attached, as used
// by focus traversal. It acts only when the field is unfocused.
func (m *Machine) RequestFocus() {
	if m.phase != PhaseUnfocused {
		return
	}
	m.beginFocus(0)
}

// ResignFocus starts a resign transition with no demand attached. It acts
// only when the field is focused.
func (m *Machine) ResignFocus() {
	if m.phase != PhaseFocused {
		return
	}
	m.beginResign(0)
}

func (m *Machine) beginFocus(gen uint64) {
	m.phase = PhasePendingFocus
	m.pendingGen = gen
	if err := m.requestNative(); err != nil {
		m.phase = PhaseUnfocused
		m.pendingGen = 0
		errors.Report(&errors.FieldError{
			Op:   "focus.requestFocus",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		m.scheduleFulfill(gen)
	}
}

func (m *Machine) beginResign(gen uint64) {
	m.phase = PhasePendingResign
	m.pendingGen = gen
	if err := m.resignNative(); err != nil {
		m.phase = PhaseFocused
		m.pendingGen = 0
		errors.Report(&errors.FieldError{
			Op:   "focus.resignFocus",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		m.scheduleFulfill(gen)
	}
}

// WillBegin answers the native control's begin-editing gate. A veto while a
// focus request is in flight abandons the request and settles its demand
// without a focus notification, since no transition happened.
func (m *Machine) WillBegin() bool {
	if m.canFocus != nil && !m.canFocus() {
		if m.phase == PhasePendingFocus {
			gen := m.pendingGen
			m.phase = PhaseUnfocused
			m.pendingGen = 0
			m.scheduleFulfill(gen)
		}
		return false
	}
	return true
}

// WillEnd answers the native control's end-editing gate.
func (m *Machine) WillEnd() bool {
	if m.canResign != nil && !m.canResign() {
		if m.phase == PhasePendingResign {
			gen := m.pendingGen
			m.phase = PhaseFocused
			m.pendingGen = 0
			m.scheduleFulfill(gen)
		}
		return false
	}
	return true
}

// DidBegin records that the native control took focus. The notification is
// delivered before the demand reset so hosts observe the new state first.
// A demand queued in the opposite direction is picked up afterwards.
func (m *Machine) DidBegin() {
	wasPending := m.phase == PhasePendingFocus
	gen := m.pendingGen
	m.phase = PhaseFocused
	m.pendingGen = 0

	m.scheduleNotify(true)
	if wasPending {
		m.scheduleFulfill(gen)
	}
	m.Evaluate()
}

// DidEnd records that the native control gave up focus.
func (m *Machine) DidEnd() {
	wasPending := m.phase == PhasePendingResign
	gen := m.pendingGen
	m.phase = PhaseUnfocused
	m.pendingGen = 0

	m.scheduleNotify(false)
	if wasPending {
		m.scheduleFulfill(gen)
	}
	m.Evaluate()
}

func (m *Machine) scheduleNotify(focused bool) {
	if m.onFocusChange == nil {
		return
	}
	m.deliver.Schedule(func() { m.onFocusChange(focused) })
}

func (m *Machine) scheduleFulfill(gen uint64) {
	if m.controller == nil || gen == 0 {
		return
	}
	ctl := m.controller
	m.deliver.Schedule(func() { ctl.fulfill(gen) })
}
