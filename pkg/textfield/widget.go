// Package textfield exposes the platform's native text input control as a
// declarative widget. The host describes the field it wants on every render;
// the package keeps one native control alive behind the scenes, pushes only
// the properties that changed, and feeds edits, focus transitions, and edit
// menu queries back to the host.
//
// Text content lives in a [platform.TextEditingController] owned by the
// host. Focus is driven through a [focus.Controller]: the host sets a
// demand, the library fulfills it exactly once, and the host observes the
// outcome through OnFocusChange.
package textfield

import (
	"github.com/go-drift/textfield/pkg/core"
	"github.com/go-drift/textfield/pkg/errors"
	"github.com/go-drift/textfield/pkg/focus"
	"github.com/go-drift/textfield/pkg/platform"
	"github.com/go-drift/textfield/pkg/scheduler"
)

// TextField embeds a native text input field.
//
//	email := platform.NewTextEditingController("")
//	field := textfield.TextField{
//	    Controller:  email,
//	    Placeholder: "Email",
//	    Config:      textfield.EmailKeyboard(),
//	}
type TextField struct {
	core.StatefulBase

	// Controller holds the text content and selection. Nil creates a
	// field-owned controller, making the text write-only for the host.
	Controller *platform.TextEditingController

	// Focus carries the host's focus demands. Nil leaves focus entirely
	// to the user.
	Focus *focus.Controller

	// Placeholder text shown when the field is empty.
	Placeholder string

	// Secure hides the text (for passwords).
	Secure bool

	// Disabled makes the field reject input and focus.
	Disabled bool

	// Config adjusts presentation and behavior. Combine composes several.
	Config Config

	// Actions controls the edit menu. The zero value defers to the native
	// control.
	Actions ActionPolicy

	// ShouldChange vets each edit before it is applied. Nil accepts all.
	ShouldChange func(current, proposed string) bool

	// OnChanged is called after the text changes.
	OnChanged func(text string)

	// OnReturn handles return key taps. Supplying it suppresses the
	// native return behavior.
	OnReturn func()

	// OnDelete is called on backward deletes with the text as it was
	// before the delete.
	OnDelete func(current string)

	// OnFocusChange is called after every completed focus transition.
	OnFocusChange func(focused bool)

	// CanFocus gates focus transitions. Nil permits all.
	CanFocus func() bool

	// CanResign gates resign transitions. Nil permits all.
	CanResign func() bool

	// Deliver schedules focus notifications and demand resets. Nil uses
	// the next frame.
	Deliver scheduler.Scheduler
}

// CreateState creates the state for this widget.
func (w TextField) CreateState() core.State {
	return &textFieldState{}
}

type textFieldState struct {
	core.StateBase
	bridge *Bridge
}

func (s *textFieldState) InitState() {
	w := s.Element().Widget().(TextField)

	bridge, err := Mount(w)
	if err != nil {
		errors.Report(&errors.FieldError{
			Op:   "textfield.Mount",
			Kind: errors.KindPlatform,
			Err:  err,
		})
		return
	}
	s.bridge = bridge
	s.OnDispose(bridge.Dispose)
}

func (s *textFieldState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	if s.bridge == nil {
		return
	}
	s.bridge.Reconcile(s.Element().Widget().(TextField))
}

// Build returns nil: the native control does the drawing.
func (s *textFieldState) Build(ctx core.BuildContext) core.Widget {
	return nil
}
