package textfield

import (
	"fmt"

	"github.com/go-drift/textfield/pkg/errors"
	"github.com/go-drift/textfield/pkg/focus"
	"github.com/go-drift/textfield/pkg/graphics"
	"github.com/go-drift/textfield/pkg/platform"
	"github.com/go-drift/textfield/pkg/scheduler"
)

// Bridge connects one TextField value to its native control. It creates the
// native view, pushes the properties that changed between renders, runs the
// focus machine, and receives every native callback as the view's delegate.
//
// The bridge works without a widget tree. Hosts that manage their own
// lifecycle can Mount a TextField value directly, hand updated values to
// Reconcile, and Dispose when done.
//
// All methods must be called from the UI context.
type Bridge struct {
	view    *platform.TextFieldView
	machine *focus.Machine
	node    *focus.Node

	controller      *platform.TextEditingController
	unsubscribeText func()
	focusCtl        *focus.Controller

	// widget is the latest desired state. Callbacks always read through it
	// so a re-render swaps handlers without re-wiring the native view.
	widget TextField
	opts   Options

	// updatingController suppresses the native echo while a native edit is
	// being mirrored into the controller.
	updatingController bool
}

// Mount creates the native view for a field and returns its bridge. A nil
// Controller gets a bridge-owned one. A focus demand already set on the
// field's Focus controller is honored immediately.
func Mount(w TextField) (*Bridge, error) {
	b := &Bridge{}
	b.widget = w
	b.opts = resolveOptions(w.Config)
	b.focusCtl = w.Focus

	b.controller = w.Controller
	if b.controller == nil {
		b.controller = platform.NewTextEditingController("")
		b.widget.Controller = b.controller
	}

	cfg := viewConfig(b.opts, w.Placeholder)
	view, err := platform.GetViewRegistry().Create("textfield", createParams(cfg, w, b.controller.Text()))
	if err != nil {
		return nil, err
	}
	fieldView, ok := view.(*platform.TextFieldView)
	if !ok {
		platform.GetViewRegistry().Dispose(view.ViewID())
		return nil, fmt.Errorf("view type %q is not a text field", view.ViewType())
	}
	b.view = fieldView
	fieldView.SetDelegate(b)

	deliver := w.Deliver
	if deliver == nil {
		deliver = scheduler.NextTick{}
	}
	b.machine = focus.NewMachine(focus.MachineConfig{
		Controller:    w.Focus,
		RequestNative: func() error { return b.view.RequestFocus() },
		ResignNative:  func() error { return b.view.ResignFocus() },
		CanFocus: func() bool {
			if fn := b.widget.CanFocus; fn != nil {
				return fn()
			}
			return true
		},
		CanResign: func() bool {
			if fn := b.widget.CanResign; fn != nil {
				return fn()
			}
			return true
		},
		OnFocusChange: func(focused bool) {
			if fn := b.widget.OnFocusChange; fn != nil {
				fn(focused)
			}
		},
		Deliver: deliver,
	})

	b.node = focus.NewNode(b.machine)
	b.node.CanRequestFocus = !w.Disabled
	b.node.DebugLabel = "TextField"
	focus.GetManager().Register(b.node)

	b.unsubscribeText = b.controller.AddListener(b.syncText)

	b.machine.Evaluate()
	return b, nil
}

// Reconcile applies a newer desired state, pushing only the properties that
// differ from the previous one. The focus demand is evaluated on every call
// whether or not anything changed.
func (b *Bridge) Reconcile(next TextField) {
	if b.view == nil {
		return
	}

	prev := b.widget
	prevOpts := b.opts
	nextOpts := resolveOptions(next.Config)
	if next.Controller == nil {
		next.Controller = b.controller
	}
	b.widget = next
	b.opts = nextOpts

	if next.Controller != b.controller {
		b.unsubscribeText()
		b.controller = next.Controller
		b.unsubscribeText = b.controller.AddListener(b.syncText)
		b.syncText()
	}
	if next.Focus != b.focusCtl {
		b.focusCtl = next.Focus
		b.machine.SetController(next.Focus)
	}

	if next.Placeholder != prev.Placeholder {
		b.report("textfield.setPlaceholder", b.view.SetPlaceholder(next.Placeholder))
	}
	if next.Secure != prev.Secure {
		b.report("textfield.setSecure", b.view.SetSecure(next.Secure))
	}
	if next.Disabled != prev.Disabled {
		b.report("textfield.setEnabled", b.view.SetEnabled(!next.Disabled))
		b.node.CanRequestFocus = !next.Disabled
	}

	if fontSpec(nextOpts.Style) != fontSpec(prevOpts.Style) && !nextOpts.NativeFontScaling {
		b.report("textfield.setFont", b.view.SetFont(fontSpec(nextOpts.Style)))
	}
	if nextOpts.Style.Color != prevOpts.Style.Color {
		b.report("textfield.setTextColor", b.view.SetTextColor(uint32(nextOpts.Style.Color)))
	}
	if alignmentWire(nextOpts.Alignment) != alignmentWire(prevOpts.Alignment) {
		b.report("textfield.setAlignment", b.view.SetAlignment(alignmentWire(nextOpts.Alignment)))
	}
	if nextOpts.ReturnKey != prevOpts.ReturnKey {
		b.report("textfield.setReturnKey", b.view.SetReturnKey(nextOpts.ReturnKey))
	}
	if behaviorOnly(nextOpts) != behaviorOnly(prevOpts) {
		b.report("textfield.updateBehavior", b.view.UpdateBehavior(viewConfig(nextOpts, next.Placeholder)))
	}

	b.machine.Evaluate()
}

// Dispose releases the native view and detaches from the controllers.
// Safe to call more than once.
func (b *Bridge) Dispose() {
	if b.unsubscribeText != nil {
		b.unsubscribeText()
		b.unsubscribeText = nil
	}
	if b.machine != nil {
		b.machine.Dispose()
		b.machine = nil
	}
	if b.node != nil {
		focus.GetManager().Unregister(b.node)
		b.node = nil
	}
	if b.view != nil {
		platform.GetViewRegistry().Dispose(b.view.ViewID())
		b.view = nil
	}
}

// ViewID returns the native view's identifier.
func (b *Bridge) ViewID() int64 {
	if b.view == nil {
		return 0
	}
	return b.view.ViewID()
}

// IsFocused reports whether the field currently holds focus.
func (b *Bridge) IsFocused() bool {
	return b.machine != nil && b.machine.IsFocused()
}

// syncText pushes the controller's value to the native view when they
// differ. Runs on every controller mutation.
func (b *Bridge) syncText() {
	if b.updatingController || b.view == nil {
		return
	}
	value := b.controller.Value()
	if value.Text == b.view.Text() && value.Selection == b.view.Selection() {
		return
	}
	b.report("textfield.syncText", b.view.SetValue(value))
}

func (b *Bridge) report(op string, err error) {
	if err == nil {
		return
	}
	errors.Report(&errors.FieldError{Op: op, Kind: errors.KindPlatform, Err: err})
}

// TextChanged implements platform.TextFieldDelegate.
func (b *Bridge) TextChanged(text string, selectionBase, selectionExtent int) {
	old := b.controller.Text()
	b.updatingController = true
	b.controller.SetValue(platform.TextEditingValue{
		Text: text,
		Selection: platform.TextSelection{
			BaseOffset:   selectionBase,
			ExtentOffset: selectionExtent,
		},
	})
	b.updatingController = false

	if fn := b.widget.OnChanged; fn != nil && text != old {
		fn(text)
	}
}

// WillBeginEditing implements platform.TextFieldDelegate.
func (b *Bridge) WillBeginEditing() bool {
	return b.machine.WillBegin()
}

// DidBeginEditing implements platform.TextFieldDelegate.
func (b *Bridge) DidBeginEditing() {
	focus.GetManager().NoteFocused(b.node)
	b.machine.DidBegin()
}

// WillEndEditing implements platform.TextFieldDelegate.
func (b *Bridge) WillEndEditing() bool {
	return b.machine.WillEnd()
}

// DidEndEditing implements platform.TextFieldDelegate.
func (b *Bridge) DidEndEditing() {
	focus.GetManager().NoteUnfocused(b.node)
	b.machine.DidEnd()
}

// ShouldChangeText implements platform.TextFieldDelegate. Without a handler
// every change is accepted.
func (b *Bridge) ShouldChangeText(current, proposed string) bool {
	if fn := b.widget.ShouldChange; fn != nil {
		return fn(current, proposed)
	}
	return true
}

// ReturnTapped implements platform.TextFieldDelegate. A return handler
// consumes the tap. Without one, a next or previous return key moves focus
// through the traversal order; anything else is left to the native control.
func (b *Bridge) ReturnTapped() bool {
	if fn := b.widget.OnReturn; fn != nil {
		fn()
		return true
	}
	switch b.opts.ReturnKey {
	case platform.ReturnKeyNext:
		return focus.GetManager().MoveFocus(1)
	case platform.ReturnKeyPrevious:
		return focus.GetManager().MoveFocus(-1)
	}
	return false
}

// DeleteBackward implements platform.TextFieldDelegate. The text passed in
// is the content before the deletion.
func (b *Bridge) DeleteBackward(current string) {
	if fn := b.widget.OnDelete; fn != nil {
		fn(current)
	}
}

// CanPerformAction implements platform.TextFieldDelegate. Actions the
// library does not know defer to the native control.
func (b *Bridge) CanPerformAction(action string) (allowed, decided bool) {
	a, ok := ParseEditAction(action)
	if !ok {
		return false, false
	}
	return b.widget.Actions.CanPerform(a)
}

// PerformAction implements platform.TextFieldDelegate.
func (b *Bridge) PerformAction(action string) bool {
	a, ok := ParseEditAction(action)
	if !ok {
		return true
	}
	return b.widget.Actions.Perform(a)
}

// behaviorOnly strips the options that have granular setters, leaving the
// subset pushed through updateBehavior.
func behaviorOnly(o Options) Options {
	o.Style = graphics.TextStyle{}
	o.Alignment = 0
	o.ReturnKey = 0
	o.NativeFontScaling = false
	return o
}

func fontSpec(style graphics.TextStyle) platform.FontSpec {
	return platform.FontSpec{
		Family: style.FontFamily,
		Size:   style.FontSize,
		Weight: int(style.FontWeight),
		Italic: style.FontStyle == graphics.FontStyleItalic,
	}
}

func alignmentWire(a graphics.TextAlign) int {
	switch a {
	case graphics.TextAlignRight, graphics.TextAlignEnd:
		return 1
	case graphics.TextAlignCenter:
		return 2
	default:
		return 0
	}
}

func viewConfig(opts Options, placeholder string) platform.FieldViewConfig {
	return platform.FieldViewConfig{
		Font:                 fontSpec(opts.Style),
		TextColor:            uint32(opts.Style.Color),
		PlaceholderColor:     uint32(opts.PlaceholderColor),
		TextAlignment:        alignmentWire(opts.Alignment),
		ReturnKey:            opts.ReturnKey,
		Keyboard:             opts.Keyboard,
		Capitalization:       opts.Capitalization,
		Autocorrect:          opts.Autocorrect,
		SpellCheck:           opts.SpellCheck,
		ClearsOnBeginEditing: opts.ClearsOnBeginEditing,
		Multiline:            opts.Multiline,
		MaxLines:             opts.MaxLines,
		PaddingLeft:          opts.Padding.Left,
		PaddingTop:           opts.Padding.Top,
		PaddingRight:         opts.Padding.Right,
		PaddingBottom:        opts.Padding.Bottom,
		Placeholder:          placeholder,
	}
}

func createParams(cfg platform.FieldViewConfig, w TextField, text string) map[string]any {
	return map[string]any{
		"fontFamily":           cfg.Font.Family,
		"fontSize":             cfg.Font.Size,
		"fontWeight":           cfg.Font.Weight,
		"fontItalic":           cfg.Font.Italic,
		"textColor":            cfg.TextColor,
		"placeholderColor":     cfg.PlaceholderColor,
		"textAlignment":        cfg.TextAlignment,
		"returnKey":            int(cfg.ReturnKey),
		"keyboardType":         int(cfg.Keyboard),
		"capitalization":       int(cfg.Capitalization),
		"autocorrect":          cfg.Autocorrect,
		"spellCheck":           cfg.SpellCheck,
		"clearsOnBeginEditing": cfg.ClearsOnBeginEditing,
		"multiline":            cfg.Multiline,
		"maxLines":             cfg.MaxLines,
		"paddingLeft":          cfg.PaddingLeft,
		"paddingTop":           cfg.PaddingTop,
		"paddingRight":         cfg.PaddingRight,
		"paddingBottom":        cfg.PaddingBottom,
		"placeholder":          cfg.Placeholder,
		"secure":               w.Secure,
		"enabled":              !w.Disabled,
		"text":                 text,
	}
}
