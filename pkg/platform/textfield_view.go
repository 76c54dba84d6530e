package platform

import (
	"fmt"
	"sync"
)

// FontSpec describes the font of the native text field.
type FontSpec struct {
	Family string
	Size   float64
	Weight int // 400=regular, 700=bold
	Italic bool
}

// FieldViewConfig defines styling and behavior passed to the native text
// field. It carries the full configuration snapshot used at view creation;
// after creation the individual Set methods push granular updates.
type FieldViewConfig struct {
	Font             FontSpec
	TextColor        uint32 // ARGB
	PlaceholderColor uint32 // ARGB
	TextAlignment    int    // 0=left, 1=right, 2=center
	ReturnKey        ReturnKeyType
	Keyboard         KeyboardType
	Capitalization   TextCapitalization
	Autocorrect      bool
	SpellCheck       bool

	// ClearsOnBeginEditing empties the field when editing begins.
	ClearsOnBeginEditing bool

	Multiline bool
	MaxLines  int

	// Padding inside the native view
	PaddingLeft   float64
	PaddingTop    float64
	PaddingRight  float64
	PaddingBottom float64

	// Placeholder text shown when the field is empty
	Placeholder string
}

// TextFieldDelegate receives editing events from the native text field.
// Query methods return decisions to native; the native control blocks on
// them before committing the transition or edit.
type TextFieldDelegate interface {
	// TextChanged is called after the native text or selection changed.
	TextChanged(text string, selectionBase, selectionExtent int)

	// WillBeginEditing is called before the field gains focus.
	// Returning false vetoes the transition.
	WillBeginEditing() bool

	// DidBeginEditing is called after the field gained focus.
	DidBeginEditing()

	// WillEndEditing is called before the field loses focus.
	// Returning false vetoes the transition.
	WillEndEditing() bool

	// DidEndEditing is called after the field lost focus.
	DidEndEditing()

	// ShouldChangeText is called before native applies an edit.
	// Returning false rejects the proposed text.
	ShouldChangeText(current, proposed string) bool

	// ReturnTapped is called when the return key is pressed. Returning
	// true marks the tap handled; native skips its default behavior.
	ReturnTapped() bool

	// DeleteBackward is called when backward deletion is about to run,
	// with the text content as it stands before the deletion.
	DeleteBackward(current string)

	// CanPerformAction is called when native builds the edit menu.
	// decided=false defers the decision to the native default.
	CanPerformAction(action string) (allowed, decided bool)

	// PerformAction is called when an edit-menu action is invoked.
	// Returning true lets the native default implementation run.
	PerformAction(action string) bool
}

// TextFieldView is the Go handle to a native text field instance.
type TextFieldView struct {
	viewID   int64
	config   FieldViewConfig
	delegate TextFieldDelegate
	text     string
	selBase  int
	selExt   int
	focused  bool
	mu       sync.RWMutex
}

// NewTextFieldView creates a new text field view handle.
func NewTextFieldView(viewID int64, config FieldViewConfig) *TextFieldView {
	return &TextFieldView{
		viewID: viewID,
		config: config,
	}
}

// ViewID returns the unique identifier for this view.
func (v *TextFieldView) ViewID() int64 {
	return v.viewID
}

// ViewType returns the view type identifier.
func (v *TextFieldView) ViewType() string {
	return "textfield"
}

// Dispose cleans up Go-side state.
func (v *TextFieldView) Dispose() {
	v.mu.Lock()
	v.delegate = nil
	v.mu.Unlock()
}

// SetDelegate registers the single delegate receiving editing events.
// A later registration replaces the previous one.
func (v *TextFieldView) SetDelegate(d TextFieldDelegate) {
	v.mu.Lock()
	v.delegate = d
	v.mu.Unlock()
}

// Config returns the configuration snapshot from view creation.
func (v *TextFieldView) Config() FieldViewConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.config
}

// Text returns the text as last observed on the native side.
func (v *TextFieldView) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

// Selection returns the selection as last observed on the native side.
func (v *TextFieldView) Selection() TextSelection {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return TextSelection{BaseOffset: v.selBase, ExtentOffset: v.selExt}
}

// IsFocused returns whether the native view holds input focus.
func (v *TextFieldView) IsFocused() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.focused
}

// SetText replaces the native text content.
func (v *TextFieldView) SetText(text string) error {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setText", map[string]any{
		"text": text,
	})
	return err
}

// SetValue replaces text and selection atomically.
func (v *TextFieldView) SetValue(value TextEditingValue) error {
	v.mu.Lock()
	v.text = value.Text
	v.selBase = value.Selection.BaseOffset
	v.selExt = value.Selection.ExtentOffset
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setValue", map[string]any{
		"text":            value.Text,
		"selectionBase":   value.Selection.BaseOffset,
		"selectionExtent": value.Selection.ExtentOffset,
	})
	return err
}

// SetSecure toggles obscured (password) entry.
func (v *TextFieldView) SetSecure(secure bool) error {
	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setSecure", map[string]any{
		"secure": secure,
	})
	return err
}

// SetEnabled toggles whether the field accepts user interaction.
func (v *TextFieldView) SetEnabled(enabled bool) error {
	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setEnabled", map[string]any{
		"enabled": enabled,
	})
	return err
}

// SetFont replaces the native font.
func (v *TextFieldView) SetFont(font FontSpec) error {
	v.mu.Lock()
	v.config.Font = font
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setFont", map[string]any{
		"fontFamily": font.Family,
		"fontSize":   font.Size,
		"fontWeight": font.Weight,
		"fontItalic": font.Italic,
	})
	return err
}

// SetTextColor replaces the text color.
func (v *TextFieldView) SetTextColor(argb uint32) error {
	v.mu.Lock()
	v.config.TextColor = argb
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setTextColor", map[string]any{
		"color": argb,
	})
	return err
}

// SetAlignment replaces the horizontal text alignment.
func (v *TextFieldView) SetAlignment(alignment int) error {
	v.mu.Lock()
	v.config.TextAlignment = alignment
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setAlignment", map[string]any{
		"alignment": alignment,
	})
	return err
}

// SetReturnKey replaces the return key type.
func (v *TextFieldView) SetReturnKey(key ReturnKeyType) error {
	v.mu.Lock()
	v.config.ReturnKey = key
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setReturnKey", map[string]any{
		"returnKey": int(key),
	})
	return err
}

// SetPlaceholder replaces the placeholder text.
func (v *TextFieldView) SetPlaceholder(text string) error {
	v.mu.Lock()
	v.config.Placeholder = text
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "setPlaceholder", map[string]any{
		"placeholder": text,
	})
	return err
}

// UpdateBehavior pushes the behavioral configuration subset: keyboard,
// capitalization, assistance toggles, line limits, padding, and placeholder
// color. Font, text color, alignment, and return key have their own
// granular setters and are not included.
func (v *TextFieldView) UpdateBehavior(config FieldViewConfig) error {
	v.mu.Lock()
	v.config.Keyboard = config.Keyboard
	v.config.Capitalization = config.Capitalization
	v.config.Autocorrect = config.Autocorrect
	v.config.SpellCheck = config.SpellCheck
	v.config.ClearsOnBeginEditing = config.ClearsOnBeginEditing
	v.config.Multiline = config.Multiline
	v.config.MaxLines = config.MaxLines
	v.config.PaddingLeft = config.PaddingLeft
	v.config.PaddingTop = config.PaddingTop
	v.config.PaddingRight = config.PaddingRight
	v.config.PaddingBottom = config.PaddingBottom
	v.config.PlaceholderColor = config.PlaceholderColor
	v.mu.Unlock()

	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "updateBehavior", map[string]any{
		"keyboardType":         int(config.Keyboard),
		"capitalization":       int(config.Capitalization),
		"autocorrect":          config.Autocorrect,
		"spellCheck":           config.SpellCheck,
		"clearsOnBeginEditing": config.ClearsOnBeginEditing,
		"multiline":            config.Multiline,
		"maxLines":             config.MaxLines,
		"paddingLeft":          config.PaddingLeft,
		"paddingTop":           config.PaddingTop,
		"paddingRight":         config.PaddingRight,
		"paddingBottom":        config.PaddingBottom,
		"placeholderColor":     config.PlaceholderColor,
	})
	return err
}

// RequestFocus asks the native field to become the input focus.
func (v *TextFieldView) RequestFocus() error {
	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "focus", nil)
	return err
}

// ResignFocus asks the native field to give up input focus.
func (v *TextFieldView) ResignFocus() error {
	_, err := GetViewRegistry().InvokeViewMethod(v.viewID, "blur", nil)
	return err
}

// HandleViewEvent routes an event from the native view to the delegate and
// returns the delegate's decision for query events.
func (v *TextFieldView) HandleViewEvent(event string, params map[string]any) (any, error) {
	v.mu.RLock()
	delegate := v.delegate
	v.mu.RUnlock()

	switch event {
	case "textChanged":
		text := paramString(params, "text")
		selBase := paramInt(params, "selectionBase")
		selExt := paramInt(params, "selectionExtent")
		v.mu.Lock()
		v.text = text
		v.selBase = selBase
		v.selExt = selExt
		v.mu.Unlock()
		if delegate != nil {
			delegate.TextChanged(text, selBase, selExt)
		}
		return nil, nil

	case "willBeginEditing":
		if delegate == nil {
			return true, nil
		}
		return delegate.WillBeginEditing(), nil

	case "didBeginEditing":
		v.mu.Lock()
		v.focused = true
		v.mu.Unlock()
		if delegate != nil {
			delegate.DidBeginEditing()
		}
		return nil, nil

	case "willEndEditing":
		if delegate == nil {
			return true, nil
		}
		return delegate.WillEndEditing(), nil

	case "didEndEditing":
		v.mu.Lock()
		v.focused = false
		v.mu.Unlock()
		if delegate != nil {
			delegate.DidEndEditing()
		}
		return nil, nil

	case "shouldChangeText":
		current := v.Text()
		if raw, ok := params["current"]; ok {
			if s, ok := raw.(string); ok {
				current = s
			}
		}
		proposed := paramString(params, "proposed")
		if delegate == nil {
			return true, nil
		}
		return delegate.ShouldChangeText(current, proposed), nil

	case "returnTapped":
		if delegate == nil {
			return false, nil
		}
		return delegate.ReturnTapped(), nil

	case "deleteBackward":
		current := v.Text()
		if raw, ok := params["text"]; ok {
			if s, ok := raw.(string); ok {
				current = s
			}
		}
		if delegate != nil {
			delegate.DeleteBackward(current)
		}
		return nil, nil

	case "canPerformAction":
		if delegate == nil {
			return nil, nil
		}
		allowed, decided := delegate.CanPerformAction(paramString(params, "action"))
		if !decided {
			return nil, nil
		}
		return allowed, nil

	case "performAction":
		if delegate == nil {
			return true, nil
		}
		return delegate.PerformAction(paramString(params, "action")), nil

	default:
		return nil, fmt.Errorf("%w: view event %q", ErrMethodNotFound, event)
	}
}

// textFieldViewFactory creates text field views.
type textFieldViewFactory struct{}

func (f *textFieldViewFactory) ViewType() string {
	return "textfield"
}

func (f *textFieldViewFactory) Create(viewID int64, params map[string]any) (View, error) {
	config := FieldViewConfig{}

	if s, ok := params["fontFamily"].(string); ok {
		config.Font.Family = s
	}
	if n, ok := toFloat64(params["fontSize"]); ok {
		config.Font.Size = n
	}
	if n, ok := toInt(params["fontWeight"]); ok {
		config.Font.Weight = n
	}
	if b, ok := params["fontItalic"].(bool); ok {
		config.Font.Italic = b
	}
	if n, ok := toUint32(params["textColor"]); ok {
		config.TextColor = n
	}
	if n, ok := toUint32(params["placeholderColor"]); ok {
		config.PlaceholderColor = n
	}
	if n, ok := toInt(params["textAlignment"]); ok {
		config.TextAlignment = n
	}
	if n, ok := toInt(params["returnKey"]); ok {
		config.ReturnKey = ReturnKeyType(n)
	}
	if n, ok := toInt(params["keyboardType"]); ok {
		config.Keyboard = KeyboardType(n)
	}
	if n, ok := toInt(params["capitalization"]); ok {
		config.Capitalization = TextCapitalization(n)
	}
	if b, ok := params["autocorrect"].(bool); ok {
		config.Autocorrect = b
	}
	if b, ok := params["spellCheck"].(bool); ok {
		config.SpellCheck = b
	}
	if b, ok := params["clearsOnBeginEditing"].(bool); ok {
		config.ClearsOnBeginEditing = b
	}
	if b, ok := params["multiline"].(bool); ok {
		config.Multiline = b
	}
	if n, ok := toInt(params["maxLines"]); ok {
		config.MaxLines = n
	}
	if n, ok := toFloat64(params["paddingLeft"]); ok {
		config.PaddingLeft = n
	}
	if n, ok := toFloat64(params["paddingTop"]); ok {
		config.PaddingTop = n
	}
	if n, ok := toFloat64(params["paddingRight"]); ok {
		config.PaddingRight = n
	}
	if n, ok := toFloat64(params["paddingBottom"]); ok {
		config.PaddingBottom = n
	}
	if s, ok := params["placeholder"].(string); ok {
		config.Placeholder = s
	}

	view := NewTextFieldView(viewID, config)

	// Seed the text mirror with the initial content, if any.
	if s, ok := params["text"].(string); ok {
		view.text = s
		view.selBase = len(s)
		view.selExt = len(s)
	}

	return view, nil
}

// RegisterTextFieldViewFactory registers the text field view factory.
func RegisterTextFieldViewFactory() {
	GetViewRegistry().RegisterFactory(&textFieldViewFactory{})
}

func init() {
	RegisterTextFieldViewFactory()
}
