package platform

import "sync"

// TextSelection is a directed span of selected text. BaseOffset is the
// anchor where the selection began and ExtentOffset is the moving end, so
// BaseOffset may exceed ExtentOffset when the user selects backwards.
type TextSelection struct {
	BaseOffset   int
	ExtentOffset int
}

// ordered returns the selection endpoints in ascending order.
func (s TextSelection) ordered() (int, int) {
	if s.BaseOffset <= s.ExtentOffset {
		return s.BaseOffset, s.ExtentOffset
	}
	return s.ExtentOffset, s.BaseOffset
}

// Start returns the lower endpoint regardless of selection direction.
func (s TextSelection) Start() int {
	start, _ := s.ordered()
	return start
}

// End returns the upper endpoint regardless of selection direction.
func (s TextSelection) End() int {
	_, end := s.ordered()
	return end
}

// IsCollapsed reports whether the selection is a bare caret.
func (s TextSelection) IsCollapsed() bool {
	return s.BaseOffset == s.ExtentOffset
}

// IsValid reports whether both endpoints are non-negative.
func (s TextSelection) IsValid() bool {
	return s.BaseOffset >= 0 && s.ExtentOffset >= 0
}

// clampTo caps both endpoints at length, keeping the selection inside the
// text after a programmatic replacement.
func (s TextSelection) clampTo(length int) TextSelection {
	return TextSelection{
		BaseOffset:   min(s.BaseOffset, length),
		ExtentOffset: min(s.ExtentOffset, length),
	}
}

// TextSelectionCollapsed returns a caret at offset.
func TextSelectionCollapsed(offset int) TextSelection {
	return TextSelection{BaseOffset: offset, ExtentOffset: offset}
}

// TextEditingValue is a snapshot of the text and selection of an input.
type TextEditingValue struct {
	Text      string
	Selection TextSelection
}

// KeyboardType selects the soft keyboard layout.
type KeyboardType int

const (
	KeyboardTypeText KeyboardType = iota
	KeyboardTypeNumber
	KeyboardTypePhone
	KeyboardTypeEmail
	KeyboardTypeURL
	KeyboardTypeDecimal
)

// ReturnKeyType selects the label on the keyboard return key.
type ReturnKeyType int

const (
	ReturnKeyDefault ReturnKeyType = iota
	ReturnKeyDone
	ReturnKeyGo
	ReturnKeyNext
	ReturnKeyPrevious
	ReturnKeySearch
	ReturnKeySend
	ReturnKeyContinue
)

// TextCapitalization selects automatic capitalization while typing.
type TextCapitalization int

const (
	TextCapitalizationNone TextCapitalization = iota
	TextCapitalizationCharacters
	TextCapitalizationWords
	TextCapitalizationSentences
)

// TextEditingController manages text input state. The host owns the
// controller and keeps it alive across renders; the reconciliation bridge
// reads it to compute native mutations and writes it back when the user
// edits text natively.
type TextEditingController struct {
	mu       sync.RWMutex
	state    TextEditingValue
	watchers map[int]func()
	nextID   int
}

// NewTextEditingController returns a controller holding text with the caret
// at the end.
func NewTextEditingController(text string) *TextEditingController {
	return &TextEditingController{
		state: TextEditingValue{
			Text:      text,
			Selection: TextSelectionCollapsed(len(text)),
		},
		watchers: make(map[int]func()),
	}
}

// mutate applies fn to the editing state under the write lock, then
// notifies listeners outside it.
func (c *TextEditingController) mutate(fn func(*TextEditingValue)) {
	c.mu.Lock()
	fn(&c.state)
	c.mu.Unlock()
	c.broadcast()
}

// Text returns the current text content.
func (c *TextEditingController) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Text
}

// SetText replaces the text, clamping the selection to the new length.
func (c *TextEditingController) SetText(text string) {
	c.mutate(func(v *TextEditingValue) {
		v.Text = text
		v.Selection = v.Selection.clampTo(len(text))
	})
}

// Selection returns the current selection.
func (c *TextEditingController) Selection() TextSelection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Selection
}

// SetSelection replaces the selection.
func (c *TextEditingController) SetSelection(selection TextSelection) {
	c.mutate(func(v *TextEditingValue) {
		v.Selection = selection
	})
}

// Value returns the full editing snapshot.
func (c *TextEditingController) Value() TextEditingValue {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// SetValue replaces text and selection together.
func (c *TextEditingController) SetValue(value TextEditingValue) {
	c.mutate(func(v *TextEditingValue) {
		*v = value
	})
}

// Clear empties the text.
func (c *TextEditingController) Clear() {
	c.SetText("")
}

// AddListener registers fn to run after every value change and returns the
// function that removes it again.
func (c *TextEditingController) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// broadcast runs the registered listeners outside the lock, so a listener
// may read or even mutate the controller.
func (c *TextEditingController) broadcast() {
	c.mu.RLock()
	pending := make([]func(), 0, len(c.watchers))
	for _, fn := range c.watchers {
		pending = append(pending, fn)
	}
	c.mu.RUnlock()

	for _, fn := range pending {
		fn()
	}
}
