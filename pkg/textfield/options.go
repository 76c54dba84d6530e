package textfield

import (
	"github.com/go-drift/textfield/pkg/graphics"
	"github.com/go-drift/textfield/pkg/platform"
)

// Insets is padding between the control's bounds and its text.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// InsetsSymmetric creates insets with the same horizontal and the same
// vertical value on both sides.
func InsetsSymmetric(horizontal, vertical float64) Insets {
	return Insets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Options is the full presentation and behavior surface of a text field.
// Configs mutate it; the bridge diffs successive resolved values to decide
// which native properties to push.
type Options struct {
	// Style sets the font and text color.
	Style graphics.TextStyle

	// PlaceholderColor is the color for placeholder text.
	PlaceholderColor graphics.Color

	// Alignment positions text within the control.
	Alignment graphics.TextAlign

	// ReturnKey selects the keyboard's action button.
	ReturnKey platform.ReturnKeyType

	// Keyboard selects the keyboard layout.
	Keyboard platform.KeyboardType

	// Capitalization selects automatic capitalization behavior.
	Capitalization platform.TextCapitalization

	// Autocorrect enables auto-correction.
	Autocorrect bool

	// SpellCheck enables spell checking.
	SpellCheck bool

	// ClearsOnBeginEditing empties the field each time editing begins.
	ClearsOnBeginEditing bool

	// Multiline enables multiline input.
	Multiline bool

	// MaxLines limits the number of lines (multiline only, 0 = unlimited).
	MaxLines int

	// Padding is the inset between the control's bounds and its text.
	Padding Insets

	// NativeFontScaling hands font sizing to the platform's dynamic type
	// system. When set, the font is configured once at mount and never
	// pushed again.
	NativeFontScaling bool
}

// DefaultOptions returns the options every field starts from before its
// configs run.
func DefaultOptions() Options {
	return Options{
		Style: graphics.TextStyle{
			Color:      graphics.ColorBlack,
			FontSize:   16,
			FontWeight: graphics.FontWeightNormal,
		},
		PlaceholderColor: graphics.Color(0xFF999999),
		Autocorrect:      true,
		SpellCheck:       true,
	}
}
