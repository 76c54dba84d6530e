package textfield

import (
	"github.com/go-drift/textfield/pkg/graphics"
	"github.com/go-drift/textfield/pkg/platform"
)

// Config adjusts one or more field options. Configs compose with Combine;
// later configs win where they touch the same option.
type Config func(*Options)

// Combine merges configs into one, applying them in argument order. Nil
// entries are skipped.
func Combine(configs ...Config) Config {
	return func(o *Options) {
		for _, c := range configs {
			if c != nil {
				c(o)
			}
		}
	}
}

// resolveOptions runs a config against the defaults.
func resolveOptions(cfg Config) Options {
	opts := DefaultOptions()
	if cfg != nil {
		cfg(&opts)
	}
	return opts
}

// WithStyle replaces the font and text color wholesale.
func WithStyle(style graphics.TextStyle) Config {
	return func(o *Options) { o.Style = style }
}

// WithFont sets the font family and size.
func WithFont(family string, size float64) Config {
	return func(o *Options) {
		o.Style.FontFamily = family
		o.Style.FontSize = size
	}
}

// WithTextColor sets the text color.
func WithTextColor(c graphics.Color) Config {
	return func(o *Options) { o.Style.Color = c }
}

// WithPlaceholderColor sets the placeholder text color.
func WithPlaceholderColor(c graphics.Color) Config {
	return func(o *Options) { o.PlaceholderColor = c }
}

// WithAlignment sets the text alignment.
func WithAlignment(a graphics.TextAlign) Config {
	return func(o *Options) { o.Alignment = a }
}

// WithKeyboard sets the keyboard layout.
func WithKeyboard(k platform.KeyboardType) Config {
	return func(o *Options) { o.Keyboard = k }
}

// WithReturnKey sets the keyboard's action button.
func WithReturnKey(k platform.ReturnKeyType) Config {
	return func(o *Options) { o.ReturnKey = k }
}

// WithCapitalization sets automatic capitalization behavior.
func WithCapitalization(c platform.TextCapitalization) Config {
	return func(o *Options) { o.Capitalization = c }
}

// WithPadding sets the text insets.
func WithPadding(insets Insets) Config {
	return func(o *Options) { o.Padding = insets }
}

// WithMaxLines limits the line count and enables multiline input for any
// limit other than a single line.
func WithMaxLines(n int) Config {
	return func(o *Options) {
		o.MaxLines = n
		o.Multiline = n != 1
	}
}

// WithNativeFontScaling hands font sizing to the platform's dynamic type
// system.
func WithNativeFontScaling() Config {
	return func(o *Options) { o.NativeFontScaling = true }
}

// NoAutocorrect disables auto-correction and spell checking.
func NoAutocorrect() Config {
	return func(o *Options) {
		o.Autocorrect = false
		o.SpellCheck = false
	}
}

// EmailKeyboard configures the field for email address entry: email
// keyboard, no correction, no capitalization.
func EmailKeyboard() Config {
	return Combine(
		WithKeyboard(platform.KeyboardTypeEmail),
		WithCapitalization(platform.TextCapitalizationNone),
		NoAutocorrect(),
	)
}

// ClearsOnFocus empties the field each time editing begins.
func ClearsOnFocus() Config {
	return func(o *Options) { o.ClearsOnBeginEditing = true }
}
