package textfield

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/textfield/pkg/graphics"
	"github.com/go-drift/textfield/pkg/platform"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.Style.FontSize != 16 {
		t.Errorf("FontSize = %v, want 16", opts.Style.FontSize)
	}
	if opts.Style.Color != graphics.ColorBlack {
		t.Errorf("Color = %#x, want black", uint32(opts.Style.Color))
	}
	if !opts.Autocorrect || !opts.SpellCheck {
		t.Error("autocorrect and spell check should default on")
	}
	if opts.Keyboard != platform.KeyboardTypeText {
		t.Errorf("Keyboard = %v, want text", opts.Keyboard)
	}
	if opts.NativeFontScaling {
		t.Error("NativeFontScaling should default off")
	}
}

func TestCombineMatchesSequentialApplication(t *testing.T) {
	a := WithFont("Menlo", 13)
	b := WithTextColor(graphics.ColorBlue)

	sequential := DefaultOptions()
	a(&sequential)
	b(&sequential)

	if diff := cmp.Diff(sequential, resolveOptions(Combine(a, b))); diff != "" {
		t.Errorf("options mismatch (-sequential +combined):\n%s", diff)
	}
}

func TestCombineAppliesInOrder(t *testing.T) {
	cfg := Combine(
		WithKeyboard(platform.KeyboardTypeEmail),
		WithKeyboard(platform.KeyboardTypeNumber),
	)

	opts := resolveOptions(cfg)
	if opts.Keyboard != platform.KeyboardTypeNumber {
		t.Errorf("Keyboard = %v, want number (last config wins)", opts.Keyboard)
	}
}

func TestCombineMergesDistinctProperties(t *testing.T) {
	cfg := Combine(
		NoAutocorrect(),
		WithKeyboard(platform.KeyboardTypePhone),
		WithPlaceholderColor(graphics.ColorRed),
	)

	opts := resolveOptions(cfg)
	want := DefaultOptions()
	want.Autocorrect = false
	want.SpellCheck = false
	want.Keyboard = platform.KeyboardTypePhone
	want.PlaceholderColor = graphics.ColorRed

	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestCombineSkipsNilConfigs(t *testing.T) {
	cfg := Combine(nil, ClearsOnFocus(), nil)

	opts := resolveOptions(cfg)
	if !opts.ClearsOnBeginEditing {
		t.Error("ClearsOnBeginEditing not set")
	}
}

func TestResolveOptionsNilConfig(t *testing.T) {
	if diff := cmp.Diff(DefaultOptions(), resolveOptions(nil)); diff != "" {
		t.Errorf("nil config should yield defaults (-want +got):\n%s", diff)
	}
}

func TestEmailKeyboardPreset(t *testing.T) {
	opts := resolveOptions(EmailKeyboard())

	if opts.Keyboard != platform.KeyboardTypeEmail {
		t.Errorf("Keyboard = %v, want email", opts.Keyboard)
	}
	if opts.Capitalization != platform.TextCapitalizationNone {
		t.Errorf("Capitalization = %v, want none", opts.Capitalization)
	}
	if opts.Autocorrect || opts.SpellCheck {
		t.Error("email preset should disable correction and spell check")
	}
}

func TestPresetComposesWithLaterOverride(t *testing.T) {
	cfg := Combine(EmailKeyboard(), WithCapitalization(platform.TextCapitalizationSentences))

	opts := resolveOptions(cfg)
	if opts.Capitalization != platform.TextCapitalizationSentences {
		t.Errorf("Capitalization = %v, want sentences (override after preset)", opts.Capitalization)
	}
	if opts.Keyboard != platform.KeyboardTypeEmail {
		t.Errorf("Keyboard = %v, want email (preset value kept)", opts.Keyboard)
	}
}

func TestWithMaxLines(t *testing.T) {
	tests := []struct {
		name      string
		lines     int
		multiline bool
	}{
		{"several lines", 4, true},
		{"single line", 1, false},
		{"unlimited", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := resolveOptions(WithMaxLines(tt.lines))
			if opts.MaxLines != tt.lines {
				t.Errorf("MaxLines = %d, want %d", opts.MaxLines, tt.lines)
			}
			if opts.Multiline != tt.multiline {
				t.Errorf("Multiline = %t, want %t", opts.Multiline, tt.multiline)
			}
		})
	}
}

func TestWithFontKeepsOtherStyleFields(t *testing.T) {
	cfg := Combine(
		WithTextColor(graphics.ColorBlue),
		WithFont("Menlo", 13),
	)

	opts := resolveOptions(cfg)
	if opts.Style.Color != graphics.ColorBlue {
		t.Errorf("Color = %#x, want blue to survive WithFont", uint32(opts.Style.Color))
	}
	if opts.Style.FontFamily != "Menlo" || opts.Style.FontSize != 13 {
		t.Errorf("font = %q/%v, want Menlo/13", opts.Style.FontFamily, opts.Style.FontSize)
	}
}

func TestInsetsSymmetric(t *testing.T) {
	insets := InsetsSymmetric(12, 8)
	want := Insets{Left: 12, Top: 8, Right: 12, Bottom: 8}
	if insets != want {
		t.Errorf("InsetsSymmetric(12, 8) = %+v, want %+v", insets, want)
	}
}
