package graphics

import "testing"

func TestRGBConstructors(t *testing.T) {
	if got := RGB(0x12, 0x34, 0x56); got != Color(0xFF123456) {
		t.Errorf("RGB = %#x, want 0xFF123456", uint32(got))
	}
	if got := RGBA8(0x12, 0x34, 0x56, 0x78); got != Color(0x78123456) {
		t.Errorf("RGBA8 = %#x, want 0x78123456", uint32(got))
	}
	if got := RGBA(0xFF, 0x00, 0x00, 0.5); got != Color(0x80FF0000) {
		t.Errorf("RGBA = %#x, want 0x80FF0000", uint32(got))
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorBlack.WithAlpha(0)
	if c != ColorTransparent {
		t.Errorf("WithAlpha(0) = %#x, want transparent", uint32(c))
	}
	c = ColorRed.WithAlpha8(0x40)
	if c != Color(0x40FF0000) {
		t.Errorf("WithAlpha8 = %#x, want 0x40FF0000", uint32(c))
	}
}

func TestRGBAF(t *testing.T) {
	r, g, b, a := Color(0xFF804020).RGBAF()
	if a != 1.0 {
		t.Errorf("alpha = %v, want 1.0", a)
	}
	if r <= g || g <= b {
		t.Errorf("expected r > g > b, got r=%v g=%v b=%v", r, g, b)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#202020", Color(0xFF202020)},
		{"#FF202020", Color(0xFF202020)},
		{"#80ff0000", Color(0x80FF0000)},
		{"black", ColorBlack},
		{"white", ColorWhite},
		{"red", ColorRed},
		{"SteelBlue", RGB(0x46, 0x82, 0xB4)},
		{"  slategray  ", RGB(0x70, 0x80, 0x90)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12345", "#GGGGGG", "notacolor", "#1234567"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) should fail", in)
		}
	}
}

func TestTextStyleWith(t *testing.T) {
	base := TextStyle{FontFamily: "Menlo", FontSize: 14}
	styled := base.WithColor(ColorBlue).WithSize(18)
	if styled.Color != ColorBlue || styled.FontSize != 18 {
		t.Errorf("WithColor/WithSize = %+v", styled)
	}
	// The receiver is a value; the original must be untouched.
	if base.Color != 0 || base.FontSize != 14 {
		t.Errorf("base mutated: %+v", base)
	}
}
