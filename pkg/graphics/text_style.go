package graphics

import "fmt"

// FontWeight is a numeric font weight on the usual 100..900 scale.
type FontWeight int

const (
	FontWeightThin       FontWeight = 100
	FontWeightExtraLight FontWeight = 200
	FontWeightLight      FontWeight = 300
	FontWeightNormal     FontWeight = 400
	FontWeightMedium     FontWeight = 500
	FontWeightSemibold   FontWeight = 600
	FontWeightBold       FontWeight = 700
	FontWeightExtraBold  FontWeight = 800
	FontWeightBlack      FontWeight = 900
)

var fontWeightNames = map[FontWeight]string{
	FontWeightThin:       "thin",
	FontWeightExtraLight: "extra_light",
	FontWeightLight:      "light",
	FontWeightNormal:     "normal",
	FontWeightMedium:     "medium",
	FontWeightSemibold:   "semibold",
	FontWeightBold:       "bold",
	FontWeightExtraBold:  "extra_bold",
	FontWeightBlack:      "black",
}

func (w FontWeight) String() string {
	if name, ok := fontWeightNames[w]; ok {
		return name
	}
	return fmt.Sprintf("FontWeight(%d)", int(w))
}

// FontStyle distinguishes upright from italic text.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

func (s FontStyle) String() string {
	switch s {
	case FontStyleNormal:
		return "normal"
	case FontStyleItalic:
		return "italic"
	}
	return fmt.Sprintf("FontStyle(%d)", int(s))
}

// TextAlign controls horizontal alignment of text inside the field. Start
// and End resolve against the text direction, the others are absolute.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignRight
	TextAlignCenter
	TextAlignStart
	TextAlignEnd
)

var textAlignNames = map[TextAlign]string{
	TextAlignLeft:   "left",
	TextAlignRight:  "right",
	TextAlignCenter: "center",
	TextAlignStart:  "start",
	TextAlignEnd:    "end",
}

func (a TextAlign) String() string {
	if name, ok := textAlignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("TextAlign(%d)", int(a))
}

// TextStyle describes how the native control should draw its text.
// The zero value leaves every property at the native default.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
	FontStyle  FontStyle
}

// WithColor returns a copy of the style in the given color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// WithSize returns a copy of the style at the given font size.
func (s TextStyle) WithSize(size float64) TextStyle {
	s.FontSize = size
	return s
}
