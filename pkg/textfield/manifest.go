package textfield

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/textfield/pkg/graphics"
	"github.com/go-drift/textfield/pkg/platform"
)

// manifestDoc is the YAML shape of a preset manifest.
type manifestDoc struct {
	Requires string               `yaml:"requires"`
	Presets  map[string]presetDoc `yaml:"presets"`
}

type presetDoc struct {
	Keyboard             string   `yaml:"keyboard"`
	ReturnKey            string   `yaml:"returnKey"`
	Capitalization       string   `yaml:"capitalization"`
	Alignment            string   `yaml:"alignment"`
	Autocorrect          *bool    `yaml:"autocorrect"`
	SpellCheck           *bool    `yaml:"spellCheck"`
	ClearsOnBeginEditing *bool    `yaml:"clearsOnBeginEditing"`
	FontFamily           string   `yaml:"fontFamily"`
	FontSize             *float64 `yaml:"fontSize"`
	FontWeight           string   `yaml:"fontWeight"`
	Italic               *bool    `yaml:"italic"`
	TextColor            string   `yaml:"textColor"`
	PlaceholderColor     string   `yaml:"placeholderColor"`
	MaxLines             *int     `yaml:"maxLines"`
	NativeFontScaling    *bool    `yaml:"nativeFontScaling"`
}

// Manifest holds named configs loaded from a YAML document, letting apps
// ship field presets as data:
//
//	requires: v0.2.0
//	presets:
//	  login-email:
//	    keyboard: email
//	    capitalization: none
//	    autocorrect: false
//	    returnKey: next
//
// Colors accept "#RRGGBB", "#AARRGGBB" and SVG color names.
type Manifest struct {
	requires string
	presets  map[string]Config
}

// LoadManifest parses and validates a preset manifest. Unknown YAML keys,
// unknown enum names, bad colors, and a requires tag newer than Version are
// all errors.
func LoadManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc manifestDoc
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return &Manifest{presets: map[string]Config{}}, nil
		}
		return nil, fmt.Errorf("decode preset manifest: %w", err)
	}

	if doc.Requires != "" {
		required := doc.Requires
		if !strings.HasPrefix(required, "v") {
			required = "v" + required
		}
		if !semver.IsValid(required) {
			return nil, fmt.Errorf("preset manifest: invalid requires version %q", doc.Requires)
		}
		if semver.Compare(required, Version) > 0 {
			return nil, fmt.Errorf("preset manifest requires %s, library is %s", required, Version)
		}
	}

	m := &Manifest{
		requires: doc.Requires,
		presets:  make(map[string]Config, len(doc.Presets)),
	}
	for name, preset := range doc.Presets {
		cfg, err := preset.config()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		m.presets[name] = cfg
	}
	return m, nil
}

// Config returns the named preset.
func (m *Manifest) Config(name string) (Config, error) {
	cfg, ok := m.presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have: %s)", name, strings.Join(m.Names(), ", "))
	}
	return cfg, nil
}

// Names returns the preset names in sorted order.
func (m *Manifest) Names() []string {
	names := make([]string, 0, len(m.presets))
	for name := range m.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p presetDoc) config() (Config, error) {
	var configs []Config

	if p.Keyboard != "" {
		k, err := parseKeyboard(p.Keyboard)
		if err != nil {
			return nil, err
		}
		configs = append(configs, WithKeyboard(k))
	}
	if p.ReturnKey != "" {
		k, err := parseReturnKey(p.ReturnKey)
		if err != nil {
			return nil, err
		}
		configs = append(configs, WithReturnKey(k))
	}
	if p.Capitalization != "" {
		c, err := parseCapitalization(p.Capitalization)
		if err != nil {
			return nil, err
		}
		configs = append(configs, WithCapitalization(c))
	}
	if p.Alignment != "" {
		a, err := parseAlignment(p.Alignment)
		if err != nil {
			return nil, err
		}
		configs = append(configs, WithAlignment(a))
	}
	if p.Autocorrect != nil {
		v := *p.Autocorrect
		configs = append(configs, func(o *Options) { o.Autocorrect = v })
	}
	if p.SpellCheck != nil {
		v := *p.SpellCheck
		configs = append(configs, func(o *Options) { o.SpellCheck = v })
	}
	if p.ClearsOnBeginEditing != nil {
		v := *p.ClearsOnBeginEditing
		configs = append(configs, func(o *Options) { o.ClearsOnBeginEditing = v })
	}
	if p.FontFamily != "" || p.FontSize != nil {
		family := p.FontFamily
		size := p.FontSize
		configs = append(configs, func(o *Options) {
			if family != "" {
				o.Style.FontFamily = family
			}
			if size != nil {
				o.Style.FontSize = *size
			}
		})
	}
	if p.FontWeight != "" {
		w, err := parseWeight(p.FontWeight)
		if err != nil {
			return nil, err
		}
		configs = append(configs, func(o *Options) { o.Style.FontWeight = w })
	}
	if p.Italic != nil {
		style := graphics.FontStyleNormal
		if *p.Italic {
			style = graphics.FontStyleItalic
		}
		configs = append(configs, func(o *Options) { o.Style.FontStyle = style })
	}
	if p.TextColor != "" {
		c, err := graphics.ParseColor(p.TextColor)
		if err != nil {
			return nil, fmt.Errorf("textColor: %w", err)
		}
		configs = append(configs, WithTextColor(c))
	}
	if p.PlaceholderColor != "" {
		c, err := graphics.ParseColor(p.PlaceholderColor)
		if err != nil {
			return nil, fmt.Errorf("placeholderColor: %w", err)
		}
		configs = append(configs, WithPlaceholderColor(c))
	}
	if p.MaxLines != nil {
		configs = append(configs, WithMaxLines(*p.MaxLines))
	}
	if p.NativeFontScaling != nil {
		v := *p.NativeFontScaling
		configs = append(configs, func(o *Options) { o.NativeFontScaling = v })
	}

	return Combine(configs...), nil
}

var keyboardNames = map[string]platform.KeyboardType{
	"text":    platform.KeyboardTypeText,
	"number":  platform.KeyboardTypeNumber,
	"phone":   platform.KeyboardTypePhone,
	"email":   platform.KeyboardTypeEmail,
	"url":     platform.KeyboardTypeURL,
	"decimal": platform.KeyboardTypeDecimal,
}

var returnKeyNames = map[string]platform.ReturnKeyType{
	"default":  platform.ReturnKeyDefault,
	"done":     platform.ReturnKeyDone,
	"go":       platform.ReturnKeyGo,
	"next":     platform.ReturnKeyNext,
	"previous": platform.ReturnKeyPrevious,
	"search":   platform.ReturnKeySearch,
	"send":     platform.ReturnKeySend,
	"continue": platform.ReturnKeyContinue,
}

var capitalizationNames = map[string]platform.TextCapitalization{
	"none":       platform.TextCapitalizationNone,
	"characters": platform.TextCapitalizationCharacters,
	"words":      platform.TextCapitalizationWords,
	"sentences":  platform.TextCapitalizationSentences,
}

var alignmentNames = map[string]graphics.TextAlign{
	"left":   graphics.TextAlignLeft,
	"right":  graphics.TextAlignRight,
	"center": graphics.TextAlignCenter,
	"start":  graphics.TextAlignStart,
	"end":    graphics.TextAlignEnd,
}

// weightNames accepts the names FontWeight.String reports.
var weightNames = func() map[string]graphics.FontWeight {
	weights := []graphics.FontWeight{
		graphics.FontWeightThin,
		graphics.FontWeightExtraLight,
		graphics.FontWeightLight,
		graphics.FontWeightNormal,
		graphics.FontWeightMedium,
		graphics.FontWeightSemibold,
		graphics.FontWeightBold,
		graphics.FontWeightExtraBold,
		graphics.FontWeightBlack,
	}
	m := make(map[string]graphics.FontWeight, len(weights))
	for _, w := range weights {
		m[w.String()] = w
	}
	return m
}()

func parseKeyboard(s string) (platform.KeyboardType, error) {
	k, ok := keyboardNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown keyboard %q", s)
	}
	return k, nil
}

func parseReturnKey(s string) (platform.ReturnKeyType, error) {
	k, ok := returnKeyNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown returnKey %q", s)
	}
	return k, nil
}

func parseCapitalization(s string) (platform.TextCapitalization, error) {
	c, ok := capitalizationNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown capitalization %q", s)
	}
	return c, nil
}

func parseAlignment(s string) (graphics.TextAlign, error) {
	a, ok := alignmentNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown alignment %q", s)
	}
	return a, nil
}

func parseWeight(s string) (graphics.FontWeight, error) {
	w, ok := weightNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown fontWeight %q", s)
	}
	return w, nil
}
