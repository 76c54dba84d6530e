package platform

import (
	"testing"
)

// recordingDelegate implements TextFieldDelegate with optional hooks.
type recordingDelegate struct {
	onTextChanged func(string, int, int)

	willBegin func() bool
	didBegin  func()
	willEnd   func() bool
	didEnd    func()

	shouldChange func(current, proposed string) bool
	returnTapped func() bool
	deleteBack   func(current string)
	canPerform   func(action string) (bool, bool)
	perform      func(action string) bool
}

func (d *recordingDelegate) TextChanged(text string, selBase, selExt int) {
	if d.onTextChanged != nil {
		d.onTextChanged(text, selBase, selExt)
	}
}

func (d *recordingDelegate) WillBeginEditing() bool {
	if d.willBegin != nil {
		return d.willBegin()
	}
	return true
}

func (d *recordingDelegate) DidBeginEditing() {
	if d.didBegin != nil {
		d.didBegin()
	}
}

func (d *recordingDelegate) WillEndEditing() bool {
	if d.willEnd != nil {
		return d.willEnd()
	}
	return true
}

func (d *recordingDelegate) DidEndEditing() {
	if d.didEnd != nil {
		d.didEnd()
	}
}

func (d *recordingDelegate) ShouldChangeText(current, proposed string) bool {
	if d.shouldChange != nil {
		return d.shouldChange(current, proposed)
	}
	return true
}

func (d *recordingDelegate) ReturnTapped() bool {
	if d.returnTapped != nil {
		return d.returnTapped()
	}
	return false
}

func (d *recordingDelegate) DeleteBackward(current string) {
	if d.deleteBack != nil {
		d.deleteBack(current)
	}
}

func (d *recordingDelegate) CanPerformAction(action string) (bool, bool) {
	if d.canPerform != nil {
		return d.canPerform(action)
	}
	return false, false
}

func (d *recordingDelegate) PerformAction(action string) bool {
	if d.perform != nil {
		return d.perform(action)
	}
	return true
}

func createTextFieldView(t *testing.T) *TextFieldView {
	t.Helper()
	view, err := GetViewRegistry().Create("textfield", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	t.Cleanup(func() { GetViewRegistry().Dispose(view.ViewID()) })
	return view.(*TextFieldView)
}

// --- Event routing ---

func TestTextFieldView_TextChangedUpdatesMirror(t *testing.T) {
	setupRecordingBridge(t)

	var gotText string
	var gotBase, gotExt int
	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		onTextChanged: func(text string, base, ext int) {
			gotText, gotBase, gotExt = text, base, ext
		},
	})

	if _, err := view.HandleViewEvent("textChanged", map[string]any{
		"text":            "hello",
		"selectionBase":   float64(3),
		"selectionExtent": float64(5),
	}); err != nil {
		t.Fatalf("textChanged: %v", err)
	}

	if view.Text() != "hello" {
		t.Errorf("Text() = %q, want %q", view.Text(), "hello")
	}
	if sel := view.Selection(); sel.BaseOffset != 3 || sel.ExtentOffset != 5 {
		t.Errorf("Selection() = %+v, want {3 5}", sel)
	}
	if gotText != "hello" || gotBase != 3 || gotExt != 5 {
		t.Errorf("delegate got (%q, %d, %d), want (hello, 3, 5)", gotText, gotBase, gotExt)
	}
}

func TestTextFieldView_TextChangedRapid(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})
	for i, text := range []string{"p", "pa", "pas", "pass"} {
		n := i + 1
		view.HandleViewEvent("textChanged", map[string]any{
			"text":            text,
			"selectionBase":   float64(n),
			"selectionExtent": float64(n),
		})
	}

	if view.Text() != "pass" {
		t.Errorf("Text() = %q, want %q", view.Text(), "pass")
	}
	if sel := view.Selection(); sel.BaseOffset != 4 || sel.ExtentOffset != 4 {
		t.Errorf("Selection() = %+v, want {4 4}", sel)
	}
}

func TestTextFieldView_FocusEventsTrackState(t *testing.T) {
	setupRecordingBridge(t)

	var began, ended bool
	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		didBegin: func() { began = true },
		didEnd:   func() { ended = true },
	})

	if view.IsFocused() {
		t.Fatal("new view should not report focus")
	}

	view.HandleViewEvent("didBeginEditing", nil)
	if !view.IsFocused() || !began {
		t.Errorf("after didBeginEditing: focused=%v delegate=%v, want true/true", view.IsFocused(), began)
	}

	view.HandleViewEvent("didEndEditing", nil)
	if view.IsFocused() || !ended {
		t.Errorf("after didEndEditing: focused=%v delegate=%v, want false/true", view.IsFocused(), ended)
	}
}

func TestTextFieldView_EditingGatesConsultDelegate(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		willBegin: func() bool { return false },
		willEnd:   func() bool { return false },
	})

	if got, _ := view.HandleViewEvent("willBeginEditing", nil); got != false {
		t.Errorf("willBeginEditing = %v, want false (vetoed)", got)
	}
	if got, _ := view.HandleViewEvent("willEndEditing", nil); got != false {
		t.Errorf("willEndEditing = %v, want false (vetoed)", got)
	}
}

func TestTextFieldView_ShouldChangeTextPassesCurrentAndProposed(t *testing.T) {
	setupRecordingBridge(t)

	var gotCurrent, gotProposed string
	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		shouldChange: func(current, proposed string) bool {
			gotCurrent, gotProposed = current, proposed
			return len(proposed) <= 5
		},
	})

	got, _ := view.HandleViewEvent("shouldChangeText", map[string]any{
		"current":  "abcd",
		"proposed": "abcde",
	})
	if got != true {
		t.Errorf("shouldChangeText = %v, want true", got)
	}
	if gotCurrent != "abcd" || gotProposed != "abcde" {
		t.Errorf("delegate got (%q, %q)", gotCurrent, gotProposed)
	}

	got, _ = view.HandleViewEvent("shouldChangeText", map[string]any{
		"current":  "abcde",
		"proposed": "abcdef",
	})
	if got != false {
		t.Errorf("over-limit shouldChangeText = %v, want false", got)
	}
}

func TestTextFieldView_ShouldChangeTextFallsBackToMirror(t *testing.T) {
	setupRecordingBridge(t)

	var gotCurrent string
	view := NewTextFieldView(1, FieldViewConfig{})
	view.HandleViewEvent("textChanged", map[string]any{
		"text": "mirror", "selectionBase": float64(6), "selectionExtent": float64(6),
	})
	view.SetDelegate(&recordingDelegate{
		shouldChange: func(current, proposed string) bool {
			gotCurrent = current
			return true
		},
	})

	view.HandleViewEvent("shouldChangeText", map[string]any{"proposed": "mirrors"})
	if gotCurrent != "mirror" {
		t.Errorf("current = %q, want mirror fallback", gotCurrent)
	}
}

func TestTextFieldView_ReturnTappedReportsHandled(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		returnTapped: func() bool { return true },
	})

	got, _ := view.HandleViewEvent("returnTapped", nil)
	if got != true {
		t.Errorf("returnTapped = %v, want true (handled)", got)
	}
}

func TestTextFieldView_DeleteBackwardReportsPriorText(t *testing.T) {
	setupRecordingBridge(t)

	var got string
	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		deleteBack: func(current string) { got = current },
	})

	view.HandleViewEvent("deleteBackward", map[string]any{"text": "abc"})
	if got != "abc" {
		t.Errorf("DeleteBackward got %q, want %q", got, "abc")
	}

	// Without an explicit text param the mirror value is used.
	view.HandleViewEvent("textChanged", map[string]any{
		"text": "xyz", "selectionBase": float64(3), "selectionExtent": float64(3),
	})
	view.HandleViewEvent("deleteBackward", nil)
	if got != "xyz" {
		t.Errorf("DeleteBackward fallback got %q, want %q", got, "xyz")
	}
}

func TestTextFieldView_CanPerformActionTriState(t *testing.T) {
	setupRecordingBridge(t)

	tests := []struct {
		name    string
		allowed bool
		decided bool
		want    any
	}{
		{"undecided defers to native", false, false, nil},
		{"decided deny", false, true, false},
		{"decided allow", true, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := NewTextFieldView(1, FieldViewConfig{})
			view.SetDelegate(&recordingDelegate{
				canPerform: func(action string) (bool, bool) { return tc.allowed, tc.decided },
			})

			got, err := view.HandleViewEvent("canPerformAction", map[string]any{"action": "paste"})
			if err != nil {
				t.Fatalf("canPerformAction: %v", err)
			}
			if got != tc.want {
				t.Errorf("canPerformAction = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTextFieldView_PerformActionReportsDefaultRun(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})
	view.SetDelegate(&recordingDelegate{
		perform: func(action string) bool { return action != "cut" },
	})

	if got, _ := view.HandleViewEvent("performAction", map[string]any{"action": "copy"}); got != true {
		t.Errorf("copy performAction = %v, want true (run native default)", got)
	}
	if got, _ := view.HandleViewEvent("performAction", map[string]any{"action": "cut"}); got != false {
		t.Errorf("cut performAction = %v, want false (default suppressed)", got)
	}
}

func TestTextFieldView_NilDelegateDefaults(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})

	// Notifications must not panic.
	view.HandleViewEvent("textChanged", map[string]any{"text": "t"})
	view.HandleViewEvent("didBeginEditing", nil)
	view.HandleViewEvent("didEndEditing", nil)
	view.HandleViewEvent("deleteBackward", nil)

	queries := []struct {
		event string
		want  any
	}{
		{"willBeginEditing", true},
		{"willEndEditing", true},
		{"shouldChangeText", true},
		{"returnTapped", false},
		{"canPerformAction", nil},
		{"performAction", true},
	}
	for _, q := range queries {
		got, err := view.HandleViewEvent(q.event, map[string]any{"action": "copy", "proposed": "x"})
		if err != nil {
			t.Errorf("%s: %v", q.event, err)
			continue
		}
		if got != q.want {
			t.Errorf("%s = %v, want %v", q.event, got, q.want)
		}
	}
}

func TestTextFieldView_UnknownEventFails(t *testing.T) {
	setupRecordingBridge(t)

	view := NewTextFieldView(1, FieldViewConfig{})
	if _, err := view.HandleViewEvent("teleport", nil); err == nil {
		t.Error("unknown event should fail")
	}
}

// --- Outbound methods ---

func TestTextFieldView_SetTextSendsAndMirrors(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)
	bridge.Reset()

	if err := view.SetText("typed"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if view.Text() != "typed" {
		t.Errorf("Text() = %q, want %q", view.Text(), "typed")
	}

	calls := bridge.CallsFor("invokeViewMethod")
	if len(calls) != 1 {
		t.Fatalf("expected 1 native call, got %d", len(calls))
	}
	args := calls[0].Args.(map[string]any)
	if args["method"] != "setText" || args["text"] != "typed" {
		t.Errorf("native call args = %v", args)
	}
}

func TestTextFieldView_SetValueSendsSelection(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)
	bridge.Reset()

	err := view.SetValue(TextEditingValue{
		Text:      "abc",
		Selection: TextSelection{BaseOffset: 1, ExtentOffset: 3},
	})
	if err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	if view.Text() != "abc" {
		t.Errorf("Text() = %q, want %q", view.Text(), "abc")
	}
	if sel := view.Selection(); sel.BaseOffset != 1 || sel.ExtentOffset != 3 {
		t.Errorf("Selection() = %+v, want {1 3}", sel)
	}

	calls := bridge.CallsFor("invokeViewMethod")
	if len(calls) != 1 {
		t.Fatalf("expected 1 native call, got %d", len(calls))
	}
	args := calls[0].Args.(map[string]any)
	if args["method"] != "setValue" {
		t.Errorf("method = %v, want setValue", args["method"])
	}
	if args["selectionBase"].(float64) != 1 || args["selectionExtent"].(float64) != 3 {
		t.Errorf("selection args = %v", args)
	}
}

func TestTextFieldView_GranularSettersSendMethods(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)

	tests := []struct {
		name   string
		call   func() error
		method string
		key    string
		want   any
	}{
		{"secure", func() error { return view.SetSecure(true) }, "setSecure", "secure", true},
		{"enabled", func() error { return view.SetEnabled(false) }, "setEnabled", "enabled", false},
		{"textColor", func() error { return view.SetTextColor(0xFF112233) }, "setTextColor", "color", float64(0xFF112233)},
		{"alignment", func() error { return view.SetAlignment(2) }, "setAlignment", "alignment", float64(2)},
		{"returnKey", func() error { return view.SetReturnKey(ReturnKeyGo) }, "setReturnKey", "returnKey", float64(ReturnKeyGo)},
		{"placeholder", func() error { return view.SetPlaceholder("Email") }, "setPlaceholder", "placeholder", "Email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bridge.Reset()
			if err := tc.call(); err != nil {
				t.Fatalf("call: %v", err)
			}
			calls := bridge.CallsFor("invokeViewMethod")
			if len(calls) != 1 {
				t.Fatalf("expected 1 native call, got %d", len(calls))
			}
			args := calls[0].Args.(map[string]any)
			if args["method"] != tc.method {
				t.Errorf("method = %v, want %v", args["method"], tc.method)
			}
			if args[tc.key] != tc.want {
				t.Errorf("%s = %v, want %v", tc.key, args[tc.key], tc.want)
			}
		})
	}
}

func TestTextFieldView_SetFontSendsSpec(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)
	bridge.Reset()

	font := FontSpec{Family: "Menlo", Size: 13, Weight: 700, Italic: true}
	if err := view.SetFont(font); err != nil {
		t.Fatalf("SetFont: %v", err)
	}
	if view.Config().Font != font {
		t.Errorf("Config().Font = %+v, want %+v", view.Config().Font, font)
	}

	calls := bridge.CallsFor("invokeViewMethod")
	if len(calls) != 1 {
		t.Fatalf("expected 1 native call, got %d", len(calls))
	}
	args := calls[0].Args.(map[string]any)
	if args["method"] != "setFont" {
		t.Errorf("method = %v, want setFont", args["method"])
	}
	if args["fontFamily"] != "Menlo" || args["fontSize"].(float64) != 13 ||
		args["fontWeight"].(float64) != 700 || args["fontItalic"] != true {
		t.Errorf("font args = %v", args)
	}
}

func TestTextFieldView_UpdateBehaviorExcludesGranularFields(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)
	bridge.Reset()

	err := view.UpdateBehavior(FieldViewConfig{
		Keyboard:       KeyboardTypeEmail,
		Capitalization: TextCapitalizationWords,
		Autocorrect:    true,
		MaxLines:       3,
		PaddingLeft:    12,
	})
	if err != nil {
		t.Fatalf("UpdateBehavior: %v", err)
	}

	calls := bridge.CallsFor("invokeViewMethod")
	if len(calls) != 1 {
		t.Fatalf("expected 1 native call, got %d", len(calls))
	}
	args := calls[0].Args.(map[string]any)
	if args["method"] != "updateBehavior" {
		t.Errorf("method = %v, want updateBehavior", args["method"])
	}
	if args["keyboardType"].(float64) != float64(KeyboardTypeEmail) {
		t.Errorf("keyboardType = %v", args["keyboardType"])
	}
	if args["maxLines"].(float64) != 3 {
		t.Errorf("maxLines = %v", args["maxLines"])
	}

	// Font, color, alignment, and return key travel on their own methods.
	for _, key := range []string{"fontSize", "fontFamily", "textColor", "alignment", "returnKey"} {
		if _, ok := args[key]; ok {
			t.Errorf("updateBehavior should not carry %q", key)
		}
	}
}

func TestTextFieldView_FocusMethodsInvokeNative(t *testing.T) {
	bridge := setupRecordingBridge(t)
	view := createTextFieldView(t)
	bridge.Reset()

	if err := view.RequestFocus(); err != nil {
		t.Fatalf("RequestFocus: %v", err)
	}
	if err := view.ResignFocus(); err != nil {
		t.Fatalf("ResignFocus: %v", err)
	}

	calls := bridge.CallsFor("invokeViewMethod")
	if len(calls) != 2 {
		t.Fatalf("expected 2 native calls, got %d", len(calls))
	}
	if m := calls[0].Args.(map[string]any)["method"]; m != "focus" {
		t.Errorf("first method = %v, want focus", m)
	}
	if m := calls[1].Args.(map[string]any)["method"]; m != "blur" {
		t.Errorf("second method = %v, want blur", m)
	}
}

// --- Config ---

func TestFieldViewConfig_EqualityForIdenticalValues(t *testing.T) {
	a := FieldViewConfig{
		Font:             FontSpec{Family: "Roboto", Size: 16, Weight: 400},
		TextColor:        0xFF000000,
		PlaceholderColor: 0xFF999999,
		ReturnKey:        ReturnKeyDone,
		Keyboard:         KeyboardTypeEmail,
		Capitalization:   TextCapitalizationNone,
		Autocorrect:      true,
		PaddingLeft:      12,
		PaddingTop:       8,
		PaddingRight:     12,
		PaddingBottom:    8,
		Placeholder:      "Email",
	}
	b := a

	if a != b {
		t.Error("identical FieldViewConfig values should be equal")
	}
}

func TestFieldViewConfig_InequalityForDifferentValues(t *testing.T) {
	base := FieldViewConfig{
		Font:     FontSpec{Size: 16},
		Keyboard: KeyboardTypeText,
	}

	tests := []struct {
		name   string
		modify func(c *FieldViewConfig)
	}{
		{"FontSize", func(c *FieldViewConfig) { c.Font.Size = 14 }},
		{"FontItalic", func(c *FieldViewConfig) { c.Font.Italic = true }},
		{"Keyboard", func(c *FieldViewConfig) { c.Keyboard = KeyboardTypeNumber }},
		{"ReturnKey", func(c *FieldViewConfig) { c.ReturnKey = ReturnKeySend }},
		{"Placeholder", func(c *FieldViewConfig) { c.Placeholder = "different" }},
		{"TextColor", func(c *FieldViewConfig) { c.TextColor = 0xFFFF0000 }},
		{"MaxLines", func(c *FieldViewConfig) { c.MaxLines = 2 }},
		{"PaddingLeft", func(c *FieldViewConfig) { c.PaddingLeft = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			modified := base
			tc.modify(&modified)
			if base == modified {
				t.Errorf("configs differing in %s should not be equal", tc.name)
			}
		})
	}
}

func TestTextFieldViewFactory_ParsesCreateParams(t *testing.T) {
	setupRecordingBridge(t)

	view, err := GetViewRegistry().Create("textfield", map[string]any{
		"fontFamily":       "Menlo",
		"fontSize":         float64(13),
		"fontWeight":       float64(700),
		"fontItalic":       true,
		"textColor":        float64(0xFF112233),
		"placeholderColor": float64(0xFFAABBCC),
		"textAlignment":    float64(2),
		"returnKey":        float64(ReturnKeyNext),
		"keyboardType":     float64(KeyboardTypeEmail),
		"capitalization":   float64(TextCapitalizationSentences),
		"autocorrect":      true,
		"spellCheck":       true,
		"multiline":        true,
		"maxLines":         float64(4),
		"paddingLeft":      float64(6),
		"placeholder":      "Search",
		"text":             "seed",
		"secure":           false,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer GetViewRegistry().Dispose(view.ViewID())

	field := view.(*TextFieldView)
	config := field.Config()

	if config.Font != (FontSpec{Family: "Menlo", Size: 13, Weight: 700, Italic: true}) {
		t.Errorf("Font = %+v", config.Font)
	}
	if config.TextColor != 0xFF112233 || config.PlaceholderColor != 0xFFAABBCC {
		t.Errorf("colors = %08X / %08X", config.TextColor, config.PlaceholderColor)
	}
	if config.TextAlignment != 2 {
		t.Errorf("TextAlignment = %d", config.TextAlignment)
	}
	if config.ReturnKey != ReturnKeyNext || config.Keyboard != KeyboardTypeEmail {
		t.Errorf("ReturnKey/Keyboard = %v/%v", config.ReturnKey, config.Keyboard)
	}
	if config.Capitalization != TextCapitalizationSentences {
		t.Errorf("Capitalization = %v", config.Capitalization)
	}
	if !config.Autocorrect || !config.SpellCheck || !config.Multiline || config.MaxLines != 4 {
		t.Errorf("behavior flags = %+v", config)
	}
	if config.PaddingLeft != 6 {
		t.Errorf("PaddingLeft = %v", config.PaddingLeft)
	}
	if config.Placeholder != "Search" {
		t.Errorf("Placeholder = %q", config.Placeholder)
	}

	if field.Text() != "seed" {
		t.Errorf("Text() = %q, want seeded initial text", field.Text())
	}
	if sel := field.Selection(); sel.BaseOffset != 4 || sel.ExtentOffset != 4 {
		t.Errorf("Selection() = %+v, want caret at end", sel)
	}
}
