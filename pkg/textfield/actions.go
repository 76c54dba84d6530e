package textfield

// EditAction identifies one standard edit menu command of the native text
// control.
type EditAction int

const (
	ActionCut EditAction = iota
	ActionCopy
	ActionPaste
	ActionDelete
	ActionSelect
	ActionSelectAll
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline
	ActionWritingDirectionLTR
	ActionWritingDirectionRTL
	ActionIncreaseSize
	ActionDecreaseSize
	ActionUpdateTextAttributes
)

var actionNames = [...]string{
	ActionCut:                  "cut",
	ActionCopy:                 "copy",
	ActionPaste:                "paste",
	ActionDelete:               "delete",
	ActionSelect:               "select",
	ActionSelectAll:            "selectAll",
	ActionToggleBold:           "toggleBold",
	ActionToggleItalic:         "toggleItalic",
	ActionToggleUnderline:      "toggleUnderline",
	ActionWritingDirectionLTR:  "writingDirectionLTR",
	ActionWritingDirectionRTL:  "writingDirectionRTL",
	ActionIncreaseSize:         "increaseSize",
	ActionDecreaseSize:         "decreaseSize",
	ActionUpdateTextAttributes: "updateTextAttributes",
}

// String returns the action's wire name, as sent by the native view.
func (a EditAction) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ParseEditAction maps a wire name back to its EditAction.
func ParseEditAction(name string) (EditAction, bool) {
	for action, n := range actionNames {
		if n == name {
			return EditAction(action), true
		}
	}
	return 0, false
}

// AllEditActions returns every standard edit action in wire order.
func AllEditActions() []EditAction {
	actions := make([]EditAction, len(actionNames))
	for i := range actions {
		actions[i] = EditAction(i)
	}
	return actions
}

// ActionPolicy decides which edit menu commands a field offers and what
// happens when one runs.
//
// The zero value defers entirely to the native control: the menu shows
// whatever the control would normally show, and every command runs its
// native behavior.
type ActionPolicy struct {
	// Permitted, when non-nil, is the exhaustive list of actions the edit
	// menu may offer. Nil leaves the decision to the native control.
	Permitted []EditAction

	// Overrides maps actions to replacement handlers. A handler reports
	// whether the native behavior should still run after it.
	Overrides map[EditAction]func() bool
}

// CanPerform reports whether an action may appear in the edit menu. The
// second result is false when the policy has no opinion and the native
// control should decide.
func (p ActionPolicy) CanPerform(action EditAction) (allowed, decided bool) {
	if p.Permitted == nil {
		return false, false
	}
	for _, a := range p.Permitted {
		if a == action {
			return true, true
		}
	}
	return false, true
}

// Perform runs the override for an action, if any, and reports whether the
// native behavior should run. Actions without an override keep their native
// behavior.
func (p ActionPolicy) Perform(action EditAction) bool {
	if fn, ok := p.Overrides[action]; ok && fn != nil {
		return fn()
	}
	return true
}
