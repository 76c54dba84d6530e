package core

import "reflect"

// elementBase carries the bookkeeping every element kind shares: the hosted
// widget, the element's position in the tree, its dirty flag, and the single
// child slot. The concrete element types only differ in how they produce the
// child widget on rebuild.
type elementBase struct {
	widget     Widget
	parent     Element
	child      Element
	depth      int
	buildOwner *BuildOwner
	self       Element
	dirty      bool
	mounted    bool
}

func (e *elementBase) Widget() Widget { return e.widget }

func (e *elementBase) Depth() int { return e.depth }

// attach places the element under parent and marks it dirty so the first
// rebuild runs. Called at the start of Mount, before any state exists.
func (e *elementBase) attach(parent Element) {
	e.parent = parent
	if parent != nil {
		e.depth = parent.Depth() + 1
	}
	e.mounted = true
	e.dirty = true
}

// detach tears down the subtree below this element and takes it out of
// service. A detached element is skipped by FlushBuild even if it is still
// sitting in the dirty list.
func (e *elementBase) detach() {
	e.mounted = false
	if e.child != nil {
		e.child.Unmount()
		e.child = nil
	}
}

func (e *elementBase) MarkNeedsBuild() {
	if e.dirty {
		return
	}
	e.dirty = true
	if e.buildOwner != nil && e.self != nil {
		e.buildOwner.ScheduleBuild(e.self)
	}
}

// rebuild runs one build pass if the element is dirty, then reconciles the
// child against whatever build produced.
func (e *elementBase) rebuild(build func() Widget) {
	if !e.dirty || !e.mounted {
		return
	}
	e.dirty = false
	e.child = updateChild(e.child, build(), e.self, e.buildOwner)
}

func (e *elementBase) VisitChildren(visitor func(Element) bool) {
	if e.child != nil {
		visitor(e.child)
	}
}

func (e *elementBase) setSelf(self Element)            { e.self = self }
func (e *elementBase) setWidget(widget Widget)         { e.widget = widget }
func (e *elementBase) setBuildOwner(owner *BuildOwner) { e.buildOwner = owner }
func (e *elementBase) isMounted() bool                 { return e.mounted }

// StatelessElement hosts a StatelessWidget.
type StatelessElement struct {
	elementBase
}

func NewStatelessElement() *StatelessElement {
	e := &StatelessElement{}
	e.setSelf(e)
	return e
}

func (e *StatelessElement) Mount(parent Element) {
	e.attach(parent)
	e.RebuildIfNeeded()
}

func (e *StatelessElement) Update(newWidget Widget) {
	e.widget = newWidget
	e.MarkNeedsBuild()
}

func (e *StatelessElement) Unmount() {
	e.detach()
}

func (e *StatelessElement) RebuildIfNeeded() {
	e.rebuild(func() Widget {
		return e.widget.(StatelessWidget).Build(e)
	})
}

// StatefulElement hosts a StatefulWidget together with the State it created.
// The State outlives widget updates; it is created once on Mount and disposed
// on Unmount.
type StatefulElement struct {
	elementBase
	state State
}

func NewStatefulElement() *StatefulElement {
	e := &StatefulElement{}
	e.setSelf(e)
	return e
}

// State returns the state object hosted by this element.
func (e *StatefulElement) State() State { return e.state }

func (e *StatefulElement) Mount(parent Element) {
	e.attach(parent)
	e.state = e.widget.(StatefulWidget).CreateState()
	if setter, ok := e.state.(interface{ SetElement(*StatefulElement) }); ok {
		setter.SetElement(e)
	}
	e.state.InitState()
	e.RebuildIfNeeded()
}

// Update swaps in the new widget before notifying the state, so code running
// inside DidUpdateWidget observes the new configuration through the element.
func (e *StatefulElement) Update(newWidget Widget) {
	old := e.widget.(StatefulWidget)
	e.widget = newWidget
	e.state.DidUpdateWidget(old)
	e.MarkNeedsBuild()
}

// Unmount detaches the subtree first, then disposes the state, so disposers
// never observe mounted children.
func (e *StatefulElement) Unmount() {
	e.detach()
	if e.state != nil {
		e.state.Dispose()
	}
}

func (e *StatefulElement) RebuildIfNeeded() {
	e.rebuild(func() Widget {
		return e.state.Build(e)
	})
}

// updateChild reconciles an existing child element against a freshly built
// widget. A widget of the same kind updates the element in place, keeping
// its state; anything else unmounts the old element and inflates a new one.
func updateChild(existing Element, built Widget, parent Element, owner *BuildOwner) Element {
	if built == nil {
		if existing != nil {
			existing.Unmount()
		}
		return nil
	}
	if existing != nil {
		if sameWidgetKind(existing.Widget(), built) {
			existing.Update(built)
			return existing
		}
		existing.Unmount()
	}
	fresh := inflateWidget(built, owner)
	fresh.Mount(parent)
	return fresh
}

// sameWidgetKind reports whether next can take over existing's element:
// identical dynamic type and equal keys.
func sameWidgetKind(existing, next Widget) bool {
	if existing == nil || next == nil {
		return false
	}
	return reflect.TypeOf(existing) == reflect.TypeOf(next) &&
		reflect.DeepEqual(existing.Key(), next.Key())
}

// inflateWidget creates the element for a widget and hands it the widget and
// owner before Mount runs.
func inflateWidget(widget Widget, owner *BuildOwner) Element {
	if widget == nil {
		return nil
	}
	element := widget.CreateElement()
	if setter, ok := element.(interface{ setWidget(Widget) }); ok {
		setter.setWidget(widget)
	}
	if setter, ok := element.(interface{ setBuildOwner(*BuildOwner) }); ok {
		setter.setBuildOwner(owner)
	}
	return element
}
