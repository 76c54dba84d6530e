// Package core provides the widget and element framework that hosts the
// text field: declarative widget values, the element tree that gives them
// identity across builds, and the build owner that batches rebuilds.
package core

// Widget describes a piece of UI. Widgets are immutable values; identity
// across builds comes from the element tree.
type Widget interface {
	// CreateElement creates the element that will host this widget.
	CreateElement() Element

	// Key distinguishes widgets of the same type during reconciliation.
	Key() any
}

// StatelessWidget builds a child widget from its own fields.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget owns mutable state held in a State object that survives
// rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// State holds the mutable state for a StatefulWidget.
type State interface {
	// InitState is called once after the state is attached to its element.
	InitState()

	// Build returns the widget subtree for the current state.
	Build(ctx BuildContext) Widget

	// DidUpdateWidget is called when the element receives a new widget of
	// the same type. The state can diff old against new configuration.
	DidUpdateWidget(oldWidget StatefulWidget)

	// Dispose releases resources. Called when the element unmounts.
	Dispose()
}

// BuildContext is the element handing a widget its place in the tree.
type BuildContext interface {
	// Widget returns the widget currently hosted at this location.
	Widget() Widget
}

// Element is a widget's instantiation at a tree location. Elements persist
// across builds and reconcile new widget values against old ones.
type Element interface {
	BuildContext

	// Depth is the element's distance from the root.
	Depth() int

	// Mount attaches the element under a parent and performs the first
	// build.
	Mount(parent Element)

	// Update replaces the widget with a newer value of the same type.
	Update(newWidget Widget)

	// Unmount detaches the element and releases its subtree.
	Unmount()

	// MarkNeedsBuild schedules the element for rebuild.
	MarkNeedsBuild()

	// RebuildIfNeeded rebuilds the element if it is dirty and mounted.
	RebuildIfNeeded()

	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
}

// StatelessBase provides default CreateElement and Key implementations for
// stateless widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type LoginForm struct {
//	    core.StatelessBase
//	    Email *platform.TextEditingController
//	}
//
//	func (f LoginForm) Build(ctx core.BuildContext) core.Widget {
//	    return textfield.TextField{Controller: f.Email}
//	}
type StatelessBase struct{}

// CreateElement returns a new StatelessElement.
func (StatelessBase) CreateElement() Element { return NewStatelessElement() }

// Key returns nil (no key).
func (StatelessBase) Key() any { return nil }

// StatefulBase provides default CreateElement and Key implementations for
// stateful widgets. Embed it in your widget struct to satisfy the Widget
// interface without boilerplate:
//
//	type SearchBox struct {
//	    core.StatefulBase
//	}
//
//	func (SearchBox) CreateState() core.State { return &searchBoxState{} }
type StatefulBase struct{}

// CreateElement returns a new StatefulElement.
func (StatefulBase) CreateElement() Element { return NewStatefulElement() }

// Key returns nil (no key).
func (StatefulBase) Key() any { return nil }
