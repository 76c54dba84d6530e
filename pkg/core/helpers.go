package core

// Stateful builds an inline stateful widget from two closures, for small
// self-contained fragments that do not warrant a named state type:
//
//	widget := core.Stateful(
//	    func() string { return "" },
//	    func(query string, ctx core.BuildContext, setState func(func(string) string)) core.Widget {
//	        return textfield.TextField{
//	            OnChanged: func(text string) {
//	                setState(func(string) string { return text })
//	            },
//	        }
//	    },
//	)
//
// The type parameter is the state. setState takes a transform from the
// current state to the next one and schedules a rebuild.
//
// States with several fields or lifecycle needs should embed [StatefulBase]
// in a named struct instead.
func Stateful[S any](
	initial func() S,
	render func(state S, ctx BuildContext, setState func(func(S) S)) Widget,
) Widget {
	return &closureWidget[S]{initial: initial, render: render}
}

type closureWidget[S any] struct {
	StatefulBase
	initial func() S
	render  func(state S, ctx BuildContext, setState func(func(S) S)) Widget
}

func (w *closureWidget[S]) CreateState() State { return &closureState[S]{} }

// closureState keeps only the state value; the closures are read from the
// current widget on every call, so an updated widget's render takes effect
// on the next build.
type closureState[S any] struct {
	StateBase
	value S
}

func (s *closureState[S]) widget() *closureWidget[S] {
	return s.Element().Widget().(*closureWidget[S])
}

func (s *closureState[S]) InitState() {
	s.value = s.widget().initial()
}

func (s *closureState[S]) Build(ctx BuildContext) Widget {
	return s.widget().render(s.value, ctx, func(update func(S) S) {
		s.SetState(func() {
			s.value = update(s.value)
		})
	})
}
