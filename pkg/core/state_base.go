package core

import "sync"

// StateBase supplies the plumbing a State needs: the element backref for
// SetState, disposer registration, and no-op defaults for the lifecycle
// methods a state does not care about. Embed it in your state struct:
//
//	type searchBoxState struct {
//	    core.StateBase
//	    query string
//	}
type StateBase struct {
	element   *StatefulElement
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// SetElement stores the element backref. The framework calls this during
// Mount, before InitState.
func (s *StateBase) SetElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element hosting this state, or nil before Mount.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// SetState applies fn and schedules a rebuild. After disposal it does
// nothing, so async completions need no mounted-check of their own.
//
// SetState must be called on the UI thread. Background goroutines hand
// their updates to platform.Dispatch first.
func (s *StateBase) SetState(fn func()) {
	if s.disposed {
		return
	}
	if fn != nil {
		fn()
	}
	if s.element != nil {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers cleanup to run when the state is disposed and returns
// a function that unregisters it. If the state is already disposed, cleanup
// runs immediately. Each cleanup runs at most once.
func (s *StateBase) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		cleanup()
		return func() {}
	}
	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// runDisposers flips the disposed flag and runs registered cleanups newest
// first, mirroring acquisition order. Later calls do nothing. Cleanups run
// outside the lock so they may register further disposers, which then run
// immediately.
func (s *StateBase) runDisposers() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	fns := s.disposers
	s.disposers = nil
	s.mu.Unlock()

	for i := len(fns) - 1; i >= 0; i-- {
		if fns[i] != nil {
			fns[i]()
		}
	}
}

// Dispose runs the registered cleanups. Override it for custom teardown and
// call s.StateBase.Dispose() from the override.
func (s *StateBase) Dispose() {
	s.runDisposers()
}

// InitState does nothing. Override to initialize the state.
func (s *StateBase) InitState() {}

// Build returns nil. Override to build the widget subtree.
func (s *StateBase) Build(ctx BuildContext) Widget {
	return nil
}

// DidUpdateWidget does nothing. Override to react to configuration changes.
func (s *StateBase) DidUpdateWidget(oldWidget StatefulWidget) {}
