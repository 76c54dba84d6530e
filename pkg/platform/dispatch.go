package platform

import "sync/atomic"

// uiDispatch holds the host-installed hook that hops onto the UI thread.
var uiDispatch atomic.Pointer[func(func())]

// RegisterDispatch installs fn as the UI-thread dispatch hook. The host
// calls this once at startup; passing nil uninstalls the hook.
func RegisterDispatch(fn func(callback func())) {
	if fn == nil {
		uiDispatch.Store(nil)
		return
	}
	uiDispatch.Store(&fn)
}

// Dispatch hands callback to the registered hook and reports whether it was
// scheduled. With no hook installed, or a nil callback, nothing runs.
func Dispatch(callback func()) bool {
	fn := uiDispatch.Load()
	if fn == nil || callback == nil {
		return false
	}
	(*fn)(callback)
	return true
}
