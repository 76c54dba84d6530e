package platform

import "sync"

// noopBridge is a NativeBridge that accepts all calls without side effects.
type noopBridge struct{}

func (noopBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	return DefaultCodec.Encode(nil)
}

// SetupTestBridge installs a no-op native bridge and synchronous dispatch
// function for testing. The cleanup function should be testing.T.Cleanup or
// equivalent; it registers a teardown that calls ResetForTest.
//
//	platform.SetupTestBridge(t.Cleanup)
func SetupTestBridge(cleanup func(func())) {
	SetNativeBridge(noopBridge{})
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
}

// BridgeCall records one outbound native invocation.
type BridgeCall struct {
	Channel string
	Method  string
	Args    any
}

// RecordingBridge is a NativeBridge that records outbound calls and can
// answer them with canned responses. It stands in for the native host in
// tests.
type RecordingBridge struct {
	mu    sync.Mutex
	calls []BridgeCall

	// Respond, when set, supplies the response for a call. The second
	// return value reports whether the call was handled; unhandled calls
	// get a nil response. A response value implementing error fails the
	// invocation instead.
	Respond func(channel, method string, args any) (any, bool)
}

func (b *RecordingBridge) InvokeMethod(channel, method string, args []byte) ([]byte, error) {
	var decoded any
	if len(args) > 0 {
		decoded, _ = DefaultCodec.Decode(args)
	}

	b.mu.Lock()
	b.calls = append(b.calls, BridgeCall{Channel: channel, Method: method, Args: decoded})
	respond := b.Respond
	b.mu.Unlock()

	if respond != nil {
		if result, ok := respond(channel, method, decoded); ok {
			if err, isErr := result.(error); isErr {
				return nil, err
			}
			return DefaultCodec.Encode(result)
		}
	}
	return DefaultCodec.Encode(nil)
}

// Calls returns a snapshot of all recorded calls.
func (b *RecordingBridge) Calls() []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BridgeCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallsFor returns the recorded calls matching a method name.
func (b *RecordingBridge) CallsFor(method string) []BridgeCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []BridgeCall
	for _, c := range b.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Reset discards the recorded calls.
func (b *RecordingBridge) Reset() {
	b.mu.Lock()
	b.calls = nil
	b.mu.Unlock()
}

// SetupRecordingBridge installs a RecordingBridge plus synchronous dispatch
// and returns the bridge for inspection. Teardown runs via cleanup.
func SetupRecordingBridge(cleanup func(func())) *RecordingBridge {
	bridge := &RecordingBridge{}
	SetNativeBridge(bridge)
	RegisterDispatch(func(cb func()) { cb() })
	cleanup(ResetForTest)
	return bridge
}
