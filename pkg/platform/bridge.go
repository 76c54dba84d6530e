package platform

// NativeBridge is the outbound half of the transport. A host embedding this
// library installs one with SetNativeBridge; traffic in the other direction
// enters through HandleMethodCall.
type NativeBridge interface {
	// InvokeMethod delivers one encoded method call to the native side and
	// returns the encoded result.
	InvokeMethod(channel, method string, args []byte) ([]byte, error)
}

var nativeBridge NativeBridge

// SetNativeBridge connects the native side. The host's platform glue calls
// this during initialization, before any fields mount.
func SetNativeBridge(bridge NativeBridge) {
	nativeBridge = bridge
}

// invokeNative encodes one call, sends it across the bridge, and decodes
// the reply. Without a bridge every call fails with ErrPlatformUnavailable.
func invokeNative(channel, method string, args any) (any, error) {
	if nativeBridge == nil {
		return nil, ErrPlatformUnavailable
	}

	argsData, err := DefaultCodec.Encode(args)
	if err != nil {
		return nil, err
	}

	resultData, err := nativeBridge.InvokeMethod(channel, method, argsData)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Decode(resultData)
}

// ResetForTest returns the package globals to their initial state: no
// bridge, no dispatch hook, empty view registry. Only tests call this.
func ResetForTest() {
	nativeBridge = nil
	RegisterDispatch(nil)

	if viewRegistry != nil {
		viewRegistry.mu.Lock()
		viewRegistry.views = make(map[int64]View)
		viewRegistry.mu.Unlock()
		viewRegistry.nextID.Store(0)
	}
}
