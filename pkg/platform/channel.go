package platform

import "sync"

// MethodHandler handles incoming method calls on a channel. The returned
// value is encoded and sent back to native as the call result, which lets
// native code query Go for decisions (focus gates, edit-menu permissions)
// as well as deliver notifications.
type MethodHandler func(method string, args any) (any, error)

// MethodChannel is a named duplex pipe for method calls: Invoke goes out to
// native, the handler serves calls coming back in.
type MethodChannel struct {
	name    string
	codec   MessageCodec
	handler MethodHandler
}

// NewMethodChannel creates the channel and registers it under name, making
// it reachable from incoming native calls.
func NewMethodChannel(name string) *MethodChannel {
	ch := &MethodChannel{
		name:  name,
		codec: DefaultCodec,
	}
	channels.register(name, ch)
	return ch
}

// Name reports the channel's registered name.
func (c *MethodChannel) Name() string {
	return c.name
}

// SetHandler installs the handler serving calls from the native side.
func (c *MethodChannel) SetHandler(handler MethodHandler) {
	c.handler = handler
}

// Invoke sends a method call to the native side and blocks for the reply.
func (c *MethodChannel) Invoke(method string, args any) (any, error) {
	return invokeNative(c.name, method, args)
}

// handleCall serves one incoming call through the installed handler.
func (c *MethodChannel) handleCall(method string, args any) (any, error) {
	if c.handler == nil {
		return nil, ErrMethodNotFound
	}
	return c.handler(method, args)
}

// channelRegistry tracks all registered method channels by name.
type channelRegistry struct {
	byName map[string]*MethodChannel
	mu     sync.RWMutex
}

var channels = &channelRegistry{
	byName: make(map[string]*MethodChannel),
}

func (r *channelRegistry) register(name string, ch *MethodChannel) {
	r.mu.Lock()
	r.byName[name] = ch
	r.mu.Unlock()
}

func (r *channelRegistry) get(name string) *MethodChannel {
	r.mu.RLock()
	ch := r.byName[name]
	r.mu.RUnlock()
	return ch
}

// HandleMethodCall is the entry point for native-to-Go calls: the host's
// glue decodes nothing itself, it hands the raw payload here and ships the
// encoded result back.
func HandleMethodCall(channel, method string, argsData []byte) ([]byte, error) {
	ch := channels.get(channel)
	if ch == nil {
		return nil, ErrChannelNotFound
	}

	args, err := DefaultCodec.Decode(argsData)
	if err != nil {
		return nil, err
	}

	result, err := ch.handleCall(method, args)
	if err != nil {
		return nil, err
	}

	return DefaultCodec.Encode(result)
}
