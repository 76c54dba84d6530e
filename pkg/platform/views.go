package platform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-drift/textfield/pkg/errors"
)

// View is the Go side of one native view instance.
type View interface {
	// ViewID returns the registry-assigned id shared with native.
	ViewID() int64

	// ViewType names the kind of view, e.g. "textfield".
	ViewType() string

	// HandleViewEvent processes an event routed from the native view.
	// The returned value is encoded and sent back to native as the event
	// result, so events can be queries (gates, edit-menu permissions) as
	// well as notifications.
	HandleViewEvent(event string, params map[string]any) (any, error)

	// Dispose releases Go-side resources. Native teardown is driven by the
	// registry.
	Dispose()
}

// ViewFactory builds views of one type.
type ViewFactory interface {
	// Create instantiates the Go side of a view.
	Create(viewID int64, params map[string]any) (View, error)

	// ViewType names the kind of view this factory builds.
	ViewType() string
}

// ViewRegistry manages native view types and instances. All native view
// traffic in both directions flows over its method channel.
type ViewRegistry struct {
	factories map[string]ViewFactory
	views     map[int64]View
	nextID    atomic.Int64
	mu        sync.RWMutex
	channel   *MethodChannel
}

var viewRegistry *ViewRegistry

// GetViewRegistry returns the global view registry.
func GetViewRegistry() *ViewRegistry {
	if viewRegistry == nil {
		viewRegistry = newViewRegistry()
	}
	return viewRegistry
}

func newViewRegistry() *ViewRegistry {
	r := &ViewRegistry{
		factories: make(map[string]ViewFactory),
		views:     make(map[int64]View),
		channel:   NewMethodChannel("textfield/views"),
	}
	r.channel.SetHandler(r.handleMethodCall)
	return r
}

// RegisterFactory registers a factory for a view type.
func (r *ViewRegistry) RegisterFactory(factory ViewFactory) {
	r.mu.Lock()
	r.factories[factory.ViewType()] = factory
	r.mu.Unlock()
}

// Create creates a new view of the given type and asks native to
// instantiate its counterpart.
func (r *ViewRegistry) Create(viewType string, params map[string]any) (View, error) {
	r.mu.RLock()
	factory, ok := r.factories[viewType]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrViewTypeNotFound
	}

	viewID := r.nextID.Add(1)

	view, err := factory.Create(viewID, params)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.views[viewID] = view
	r.mu.Unlock()

	_, err = r.channel.Invoke("create", map[string]any{
		"viewId":   viewID,
		"viewType": viewType,
		"params":   params,
	})
	if err != nil {
		r.mu.Lock()
		delete(r.views, viewID)
		r.mu.Unlock()
		return nil, err
	}

	return view, nil
}

// Dispose destroys a view and its native counterpart.
func (r *ViewRegistry) Dispose(viewID int64) {
	r.mu.Lock()
	view, ok := r.views[viewID]
	if ok {
		delete(r.views, viewID)
	}
	r.mu.Unlock()

	if ok {
		view.Dispose()
		r.channel.Invoke("dispose", map[string]any{
			"viewId": viewID,
		})
	}
}

// GetView returns a view by ID, or nil if it does not exist.
func (r *ViewRegistry) GetView(viewID int64) View {
	r.mu.RLock()
	view := r.views[viewID]
	r.mu.RUnlock()
	return view
}

// InvokeViewMethod invokes a method on a specific native view. The method
// arguments are flattened into a fresh payload beside the routing fields,
// leaving the caller's map untouched.
func (r *ViewRegistry) InvokeViewMethod(viewID int64, method string, args map[string]any) (any, error) {
	invokeArgs := make(map[string]any, len(args)+2)
	for k, v := range args {
		invokeArgs[k] = v
	}
	invokeArgs["viewId"] = viewID
	invokeArgs["method"] = method
	return r.channel.Invoke("invokeViewMethod", invokeArgs)
}

// handleMethodCall serves the registry's side of the channel.
func (r *ViewRegistry) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "viewEvent":
		return r.dispatchViewEvent(args)

	case "onViewCreated", "onViewDisposed":
		// Lifecycle acknowledgements carry no payload the Go side needs.
		return nil, nil

	default:
		return nil, ErrMethodNotFound
	}
}

// dispatchViewEvent routes a native view event to the owning view and
// returns the view's result to native.
func (r *ViewRegistry) dispatchViewEvent(args any) (any, error) {
	viewID, event, params, err := r.parseViewEvent(args)
	if err != nil {
		errors.Report(&errors.FieldError{
			Op:      "platform.dispatchViewEvent",
			Kind:    errors.KindParsing,
			Channel: r.channel.Name(),
			Err:     err,
		})
		return nil, err
	}

	view := r.GetView(viewID)
	if view == nil {
		err := fmt.Errorf("%w: id %d", ErrViewNotFound, viewID)
		errors.Report(&errors.FieldError{
			Op:      "platform.dispatchViewEvent",
			Kind:    errors.KindPlatform,
			Channel: r.channel.Name(),
			Err:     err,
		})
		return nil, err
	}

	return view.HandleViewEvent(event, params)
}

// parseViewEvent extracts the view id, event name and params from a raw
// viewEvent payload. Parse failures wrap ErrInvalidArguments.
func (r *ViewRegistry) parseViewEvent(args any) (int64, string, map[string]any, error) {
	argsMap, ok := args.(map[string]any)
	if !ok {
		return 0, "", nil, fmt.Errorf("%w: %w", ErrInvalidArguments,
			&errors.ParseError{Channel: r.channel.Name(), DataType: "viewEvent", Got: args})
	}
	viewID, ok := toInt64(argsMap["viewId"])
	if !ok {
		return 0, "", nil, fmt.Errorf("%w: %w", ErrInvalidArguments,
			&errors.ParseError{Channel: r.channel.Name(), DataType: "viewEvent.viewId", Got: argsMap["viewId"]})
	}
	event, ok := argsMap["event"].(string)
	if !ok {
		return 0, "", nil, fmt.Errorf("%w: %w", ErrInvalidArguments,
			&errors.ParseError{Channel: r.channel.Name(), DataType: "viewEvent.event", Got: argsMap["event"]})
	}
	params, _ := argsMap["params"].(map[string]any)
	return viewID, event, params, nil
}
