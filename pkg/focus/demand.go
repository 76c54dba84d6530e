// Package focus implements the focus demand protocol for native text
// fields. Hosts express one-shot demands (become or resign first responder)
// through a Controller; a per-field Machine carries each demand through the
// native focus transition and resets it once the transition completes or is
// vetoed, so a demand never fires twice.
package focus

import "sync"

// Demand is a one-shot request for a focus transition.
type Demand int

const (
	// DemandNone requests nothing.
	DemandNone Demand = iota

	// DemandBecome requests that the field become the input focus.
	DemandBecome

	// DemandResign requests that the field give up the input focus.
	DemandResign
)

func (d Demand) String() string {
	switch d {
	case DemandNone:
		return "none"
	case DemandBecome:
		return "become"
	case DemandResign:
		return "resign"
	default:
		return "unknown"
	}
}

// Controller holds the host's current focus demand. The host writes demands
// with Set; the machine consumes them and calls fulfill when a demand has
// been carried out, which resets the controller to DemandNone.
//
// Every write is stamped with a generation so that a fulfillment scheduled
// for an older demand cannot consume a newer one.
type Controller struct {
	mu             sync.Mutex
	demand         Demand
	gen            uint64
	listeners      map[int]func()
	nextListenerID int
}

// NewController creates a controller with no pending demand.
func NewController() *Controller {
	return &Controller{
		listeners: make(map[int]func()),
	}
}

// Demand returns the current demand.
func (c *Controller) Demand() Demand {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.demand
}

// Set replaces the current demand and notifies listeners. Setting
// DemandNone withdraws a pending demand without fulfilling it.
func (c *Controller) Set(d Demand) {
	c.mu.Lock()
	c.gen++
	c.demand = d
	c.mu.Unlock()
	c.notifyListeners()
}

// snapshot returns the current demand with its generation stamp.
func (c *Controller) snapshot() (Demand, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.demand, c.gen
}

// fulfill resets the demand to DemandNone if the given generation is still
// current. A stale generation leaves a newer demand untouched. Reports
// whether the demand was reset.
func (c *Controller) fulfill(gen uint64) bool {
	c.mu.Lock()
	if c.gen != gen || c.demand == DemandNone {
		c.mu.Unlock()
		return false
	}
	c.demand = DemandNone
	c.mu.Unlock()
	c.notifyListeners()
	return true
}

// AddListener adds a callback invoked after every demand change, including
// resets from fulfillment. Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller) notifyListeners() {
	c.mu.Lock()
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
