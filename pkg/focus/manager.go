package focus

import "sync"

// Node registers one focusable field with the Manager for keyboard
// traversal. Fields register in mount order, which is the traversal order.
type Node struct {
	CanRequestFocus bool
	SkipTraversal   bool
	DebugLabel      string

	machine *Machine
}

// NewNode creates a traversal node driving the given machine.
func NewNode(machine *Machine) *Node {
	return &Node{
		CanRequestFocus: true,
		machine:         machine,
	}
}

// Machine returns the focus machine behind this node.
func (n *Node) Machine() *Machine {
	return n.machine
}

func (n *Node) canReceiveFocus() bool {
	return n != nil && n.CanRequestFocus && !n.SkipTraversal && n.machine != nil
}

// RequestFocus asks this node's field to take focus.
func (n *Node) RequestFocus() {
	if !n.canReceiveFocus() {
		return
	}
	n.machine.RequestFocus()
}

// Unfocus asks this node's field to give up focus.
func (n *Node) Unfocus() {
	if n == nil || n.machine == nil {
		return
	}
	n.machine.ResignFocus()
}

// Manager tracks registered fields and moves focus between them. Primacy
// follows confirmed native transitions, reported through NoteFocused and
// NoteUnfocused, rather than requests in flight.
type Manager struct {
	mu      sync.Mutex
	nodes   []*Node
	primary *Node
}

var manager = &Manager{}

// GetManager returns the singleton focus manager.
func GetManager() *Manager {
	return manager
}

// ResetManagerForTest empties the node list and primary focus. This should
// only be called from tests.
func ResetManagerForTest() {
	manager.mu.Lock()
	manager.nodes = nil
	manager.primary = nil
	manager.mu.Unlock()
}

// Register appends a node in traversal order.
func (m *Manager) Register(n *Node) {
	m.mu.Lock()
	m.nodes = append(m.nodes, n)
	m.mu.Unlock()
}

// Unregister removes a node. A primary node that unregisters stops being
// primary.
func (m *Manager) Unregister(n *Node) {
	m.mu.Lock()
	for i, node := range m.nodes {
		if node == n {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	if m.primary == n {
		m.primary = nil
	}
	m.mu.Unlock()
}

// Primary returns the node whose field currently holds focus, or nil.
func (m *Manager) Primary() *Node {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.primary
}

// NoteFocused records that a node's field took focus natively.
func (m *Manager) NoteFocused(n *Node) {
	m.mu.Lock()
	m.primary = n
	m.mu.Unlock()
}

// NoteUnfocused records that a node's field gave up focus. It only clears
// primacy if the node still holds it, since another field may already have
// taken over.
func (m *Manager) NoteUnfocused(n *Node) {
	m.mu.Lock()
	if m.primary == n {
		m.primary = nil
	}
	m.mu.Unlock()
}

// MoveFocus moves focus by delta positions in registration order, wrapping
// around and skipping nodes that cannot receive focus. Reports whether a
// candidate was found and asked to focus.
func (m *Manager) MoveFocus(delta int) bool {
	m.mu.Lock()
	count := len(m.nodes)
	if count == 0 {
		m.mu.Unlock()
		return false
	}

	currentIndex := -1
	for i, node := range m.nodes {
		if node == m.primary {
			currentIndex = i
			break
		}
	}

	var target *Node
	for step := 1; step <= count; step++ {
		candidate := m.nodes[wrapIndex(currentIndex+delta*step, count)]
		if candidate.canReceiveFocus() {
			target = candidate
			break
		}
	}
	m.mu.Unlock()

	if target == nil {
		return false
	}
	target.RequestFocus()
	return true
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
