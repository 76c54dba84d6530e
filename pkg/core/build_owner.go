package core

import (
	"slices"
	"sync"
)

// BuildOwner queues elements that need rebuilding and drains them in depth
// order. One owner drives one element tree.
type BuildOwner struct {
	mu      sync.Mutex
	pending []Element
	queued  map[Element]bool

	// OnNeedsFrame fires each time an element is queued. Hosts that build
	// on demand hook this to wake their frame loop.
	OnNeedsFrame func()
}

// NewBuildOwner creates a new BuildOwner.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{}
}

// MountRoot inflates widget as the root of a new element tree owned by this
// BuildOwner and returns the root element.
func (b *BuildOwner) MountRoot(widget Widget) Element {
	root := inflateWidget(widget, b)
	if root != nil {
		root.Mount(nil)
	}
	return root
}

// ScheduleBuild queues an element for the next FlushBuild. Scheduling the
// same element twice before a flush is a no-op.
func (b *BuildOwner) ScheduleBuild(element Element) {
	b.mu.Lock()
	if b.queued[element] {
		b.mu.Unlock()
		return
	}
	if b.queued == nil {
		b.queued = make(map[Element]bool)
	}
	b.queued[element] = true
	b.pending = append(b.pending, element)
	notify := b.OnNeedsFrame
	b.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// NeedsWork reports whether any elements are waiting for a build.
func (b *BuildOwner) NeedsWork() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending) > 0
}

// takePending drains the queue and returns the batch sorted parents-first,
// so a parent rebuild that replaces a child runs before the stale child.
func (b *BuildOwner) takePending() []Element {
	b.mu.Lock()
	defer b.mu.Unlock()
	batch := b.pending
	b.pending = nil
	clear(b.queued)
	slices.SortFunc(batch, func(x, y Element) int {
		return x.Depth() - y.Depth()
	})
	return batch
}

// FlushBuild rebuilds every queued element. Elements queued while the pass
// runs are rebuilt before it returns, so the tree is clean afterwards.
func (b *BuildOwner) FlushBuild() {
	for {
		batch := b.takePending()
		if len(batch) == 0 {
			return
		}
		for _, element := range batch {
			if m, ok := element.(interface{ isMounted() bool }); ok && !m.isMounted() {
				continue
			}
			element.RebuildIfNeeded()
		}
	}
}
