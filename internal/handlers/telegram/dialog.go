package telegram

import "sync"

// dialogManager tracks which privileged actors are mid /settitle: their
// next plain-text message becomes the roster title, /cancel aborts.
type dialogManager struct {
	mu      sync.Mutex
	pending map[int64]struct{}
}

func newDialogManager() *dialogManager {
	return &dialogManager{
		pending: make(map[int64]struct{}),
	}
}

// begin puts the actor into the title-capture state.
func (d *dialogManager) begin(actorID int64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending[actorID] = struct{}{}
}

// waiting reports whether the actor's next text message is a title.
func (d *dialogManager) waiting(actorID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[actorID]
	return ok
}

// clear leaves the title-capture state and reports whether the actor was
// in it.
func (d *dialogManager) clear(actorID int64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[actorID]
	delete(d.pending, actorID)
	return ok
}
