package param

import "sync/atomic"

// OneShot reports true exactly once after being set: Get swaps the stored
// flag back to false, so a single true write is observed by exactly one
// reader even under concurrent polling.
type OneShot struct {
	v atomic.Bool
}

// NewOneShot creates a OneShot starting in the given state.
func NewOneShot(state bool) *OneShot {
	o := &OneShot{}
	o.v.Store(state)
	return o
}

// Get reads and clears the flag.
func (o *OneShot) Get() bool { return o.v.Swap(false) }

// Set arms (or disarms) the flag.
func (o *OneShot) Set(v bool) { o.v.Store(v) }
