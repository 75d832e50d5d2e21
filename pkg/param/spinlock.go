package param

import "sync/atomic"

// Spinlock wraps an arbitrary value in a CAS-loop guard so it can be
// shared across threads without blocking. It is grounded on the
// reference's SpinlockParamBinding, which wraps a spin::Mutex<Cell<T>>; Go
// has no spin-mutex in the standard library, so this type hand-rolls the
// same short-critical-section technique with an atomic.Bool flag (see
// DESIGN.md).
//
// Prefer the Atomic* bindings for bool/int32/uint32/int64/uint64/float64;
// Spinlock exists for the remaining plain-Copy-shaped types those can't
// cover directly.
type Spinlock[T any] struct {
	locked atomic.Bool
	value  T
}

// NewSpinlock creates a binding initialized to v.
func NewSpinlock[T any](v T) *Spinlock[T] {
	s := &Spinlock[T]{}
	s.value = v
	return s
}

func (s *Spinlock[T]) lock() {
	for !s.locked.CompareAndSwap(false, true) {
	}
}

func (s *Spinlock[T]) unlock() { s.locked.Store(false) }

// Get reads the current value.
func (s *Spinlock[T]) Get() T {
	s.lock()
	v := s.value
	s.unlock()
	return v
}

// Set writes a new value.
func (s *Spinlock[T]) Set(v T) {
	s.lock()
	s.value = v
	s.unlock()
}
