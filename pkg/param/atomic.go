package param

import "sync/atomic"

// AtomicBool is a Get/Set binding over an atomic bool.
type AtomicBool struct{ v atomic.Bool }

// NewAtomicBool creates a binding initialized to v.
func NewAtomicBool(v bool) *AtomicBool { a := &AtomicBool{}; a.v.Store(v); return a }

// Get reads the current value.
func (a *AtomicBool) Get() bool { return a.v.Load() }

// Set writes a new value.
func (a *AtomicBool) Set(v bool) { a.v.Store(v) }

// AtomicInt32 is a Get/Set binding over an atomic int32.
type AtomicInt32 struct{ v atomic.Int32 }

// NewAtomicInt32 creates a binding initialized to v.
func NewAtomicInt32(v int32) *AtomicInt32 { a := &AtomicInt32{}; a.v.Store(v); return a }

// Get reads the current value.
func (a *AtomicInt32) Get() int32 { return a.v.Load() }

// Set writes a new value.
func (a *AtomicInt32) Set(v int32) { a.v.Store(v) }

// AtomicUint32 is a Get/Set binding over an atomic uint32.
type AtomicUint32 struct{ v atomic.Uint32 }

// NewAtomicUint32 creates a binding initialized to v.
func NewAtomicUint32(v uint32) *AtomicUint32 { a := &AtomicUint32{}; a.v.Store(v); return a }

// Get reads the current value.
func (a *AtomicUint32) Get() uint32 { return a.v.Load() }

// Set writes a new value.
func (a *AtomicUint32) Set(v uint32) { a.v.Store(v) }

// AtomicUint64 is a Get/Set binding over an atomic uint64, used for ticks.
type AtomicUint64 struct{ v atomic.Uint64 }

// NewAtomicUint64 creates a binding initialized to v.
func NewAtomicUint64(v uint64) *AtomicUint64 { a := &AtomicUint64{}; a.v.Store(v); return a }

// Get reads the current value.
func (a *AtomicUint64) Get() uint64 { return a.v.Load() }

// Set writes a new value.
func (a *AtomicUint64) Set(v uint64) { a.v.Store(v) }

// AtomicInt64 is a Get/Set binding over an atomic int64.
type AtomicInt64 struct{ v atomic.Int64 }

// NewAtomicInt64 creates a binding initialized to v.
func NewAtomicInt64(v int64) *AtomicInt64 { a := &AtomicInt64{}; a.v.Store(v); return a }

// Get reads the current value.
func (a *AtomicInt64) Get() int64 { return a.v.Load() }

// Set writes a new value.
func (a *AtomicInt64) Set(v int64) { a.v.Store(v) }

// AtomicFloat64 stores a float64 atomically via its bit pattern, since Go
// has no native atomic float type.
type AtomicFloat64 struct{ v atomic.Uint64 }

// NewAtomicFloat64 creates a binding initialized to v.
func NewAtomicFloat64(v float64) *AtomicFloat64 {
	a := &AtomicFloat64{}
	a.Set(v)
	return a
}

// Get reads the current value.
func (a *AtomicFloat64) Get() float64 { return float64frombits(a.v.Load()) }

// Set writes a new value.
func (a *AtomicFloat64) Set(v float64) { a.v.Store(float64bits(v)) }
