// Package itempool provides the allocation-free item source/sink pair the
// real-time thread uses to acquire and release heap-backed values:
// channel-backed pools refilled and drained by non-real-time helper
// goroutines, matching the reference's ChannelItemSource/ChannelItemSink.
package itempool

// Source is implemented by a pool the real-time thread can pull
// pre-allocated values from without blocking.
type Source[T any] interface {
	// TryGet attempts to take an item from the pool and initialize it to
	// init. On failure (pool empty) it returns ok=false and hands init
	// back unchanged.
	TryGet(init T) (value T, ok bool)
}

// Sink is implemented by a queue the real-time thread can push values
// into without blocking, for later disposal off the real-time thread.
type Sink[T any] interface {
	// TryPut attempts to push item. On failure (sink full or closed) it
	// returns ok=false and hands item back unchanged.
	TryPut(item T) (ok bool, back T)
}

// Dispose is implemented by the non-real-time side of a Sink: it drains
// whatever has been pushed.
type Dispose[T any] interface {
	// DisposeAll drains the sink, discarding every item.
	DisposeAll()
	// WithEach drains the sink, calling fn on every item.
	WithEach(fn func(T))
}

// Creator is implemented by the non-real-time side of a Source: it
// refills the pool.
type Creator[T any] interface {
	// Fill tops the pool back up to capacity.
	Fill()
}

// ChannelSource is a channel-backed Source: a pre-filled channel of slots
// acts as the pool, and TryGet is a non-blocking receive. Matches
// ChannelItemSource.
type ChannelSource[T any] struct {
	ch chan T
}

// ChannelCreator is the refill side of a ChannelSource. Matches ChannelItemCreator.
type ChannelCreator[T any] struct {
	ch chan T
}

// NewChannelPool creates a paired (Creator, Source) with capacity n slots,
// already filled with zero-valued placeholders, matching item_source(n).
func NewChannelPool[T any](n int) (*ChannelCreator[T], *ChannelSource[T]) {
	ch := make(chan T, n)
	c := &ChannelCreator[T]{ch: ch}
	c.Fill()
	return c, &ChannelSource[T]{ch: ch}
}

// Fill tops the channel back up to its capacity with zero-valued slots.
func (c *ChannelCreator[T]) Fill() {
	for {
		var zero T
		select {
		case c.ch <- zero:
			continue
		default:
			return
		}
	}
}

// TryGet takes a pre-allocated slot, if any, and returns it set to init.
func (s *ChannelSource[T]) TryGet(init T) (T, bool) {
	select {
	case <-s.ch:
		return init, true
	default:
		return init, false
	}
}

// ChannelSink is a channel-backed Sink: pushing is a non-blocking send,
// matching ChannelItemSink.
type ChannelSink[T any] struct {
	ch chan T
}

// ChannelDispose is the drain side of a ChannelSink. Matches ChannelItemDispose.
type ChannelDispose[T any] struct {
	ch chan T
}

// NewChannelSink creates a paired (Sink, Dispose) with capacity
// channelLen, matching channel_item_sink(channel_len).
func NewChannelSink[T any](channelLen int) (*ChannelSink[T], *ChannelDispose[T]) {
	ch := make(chan T, channelLen)
	return &ChannelSink[T]{ch: ch}, &ChannelDispose[T]{ch: ch}
}

// TryPut pushes item without blocking.
func (s *ChannelSink[T]) TryPut(item T) (bool, T) {
	select {
	case s.ch <- item:
		var zero T
		return true, zero
	default:
		return false, item
	}
}

// DisposeAll drains every pending item, discarding it.
func (d *ChannelDispose[T]) DisposeAll() {
	d.WithEach(func(T) {})
}

// WithEach drains every pending item, calling fn on each.
func (d *ChannelDispose[T]) WithEach(fn func(T)) {
	for {
		select {
		case v := <-d.ch:
			fn(v)
		default:
			return
		}
	}
}
