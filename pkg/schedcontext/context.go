// Package schedcontext implements the two TickContext/EventEvalContext
// flavors the executor and graph nodes run under: RootContext at the top
// of the schedule, and ChildContext for every nested graph scope.
package schedcontext

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/pqueue"
	"github.com/nsound/tickseq/pkg/tick"
)

// Root is the context the schedule executor evaluates top-level events
// under. It is the only context that talks directly to the pending-event
// queue.
type Root struct {
	t              tick.Tick
	ticksPerSecond uint64
	queue          pqueue.Enqueue[event.Event]
}

// NewRoot creates a Root at the given tick and sample rate, backed by queue.
func NewRoot(t tick.Tick, ticksPerSecond uint64, queue pqueue.Enqueue[event.Event]) *Root {
	return &Root{t: t, ticksPerSecond: ticksPerSecond, queue: queue}
}

// UpdateTick repositions the context, called by the executor before each
// event it evaluates.
func (r *Root) UpdateTick(t tick.Tick) { r.t = t }

// TryScheduleEvent enqueues ev at the tick resolved from when. At the
// root, Absolute/ContextAbsolute and Relative/ContextRelative are treated
// identically, matching the reference's "in the root, context and
// absolute are the same".
func (r *Root) TryScheduleEvent(when tick.TickSched, ev event.Event) (bool, event.Event) {
	var t tick.Tick
	switch when.Kind {
	case tick.SchedAbsolute, tick.SchedContextAbsolute:
		t = when.Tick
	default: // SchedRelative, SchedContextRelative
		t = tick.OffsetTick(r.t, when.Delta)
	}
	return r.queue.Enqueue(t, ev)
}

// TickNow is the current absolute tick.
func (r *Root) TickNow() tick.Tick { return r.t }

// TicksPerSecond is the base sample/tick rate.
func (r *Root) TicksPerSecond() uint64 { return r.ticksPerSecond }

// TickPeriodMicros is the duration of one base tick in microseconds.
func (r *Root) TickPeriodMicros() float64 {
	if r.ticksPerSecond == 0 {
		return 0
	}
	return 1_000_000.0 / float64(r.ticksPerSecond)
}

// ContextTickNow equals TickNow at the root.
func (r *Root) ContextTickNow() tick.Tick { return r.TickNow() }

// ContextTickPeriodMicros equals TickPeriodMicros at the root.
func (r *Root) ContextTickPeriodMicros() float64 { return r.TickPeriodMicros() }

// Child is a nested evaluation scope: a graph node (RootClock, ClockRatio,
// TickOffset, ...) builds one to give its children a locally scoped tick
// and period while delegating scheduling and the base tick quantities up
// to its parent.
type Child struct {
	parent                  event.EvalContext
	parentTickOffset        tick.Offset
	contextTick              tick.Tick
	contextTickPeriodMicros float64
}

// NewChild builds a Child scoped under parent.
func NewChild(parent event.EvalContext, parentTickOffset tick.Offset, contextTick tick.Tick, contextTickPeriodMicros float64) *Child {
	return &Child{
		parent:                  parent,
		parentTickOffset:        parentTickOffset,
		contextTick:              contextTick,
		contextTickPeriodMicros: contextTickPeriodMicros,
	}
}

// UpdateParentOffset changes the offset applied to the parent's tick for TickNow.
func (c *Child) UpdateParentOffset(offset tick.Offset) { c.parentTickOffset = offset }

// UpdateContextTick changes the locally scoped tick.
func (c *Child) UpdateContextTick(t tick.Tick) { c.contextTick = t }

// TryScheduleEvent delegates to the parent unchanged; nested contexts do
// not currently translate TimeSched into their own tick domain before
// scheduling (matching the reference's "XXX TODO TRANSLATE TO CONTEXT
// TIME IF NEEDED").
func (c *Child) TryScheduleEvent(when tick.TickSched, ev event.Event) (bool, event.Event) {
	return c.parent.TryScheduleEvent(when, ev)
}

// TickNow is the parent's tick offset by parentTickOffset.
func (c *Child) TickNow() tick.Tick { return tick.OffsetTick(c.parent.TickNow(), c.parentTickOffset) }

// TicksPerSecond delegates to the parent.
func (c *Child) TicksPerSecond() uint64 { return c.parent.TicksPerSecond() }

// TickPeriodMicros delegates to the parent.
func (c *Child) TickPeriodMicros() float64 { return c.parent.TickPeriodMicros() }

// ContextTickNow is this scope's own locally tracked tick.
func (c *Child) ContextTickNow() tick.Tick { return c.contextTick }

// ContextTickPeriodMicros is this scope's own locally tracked period.
func (c *Child) ContextTickPeriodMicros() float64 { return c.contextTickPeriodMicros }
