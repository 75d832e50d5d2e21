// Package event defines the polymorphic event type evaluated by the
// schedule executor, and the context interface an event uses to read the
// clock and schedule follow-up events.
package event

import "github.com/nsound/tickseq/pkg/tick"

// Schedule is implemented by anything an event can use to enqueue a
// follow-up event at a tick.
type Schedule interface {
	// TryScheduleEvent attempts to enqueue ev at the resolved tick
	// described by when. ok is false if the backing queue was full; the
	// event is handed back unchanged so the caller can retry, drop it, or
	// route it to an overflow sink.
	TryScheduleEvent(when tick.TickSched, ev Event) (ok bool, back Event)
}

// EvalContext is the context handed to an event's Eval method: it exposes
// both the read side (tick.Context) and the write side (Schedule).
type EvalContext interface {
	tick.Context
	Schedule
}

// Event is implemented by anything that can run on the real-time thread
// and request its own rescheduling.
type Event interface {
	// Eval runs the event and returns how it should be rescheduled.
	Eval(ctx EvalContext) tick.TickResched
}

// Func adapts a plain function to Event, convenient for tests and small
// one-off events.
type Func func(ctx EvalContext) tick.TickResched

// Eval calls the wrapped function.
func (f Func) Eval(ctx EvalContext) tick.TickResched { return f(ctx) }
