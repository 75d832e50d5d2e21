// Package nodes holds the musically meaningful built-in graph nodes: the
// root clock, clock-ratio divider, step sequencer, gate/fan-out/bind-store
// combinators, and the MIDI-emitting leaf. It is the package a topology
// builder actually imports to wire up a playable schedule.
package nodes

import (
	"math"

	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/schedcontext"
	"github.com/nsound/tickseq/pkg/tick"
)

// RootClock is the sub-sample-accurate dividing clock that sits at the
// root of a graph tree. It is event-level rather than a GraphNodeExec: it
// implements graph.RootExec and is driven directly by the schedule
// executor via a graph.RootWrapper, rather than being addressed as a node
// in its own right.
type RootClock struct {
	PeriodMicros param.Get[float64]
	Tick         param.Get[tick.Tick]
	TickSet      param.Set[tick.Tick]
	TickSub      param.Get[float64]
	TickSubSet   param.Set[float64]
	Run          param.Get[bool]
}

// NewRootClock wires a RootClock over plain atomic-backed tick/tick_sub
// state, the common case for a topology builder that does not need to
// observe the clock's position through a separate binding.
func NewRootClock(periodMicros param.Get[float64], run param.Get[bool]) *RootClock {
	t := param.NewAtomicUint64(0)
	sub := param.NewAtomicFloat64(0)
	return &RootClock{
		PeriodMicros: periodMicros,
		Tick:         param.GetFunc[tick.Tick](func() tick.Tick { return tick.Tick(t.Get()) }),
		TickSet:      param.SetFunc[tick.Tick](func(v tick.Tick) { t.Set(uint64(v)) }),
		TickSub:      sub,
		TickSubSet:   sub,
		Run:          run,
	}
}

// EventEval runs one clock tick: it evaluates every child in a context
// scoped at the clock's own tick and period, then advances by one tick
// and reschedules itself for the fractional-accumulated delta.
func (c *RootClock) EventEval(ctx event.EvalContext, children graph.ChildExec) tick.TickResched {
	if !c.Run.Get() {
		return tick.ReschedContextRelativeBy(1)
	}

	periodMicros := c.PeriodMicros.Get()
	t := c.Tick.Get()
	childCtx := schedcontext.NewChild(ctx, 0, t, periodMicros)
	graph.ExecAll(children, childCtx)

	ctp := ctx.ContextTickPeriodMicros()
	if periodMicros <= 0 || ctp <= 0 {
		return tick.ReschedContextRelativeBy(1)
	}

	// The accumulation runs in float32, the precision the calibrated
	// reschedule sequences (e.g. 48000/300us: 14,14,15,14,14,15) are
	// defined in; float64 would round the fifth 48000/300us step up to 15.
	next := float64(float32(c.TickSub.Get()) + float32(periodMicros)/float32(ctp))
	c.TickSubSet.Set(next - math.Floor(next))
	c.TickSet.Set(t + 1)

	if next < 1 {
		// Degenerate period/divisor: clamp to the minimum valid reschedule
		// instead of stalling or going negative.
		next = 1
	}
	return tick.ReschedContextRelativeBy(tick.Tick(math.Floor(next)))
}
