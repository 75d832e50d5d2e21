// Package executor implements the per-block schedule driver: the single
// real-time entry point a host audio callback calls once per buffer to
// advance the event schedule by N ticks.
package executor

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/itempool"
	"github.com/nsound/tickseq/pkg/pqueue"
	"github.com/nsound/tickseq/pkg/schedcontext"
	"github.com/nsound/tickseq/pkg/tick"
)

// Queue is the read/write pair the executor consumes events from and
// reschedules events into. Both sides are usually the same
// pqueue.BinaryHeapQueue[event.Event], since a rescheduled event simply
// goes back into the queue it came out of.
type Queue interface {
	pqueue.Enqueue[event.Event]
	pqueue.Dequeue[event.Event]
}

// ScheduleExecutor drives a single event schedule: it owns the tick
// cursor and the queue events are popped from and rescheduled into. It
// never allocates; an overflow event (reschedule that does not fit back
// into the queue) is handed to an optional itempool.Sink for
// real-time-safe disposal.
type ScheduleExecutor struct {
	queue    Queue
	tickNext tick.Tick
	overflow itempool.Sink[event.Event]
}

// New creates an executor starting at tick 0, backed by queue. overflow
// may be nil, in which case a reschedule that cannot be re-enqueued (the
// queue is full) is simply dropped in place — callers on a strict
// real-time budget should instead pass a sink sized generously enough
// that this never happens.
func New(queue Queue, overflow itempool.Sink[event.Event]) *ScheduleExecutor {
	return &ScheduleExecutor{queue: queue, overflow: overflow}
}

// TickNext reports the absolute tick one past the end of the most
// recently completed block: the tick the next Run call will start from.
func (s *ScheduleExecutor) TickNext() tick.Tick { return s.tickNext }

// Enqueue lets topology-building and control threads push an event into
// the schedule before (or between) Run calls.
func (s *ScheduleExecutor) Enqueue(t tick.Tick, ev event.Event) (ok bool, back event.Event) {
	return s.queue.Enqueue(t, ev)
}

// Run advances the schedule by ticks, evaluating every event whose
// scheduled tick falls strictly before tickNext+ticks. This is the only
// method meant to be called from the real-time audio thread; it performs
// no allocation and never blocks.
func (s *ScheduleExecutor) Run(ticks tick.Tick, ticksPerSecond uint64) {
	now := s.tickNext
	end := tick.OffsetTick(now, tick.Offset(ticks))

	ctx := schedcontext.NewRoot(now, ticksPerSecond, s.queue)
	for {
		t, ev, ok := s.queue.DequeueLessThan(end)
		if !ok {
			break
		}
		evalTick := t
		if evalTick < now {
			evalTick = now
		}
		ctx.UpdateTick(evalTick)

		resched := ev.Eval(ctx)
		s.reschedule(ctx, evalTick, resched, ev)
	}
	s.tickNext = end
}

func (s *ScheduleExecutor) reschedule(ctx *schedcontext.Root, _ tick.Tick, r tick.TickResched, ev event.Event) {
	if r.Kind == tick.ReschedNone {
		s.drop(ev)
		return
	}
	delta := tick.Offset(max1(r.Delta))
	var sched tick.TickSched
	if r.Kind == tick.ReschedContextRelative {
		sched = tick.ContextRelative(delta)
	} else {
		sched = tick.Relative(delta)
	}
	if ok, back := ctx.TryScheduleEvent(sched, ev); !ok {
		s.drop(back)
	}
}

// drop hands ev to the overflow sink instead of letting it fall out of
// scope on the real-time thread: ownership of any heap-allocated value
// leaving the hot path is handed to an item sink rather than released in
// place. If no sink was configured, the value is simply released to the
// garbage collector.
func (s *ScheduleExecutor) drop(ev event.Event) {
	if ev == nil || s.overflow == nil {
		return
	}
	if ok, _ := s.overflow.TryPut(ev); !ok {
		// Sink full: dropped in place as a documented last resort. Safe
		// because these values are owned heap allocations the garbage
		// collector can reclaim on its own.
	}
}

// max1 enforces the RootClock-style "next >= 1" contract at the
// executor's reschedule boundary: a reschedule delta of 0 would otherwise
// re-fire an event at its own firing tick forever, so it is clamped to 1.
func max1(d tick.Tick) tick.Tick {
	if d < 1 {
		return 1
	}
	return d
}
