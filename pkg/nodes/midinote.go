package nodes

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/itempool"
	"github.com/nsound/tickseq/pkg/midi"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/tick"
)

// noteOffEvent is the pooled event a MidiNote schedules first: when it
// fires it pushes a note-off message into Out and asks to be dropped.
type noteOffEvent struct {
	out *midi.OutputQueue
	msg midi.Message
}

func (e *noteOffEvent) Eval(ctx event.EvalContext) tick.TickResched {
	e.out.TryPush(ctx.TickNow(), e.msg)
	return tick.ReschedStop()
}

// noteOnEvent is the event a MidiNote schedules immediately after its
// matching off event is safely reserved: it pushes a note-on message.
type noteOnEvent struct {
	out *midi.OutputQueue
	msg midi.Message
}

func (e *noteOnEvent) Eval(ctx event.EvalContext) tick.TickResched {
	e.out.TryPush(ctx.TickNow(), e.msg)
	return tick.ReschedStop()
}

// MidiNote is a leaf node that emits a timed note: on execution it
// schedules a note-off event Dur ticks later first, then a note-on event
// immediately, so the off is guaranteed to already be reserved before the
// on is allowed to sound. If the off event cannot be obtained from Pool
// (pool exhaustion) or fails to enqueue, the on is suppressed entirely —
// this prevents a stuck note under event-pool pressure.
type MidiNote struct {
	Chan   param.Get[uint8]
	Note   param.Get[uint8]
	Dur    param.Get[tick.Tick]
	OnVel  param.Get[uint8]
	OffVel param.Get[uint8]
	Out    *midi.OutputQueue
	Pool   itempool.Source[event.Event]
}

// NewMidiNote wires a MidiNote over constant channel/note/duration/
// velocity values, pooling its note-off events from pool and emitting
// through out.
func NewMidiNote(ch, note uint8, dur tick.Tick, onVel, offVel uint8, out *midi.OutputQueue, pool itempool.Source[event.Event]) *MidiNote {
	return &MidiNote{
		Chan:   param.Const[uint8]{Value: clampByte(ch, 0, 15)},
		Note:   param.Const[uint8]{Value: clampByte(note, 0, 127)},
		Dur:    param.Const[tick.Tick]{Value: dur},
		OnVel:  param.Const[uint8]{Value: clampByte(onVel, 1, 127)},
		OffVel: param.Const[uint8]{Value: clampByte(offVel, 0, 127)},
		Out:    out,
		Pool:   pool,
	}
}

func clampByte(v, lo, hi uint8) uint8 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Exec schedules the note-off/note-on pair. A slot must be taken from Pool
// before anything is scheduled; the off and on event values themselves are
// allocated here on every call.
func (m *MidiNote) Exec(ctx event.EvalContext) {
	ch, note := m.Chan.Get(), m.Note.Get()
	off := &noteOffEvent{out: m.Out, msg: midi.NoteOff(ch, note, m.OffVel.Get())}

	pooled, ok := m.Pool.TryGet(event.Event(off))
	if !ok {
		return // pool empty: suppress the whole note, no stuck note risk
	}
	if ok, back := ctx.TryScheduleEvent(tick.ContextRelative(tick.Offset(m.Dur.Get())), pooled); !ok {
		_ = back
		return // write queue full: suppress the on, matching "off failed" policy
	}

	on := &noteOnEvent{out: m.Out, msg: midi.NoteOn(ch, note, m.OnVel.Get())}
	ctx.TryScheduleEvent(tick.ContextRelative(0), on)
}
