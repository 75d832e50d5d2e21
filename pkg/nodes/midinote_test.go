package nodes

import (
	"testing"

	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/itempool"
	"github.com/nsound/tickseq/pkg/midi"
	"github.com/nsound/tickseq/pkg/tick"
)

// recordingSchedule records the TickSched of every event scheduled through
// it (without running the event), letting a test drive a MidiNote without
// a full executor.
type recordingSchedule struct {
	fixedCtx
	scheduled []tick.TickSched
}

func (r *recordingSchedule) TryScheduleEvent(when tick.TickSched, ev event.Event) (bool, event.Event) {
	r.scheduled = append(r.scheduled, when)
	return true, nil
}

// TestMidiNoteEmitsOnThenOff drives a single MidiNote with a pool that
// always has room, checking the note-off is reserved before the note-on
// is scheduled, per spec §4.6.
func TestMidiNoteEmitsOnThenOff(t *testing.T) {
	out := midi.NewOutputQueue(8)
	_, src := itempool.NewChannelPool[event.Event](1)

	note := NewMidiNote(0, 60, 20, 100, 0, out, src)
	sched := &recordingSchedule{fixedCtx: fixedCtx{t: 0, ticksPerSecond: 44100}}
	note.Exec(sched)

	if len(sched.scheduled) != 2 {
		t.Fatalf("scheduled %d events, want 2 (off then on)", len(sched.scheduled))
	}
	if sched.scheduled[0].Kind != tick.SchedContextRelative || sched.scheduled[0].Delta != 20 {
		t.Fatalf("first scheduled event = %+v, want ContextRelative(20) (the off)", sched.scheduled[0])
	}
	if sched.scheduled[1].Kind != tick.SchedContextRelative || sched.scheduled[1].Delta != 0 {
		t.Fatalf("second scheduled event = %+v, want ContextRelative(0) (the on)", sched.scheduled[1])
	}
}

// TestMidiNotePoolExhaustionSuppressesBoth reproduces scenario S5: with a
// pool of capacity 1 already exhausted, a MidiNote must emit nothing and
// must not schedule a note-on without its matching note-off reserved
// first (no stuck note).
func TestMidiNotePoolExhaustionSuppressesBoth(t *testing.T) {
	out := midi.NewOutputQueue(8)
	_, src := itempool.NewChannelPool[event.Event](1)
	src.TryGet(nil) // drain the only slot so the pool is exhausted

	note := NewMidiNote(0, 60, 20, 100, 0, out, src)
	sched := &recordingSchedule{fixedCtx: fixedCtx{t: 0, ticksPerSecond: 44100}}
	note.Exec(sched)

	if len(sched.scheduled) != 0 {
		t.Fatalf("scheduled %d events on pool exhaustion, want 0 (note suppressed entirely)", len(sched.scheduled))
	}
}

// TestMidiNoteTwoFiresOneExhaustedPool drives two MidiNote nodes sharing a
// capacity-1 pool at the same tick: exactly one note-on/note-off pair
// should reach the output queue, the second node emitting nothing.
func TestMidiNoteTwoFiresOneExhaustedPool(t *testing.T) {
	out := midi.NewOutputQueue(8)
	_, src := itempool.NewChannelPool[event.Event](1)

	first := NewMidiNote(0, 60, 10, 100, 0, out, src)
	second := NewMidiNote(0, 64, 10, 100, 0, out, src)

	ctx := &fixedCtx{t: 0, ticksPerSecond: 44100}
	firstSched := &recordingSchedule{fixedCtx: *ctx}
	first.Exec(firstSched)
	secondSched := &recordingSchedule{fixedCtx: *ctx}
	second.Exec(secondSched)

	if len(firstSched.scheduled) != 2 {
		t.Fatalf("first MidiNote scheduled %d events, want 2", len(firstSched.scheduled))
	}
	if len(secondSched.scheduled) != 0 {
		t.Fatalf("second MidiNote scheduled %d events, want 0 (pool exhausted by the first)", len(secondSched.scheduled))
	}
}
