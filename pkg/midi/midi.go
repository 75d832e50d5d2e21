// Package midi provides the MIDI byte encoding and the tick-priority
// output queue the host audio callback drains after each
// executor.ScheduleExecutor.Run call. This is the one byte-exact artefact
// the core produces; everything else is an internal data structure the
// host never inspects directly.
package midi

import (
	"fmt"

	"github.com/nsound/tickseq/pkg/pqueue"
	"github.com/nsound/tickseq/pkg/tick"
)

// Status nibbles, grounded on the standard MIDI 1.0 status byte layout
// and on _examples/justyntemme-vst3go/pkg/midi/events.go's event taxonomy.
const (
	statusNoteOff       byte = 0x80
	statusNoteOn        byte = 0x90
	statusControlChange byte = 0xB0
)

// Message is a single MIDI channel-voice message: up to three bytes whose
// semantics follow the standard (note-on, note-off, CC).
type Message struct {
	Status byte
	Data1  byte
	Data2  byte
}

// NoteOn builds a note-on message on channel ch (0-15) for note number
// num at velocity vel.
func NoteOn(ch, num, vel uint8) Message {
	return Message{Status: statusNoteOn | (ch & 0x0F), Data1: num & 0x7F, Data2: vel & 0x7F}
}

// NoteOff builds a note-off message on channel ch for note number num at
// release velocity vel.
func NoteOff(ch, num, vel uint8) Message {
	return Message{Status: statusNoteOff | (ch & 0x0F), Data1: num & 0x7F, Data2: vel & 0x7F}
}

// ControlChange builds a control-change message on channel ch for
// controller number ctrl set to value val.
func ControlChange(ch, ctrl, val uint8) Message {
	return Message{Status: statusControlChange | (ch & 0x0F), Data1: ctrl & 0x7F, Data2: val & 0x7F}
}

// Bytes returns the raw 3-byte wire encoding.
func (m Message) Bytes() [3]byte { return [3]byte{m.Status, m.Data1, m.Data2} }

// String renders a human-readable form for logging, matching the
// NoteOnEvent/NoteOffEvent/ControlChangeEvent String() convention in
// _examples/justyntemme-vst3go/pkg/midi/events.go.
func (m Message) String() string {
	switch m.Status & 0xF0 {
	case statusNoteOn:
		return fmt.Sprintf("NoteOn{ch:%d, note:%d, vel:%d}", m.Status&0x0F, m.Data1, m.Data2)
	case statusNoteOff:
		return fmt.Sprintf("NoteOff{ch:%d, note:%d, vel:%d}", m.Status&0x0F, m.Data1, m.Data2)
	case statusControlChange:
		return fmt.Sprintf("CC{ch:%d, ctrl:%d, val:%d}", m.Status&0x0F, m.Data1, m.Data2)
	default:
		return fmt.Sprintf("Midi{%02X %02X %02X}", m.Status, m.Data1, m.Data2)
	}
}

// TimedMessage pairs a Message with a tick. As returned by Drain, Tick is
// the sub-block frame offset, not the absolute tick.
type TimedMessage struct {
	Tick    tick.Tick
	Message Message
}

// OutputQueue is the tick-priority queue graph nodes push MIDI messages
// into, and the host audio callback drains once per block: every message
// whose tick is less than executor.tick_next() is mapped to a sub-block
// frame offset max(t, block_start) - block_start.
type OutputQueue struct {
	q *pqueue.BinaryHeapQueue[Message]
}

// NewOutputQueue creates an output queue with room for capacity pending
// messages.
func NewOutputQueue(capacity int) *OutputQueue {
	return &OutputQueue{q: pqueue.NewBinaryHeapQueue[Message](capacity)}
}

// TryPush enqueues msg at t. Returns ok=false (and hands msg back) if the
// queue is at capacity; the real-time caller is expected to simply not
// emit the message.
func (o *OutputQueue) TryPush(t tick.Tick, msg Message) (ok bool, back Message) {
	return o.q.Enqueue(t, msg)
}

// Drain pops every message scheduled strictly before beforeTick (normally
// the executor's new TickNext()), converting each absolute tick into a
// sub-block frame offset relative to blockStartTick.
func (o *OutputQueue) Drain(beforeTick, blockStartTick tick.Tick) []TimedMessage {
	var out []TimedMessage
	for {
		t, msg, ok := o.q.DequeueLessThan(beforeTick)
		if !ok {
			break
		}
		frame := t
		if frame < blockStartTick {
			frame = blockStartTick
		}
		out = append(out, TimedMessage{Tick: frame - blockStartTick, Message: msg})
	}
	return out
}

// Len reports the number of pending messages.
func (o *OutputQueue) Len() int { return o.q.Len() }
