// Command tickseqdemo wires a tiny playable topology — a RootClock
// driving a four-step sequencer of MidiNote leaves — and drives it the
// way a host audio callback would: fixed-size blocks, draining the MIDI
// output queue after each one. It is a thin, non-authoritative example of
// the wiring a real host does; none of the scheduling logic lives here.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nsound/tickseq/pkg/clock"
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/executor"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/graph/children"
	"github.com/nsound/tickseq/pkg/itempool"
	"github.com/nsound/tickseq/pkg/logger"
	"github.com/nsound/tickseq/pkg/midi"
	"github.com/nsound/tickseq/pkg/nodes"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/pqueue"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	sampleRate := flag.Uint64("sample-rate", 44100, "ticks (samples) per second")
	blockSize := flag.Uint64("block-size", 512, "ticks per host callback")
	blocks := flag.Int("blocks", 20, "number of host blocks to simulate")
	bpm := flag.Float64("bpm", 120, "tempo in beats per minute")
	ppq := flag.Int("ppq", 4, "pulses per quarter note driving the step sequencer")
	noteDur := flag.Uint64("note-ticks", 2000, "note-on to note-off duration, in ticks")
	flag.Parse()

	if err := logger.InitLogger(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	tempo := clock.New(*bpm, *ppq)
	log.Info("tempo configured", "bpm", tempo.BPM(), "ppq", tempo.PPQ(), "period_micros", tempo.PeriodMicros())

	out := midi.NewOutputQueue(256)

	// The note-off event pool is the only thing this topology allocates
	// from on the real-time path; a helper goroutine keeps it topped up so
	// the simulated host loop below never has to.
	notePoolCreator, notePool := itempool.NewChannelPool[event.Event](8)
	helpers, helperCtx := itempool.NewHelperGroup(context.Background())
	helpers.RunPeriodic(helperCtx, 5*time.Millisecond, notePoolCreator.Fill)
	defer helpers.Stop()

	steps := make([]graph.Node, 4)
	notes := [4]uint8{60, 64, 67, 72}
	for i, n := range notes {
		leaf := nodes.NewMidiNote(0, n, *noteDur, 100, 0, out, notePool)
		steps[i] = graph.NewNodeWrapper(graph.AsNode(leaf), children.Empty{})
	}

	indexBinding := param.NewAtomicInt32(-1)
	seq := nodes.NewStepSeq(1, len(steps), param.SetFunc[int](func(v int) { indexBinding.Set(int32(v)) }), true)
	seqWrapped := graph.NewNodeWrapper(seq, children.NewFixed(steps))

	periodBinding := param.GetFunc[float64](func() float64 { return tempo.PeriodMicros() })
	run := param.NewAtomicBool(true)
	rootClock := nodes.NewRootClock(periodBinding, run)
	root := graph.NewRootWrapper(rootClock, children.NewFixed([]graph.Node{seqWrapped}))

	queue := pqueue.NewDefaultBinaryHeapQueue[event.Event]()
	ex := executor.New(queue, nil)
	if ok, _ := ex.Enqueue(0, root); !ok {
		log.Error("failed to enqueue root event: queue capacity misconfigured")
		os.Exit(1)
	}

	for b := 0; b < *blocks; b++ {
		blockStart := ex.TickNext()
		ex.Run(*blockSize, *sampleRate)

		for _, msg := range out.Drain(ex.TickNext(), blockStart) {
			log.Info("midi", "block", b, "frame", msg.Tick, "event", msg.Message.String())
		}
	}
}
