package nodes

import (
	"reflect"
	"testing"

	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/tick"
)

func TestBjorklundPattern(t *testing.T) {
	cases := []struct {
		pulses, steps int
		want          []bool
	}{
		{3, 8, []bool{true, false, false, true, false, false, true, false}},
		{4, 4, []bool{true, true, true, true}},
		{0, 4, []bool{false, false, false, false}},
	}
	for _, c := range cases {
		got := bjorklundPattern(c.pulses, c.steps)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("bjorklundPattern(%d,%d) = %v, want %v", c.pulses, c.steps, got, c.want)
		}
		hits := 0
		for _, b := range got {
			if b {
				hits++
			}
		}
		if c.pulses <= c.steps && hits != c.pulses {
			t.Errorf("bjorklundPattern(%d,%d) produced %d hits, want %d", c.pulses, c.steps, hits, c.pulses)
		}
	}
}

func TestRotatePattern(t *testing.T) {
	p := []bool{true, false, false, true}
	got := rotatePattern(p, 1)
	want := []bool{true, true, false, false}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rotatePattern = %v, want %v", got, want)
	}
	if got := rotatePattern(p, -1); !reflect.DeepEqual(got, []bool{false, false, true, true}) {
		t.Fatalf("rotatePattern(-1) = %v, want [false false true true]", got)
	}
}

func TestEuclideanGateRunsOnlyHitSteps(t *testing.T) {
	g := NewEuclideanGate(1, 3, 8, 0)
	var fired []tick.Tick
	leaf := &execFunc{fn: func(ctx event.EvalContext) { fired = append(fired, ctx.ContextTickNow()) }}
	kids := fixedChildren{nodes: []graph.Node{fixedNode{graph.AsNode(leaf)}}}

	for i := tick.Tick(0); i < 8; i++ {
		g.Exec(&fixedCtx{t: i, ticksPerSecond: 44100}, kids)
	}

	want := []tick.Tick{0, 3, 6}
	if !reflect.DeepEqual(fired, want) {
		t.Fatalf("fired = %v, want %v", fired, want)
	}
}

func TestEuclideanGateEmptyPatternNeverFires(t *testing.T) {
	g := NewEuclideanGate(1, 0, 0, 0)
	kids := &countOnly{}
	for i := tick.Tick(0); i < 4; i++ {
		g.Exec(&fixedCtx{t: i, ticksPerSecond: 44100}, kids)
	}
	if kids.n != 0 {
		t.Fatalf("EuclideanGate with empty pattern ran children %d times, want 0", kids.n)
	}
}
