package graph

import (
	"testing"

	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/tick"
)

type fakeCtx struct {
	t tick.Tick
}

func (f *fakeCtx) TickNow() tick.Tick                    { return f.t }
func (f *fakeCtx) TicksPerSecond() uint64                { return 1000 }
func (f *fakeCtx) TickPeriodMicros() float64             { return 1000 }
func (f *fakeCtx) ContextTickNow() tick.Tick             { return f.t }
func (f *fakeCtx) ContextTickPeriodMicros() float64      { return 1000 }
func (f *fakeCtx) TryScheduleEvent(tick.TickSched, event.Event) (bool, event.Event) {
	return true, nil
}

type countingChildren struct {
	count ChildCount
	calls []ChildRange
}

func (c *countingChildren) ChildCount() ChildCount { return c.count }
func (c *countingChildren) ExecRange(_ event.EvalContext, r ChildRange) {
	c.calls = append(c.calls, r)
}

func TestExecOne_None(t *testing.T) {
	c := &countingChildren{count: None()}
	ExecOne(c, &fakeCtx{}, 3)
	if len(c.calls) != 0 {
		t.Fatal("ExecOne on CountNone should not run anything")
	}
}

func TestExecOne_Some_OutOfRange(t *testing.T) {
	c := &countingChildren{count: Some(2)}
	ExecOne(c, &fakeCtx{}, 5)
	if len(c.calls) != 0 {
		t.Fatal("ExecOne past Some(n) should not run anything")
	}
	ExecOne(c, &fakeCtx{}, 1)
	if len(c.calls) != 1 || c.calls[0] != (ChildRange{Start: 1, End: 2}) {
		t.Fatalf("ExecOne(1) on Some(2) should run [1,2), got %+v", c.calls)
	}
}

func TestExecOne_Inf_AlwaysRuns(t *testing.T) {
	c := &countingChildren{count: Inf()}
	ExecOne(c, &fakeCtx{}, 1000)
	if len(c.calls) != 1 || c.calls[0] != (ChildRange{Start: 1000, End: 1001}) {
		t.Fatalf("ExecOne on Inf should always run, got %+v", c.calls)
	}
}

func TestExecAll_Some(t *testing.T) {
	c := &countingChildren{count: Some(4)}
	ExecAll(c, &fakeCtx{})
	if len(c.calls) != 1 || c.calls[0] != (ChildRange{Start: 0, End: 4}) {
		t.Fatalf("ExecAll on Some(4) should run [0,4), got %+v", c.calls)
	}
}

func TestExecAll_Inf(t *testing.T) {
	c := &countingChildren{count: Inf()}
	ExecAll(c, &fakeCtx{})
	if len(c.calls) != 1 || c.calls[0] != (ChildRange{Start: 0, End: 1}) {
		t.Fatalf("ExecAll on Inf should run a single slot [0,1), got %+v", c.calls)
	}
}

func TestChildCount_Fits(t *testing.T) {
	if !Some(3).Fits(Inf()) {
		t.Fatal("Some(3) should fit under Inf")
	}
	if Some(3).Fits(Some(2)) {
		t.Fatal("Some(3) should not fit under Some(2)")
	}
	if !Some(2).Fits(Some(2)) {
		t.Fatal("Some(2) should fit under Some(2)")
	}
	if Inf().Fits(Some(2)) {
		t.Fatal("Inf should never fit under a finite Some(n)")
	}
	if !None().Fits(None()) {
		t.Fatal("None should fit under None")
	}
}
