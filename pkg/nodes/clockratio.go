package nodes

import (
	"math"

	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/schedcontext"
	"github.com/nsound/tickseq/pkg/tick"
)

// ClockRatio is an intermediate graph node that produces Mul sub-beats
// uniformly spread across every Div parent context-ticks, each in its own
// child context.
type ClockRatio struct {
	Mul param.Get[int]
	Div param.Get[int]
}

// NewClockRatio wires a ClockRatio over constant mul/div values.
func NewClockRatio(mul, div int) *ClockRatio {
	return &ClockRatio{Mul: param.Const[int]{Value: mul}, Div: param.Const[int]{Value: div}}
}

// Exec runs children.Mul times whenever the enclosing context's tick
// lands on a Div boundary, each time with a child context whose
// context-tick and parent tick offset are spread evenly across the
// interval.
func (c *ClockRatio) Exec(ctx event.EvalContext, children graph.ChildExec) {
	div := c.Div.Get()
	if div <= 0 || ctx.ContextTickNow()%tick.Tick(div) != 0 {
		return
	}
	mul := c.Mul.Get()
	if mul <= 0 {
		return
	}

	parentPeriod := ctx.TickPeriodMicros()
	newPeriod := ctx.ContextTickPeriodMicros() * float64(div) / float64(mul)
	coffset := (tick.Tick(mul) * ctx.ContextTickNow()) / tick.Tick(div)

	childCtx := schedcontext.NewChild(ctx, 0, coffset, newPeriod)
	for i := 0; i < mul; i++ {
		var offset tick.Offset
		if parentPeriod > 0 {
			offset = tick.Offset(math.Round(float64(i) * newPeriod / parentPeriod))
		}
		childCtx.UpdateParentOffset(offset)
		childCtx.UpdateContextTick(coffset + tick.Tick(i))
		graph.ExecAll(children, childCtx)
	}
}

// ChildrenMax reports that a ClockRatio accepts any number of children
// (they all run once per sub-beat).
func (c *ClockRatio) ChildrenMax() graph.ChildCount { return graph.Inf() }
