package nodes

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/schedcontext"
	"github.com/nsound/tickseq/pkg/tick"
)

// Gate runs its children only while Binding reads true.
type Gate struct {
	Binding param.Get[bool]
}

// NewGate wires a Gate over binding.
func NewGate(binding param.Get[bool]) *Gate { return &Gate{Binding: binding} }

// Exec runs every child iff Binding.Get() is true.
func (g *Gate) Exec(ctx event.EvalContext, children graph.ChildExec) {
	if g.Binding.Get() {
		graph.ExecAll(children, ctx)
	}
}

// ChildrenMax reports that a Gate accepts any number of children.
func (g *Gate) ChildrenMax() graph.ChildCount { return graph.Inf() }

// FanOut runs every child unconditionally, every time it is called.
type FanOut struct{}

// NewFanOut builds a FanOut node.
func NewFanOut() *FanOut { return &FanOut{} }

// Exec runs every child.
func (FanOut) Exec(ctx event.EvalContext, children graph.ChildExec) { graph.ExecAll(children, ctx) }

// ChildrenMax reports that a FanOut accepts any number of children.
func (FanOut) ChildrenMax() graph.ChildCount { return graph.Inf() }

// BindStore copies a value from Get into Set, then runs its children.
type BindStore[T any] struct {
	Get param.Get[T]
	Set param.Set[T]
}

// NewBindStore wires a BindStore copying get into set on every run.
func NewBindStore[T any](get param.Get[T], set param.Set[T]) *BindStore[T] {
	return &BindStore[T]{Get: get, Set: set}
}

// Exec copies Get() into Set, then runs every child.
func (b *BindStore[T]) Exec(ctx event.EvalContext, children graph.ChildExec) {
	b.Set.Set(b.Get.Get())
	graph.ExecAll(children, ctx)
}

// ChildrenMax reports that a BindStore accepts any number of children.
func (b *BindStore[T]) ChildrenMax() graph.ChildCount { return graph.Inf() }

// Repeat re-triggers its children Repeats times, writing the iteration
// index into Index before each run.
type Repeat struct {
	Repeats param.Get[int]
	Index   param.Set[int]
}

// NewRepeat wires a Repeat over a constant repeat count.
func NewRepeat(repeats int, index param.Set[int]) *Repeat {
	return &Repeat{Repeats: param.Const[int]{Value: repeats}, Index: index}
}

// Exec runs every child Repeats times, writing i into Index each time.
func (r *Repeat) Exec(ctx event.EvalContext, children graph.ChildExec) {
	n := r.Repeats.Get()
	for i := 0; i < n; i++ {
		r.Index.Set(i)
		graph.ExecAll(children, ctx)
	}
}

// ChildrenMax reports that a Repeat accepts any number of children.
func (r *Repeat) ChildrenMax() graph.ChildCount { return graph.Inf() }

// TickOffset shifts the context-tick its children observe by a bound
// signed offset, without changing the parent tick offset.
type TickOffset struct {
	Offset param.Get[tick.Offset]
}

// NewTickOffset wires a TickOffset over a constant offset.
func NewTickOffset(offset tick.Offset) *TickOffset {
	return &TickOffset{Offset: param.Const[tick.Offset]{Value: offset}}
}

// Exec runs every child in a context whose ContextTickNow is shifted by
// Offset.Get(), with zero parent-tick offset.
func (t *TickOffset) Exec(ctx event.EvalContext, children graph.ChildExec) {
	shifted := tick.OffsetTick(ctx.ContextTickNow(), t.Offset.Get())
	childCtx := schedcontext.NewChild(ctx, 0, shifted, ctx.ContextTickPeriodMicros())
	graph.ExecAll(children, childCtx)
}

// ChildrenMax reports that a TickOffset accepts any number of children.
func (t *TickOffset) ChildrenMax() graph.ChildCount { return graph.Inf() }

// TickStore writes the enclosing context's tick into Binding, then runs
// its children.
type TickStore struct {
	Binding param.Set[tick.Tick]
}

// NewTickStore wires a TickStore over binding.
func NewTickStore(binding param.Set[tick.Tick]) *TickStore { return &TickStore{Binding: binding} }

// Exec stores ContextTickNow() into Binding, then runs every child.
func (t *TickStore) Exec(ctx event.EvalContext, children graph.ChildExec) {
	t.Binding.Set(ctx.ContextTickNow())
	graph.ExecAll(children, ctx)
}

// ChildrenMax reports that a TickStore accepts any number of children.
func (t *TickStore) ChildrenMax() graph.ChildCount { return graph.Inf() }
