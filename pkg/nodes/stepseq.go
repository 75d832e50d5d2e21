package nodes

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/param"
	"github.com/nsound/tickseq/pkg/tick"
)

// StepSeq is a step sequencer node: every StepTicks context-ticks it
// advances to the next of Steps logical steps, writing the new index
// into Index and either addressing a single child by that index
// (IndexChildren true) or re-running every child unconditionally at that
// step (IndexChildren false, matching a single per-step configurable
// child that reads the index itself).
type StepSeq struct {
	StepTicks     param.Get[tick.Tick]
	Steps         param.Get[int]
	Index         param.Set[int]
	IndexChildren bool
}

// NewStepSeq wires a StepSeq over constant stepTicks/steps values.
func NewStepSeq(stepTicks tick.Tick, steps int, index param.Set[int], indexChildren bool) *StepSeq {
	return &StepSeq{
		StepTicks:     param.Const[tick.Tick]{Value: stepTicks},
		Steps:         param.Const[int]{Value: steps},
		Index:         index,
		IndexChildren: indexChildren,
	}
}

// Exec advances the sequencer: on a step boundary it computes the new
// index, stores it, and runs either the one indexed child or every child.
func (s *StepSeq) Exec(ctx event.EvalContext, children graph.ChildExec) {
	stepTicks := s.StepTicks.Get()
	if stepTicks == 0 || ctx.ContextTickNow()%stepTicks != 0 {
		return
	}
	steps := s.Steps.Get()
	if steps <= 0 {
		return
	}
	index := int((ctx.ContextTickNow() / stepTicks) % tick.Tick(steps))
	s.Index.Set(index)
	if s.IndexChildren {
		graph.ExecOne(children, ctx, index)
	} else {
		graph.ExecAll(children, ctx)
	}
}

// ChildrenMax reports that a StepSeq accepts any number of children: a
// fixed array of Steps distinct children, or a single Inf-reporting
// IndexWrapper child driven by index.
func (s *StepSeq) ChildrenMax() graph.ChildCount { return graph.Inf() }
