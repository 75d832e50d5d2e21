package graph

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/tick"
)

// Node is a built node: something that can be run in a parent's child
// range via node.Exec(ctx). It is what a children collection stores.
type Node interface {
	NodeExec(ctx event.EvalContext)
}

// NodeWrapper pairs a NodeExec with its children collection, enforcing
// the NodeExec's ChildrenMax contract, matching GraphNodeWrapper.
type NodeWrapper struct {
	exec     NodeExec
	children ChildExec
}

// NewNodeWrapper builds a wrapper around exec and its children. It panics
// if children's count does not fit within exec's declared maximum, since
// that mismatch can only come from a programming error in topology
// construction (which happens off the real-time thread).
func NewNodeWrapper(exec NodeExec, children ChildExec) *NodeWrapper {
	if !children.ChildCount().Fits(exec.ChildrenMax()) {
		panic("graph: children count exceeds node's declared maximum")
	}
	return &NodeWrapper{exec: exec, children: children}
}

// NodeExec runs the wrapped node against its own children.
func (w *NodeWrapper) NodeExec(ctx event.EvalContext) {
	w.exec.Exec(ctx, w.children)
}

// RootWrapper pairs a RootExec with its children collection and presents
// the whole as an event.Event, so the schedule executor can drive a graph
// root exactly like any other event. Matches GraphRootWrapper.
type RootWrapper struct {
	exec     RootExec
	children ChildExec
}

// NewRootWrapper builds a graph root event around exec and its children.
func NewRootWrapper(exec RootExec, children ChildExec) *RootWrapper {
	return &RootWrapper{exec: exec, children: children}
}

// Eval implements event.Event by delegating to the wrapped RootExec.
func (w *RootWrapper) Eval(ctx event.EvalContext) tick.TickResched {
	return w.exec.EventEval(ctx, w.children)
}
