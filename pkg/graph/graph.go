// Package graph defines the polymorphic graph-node evaluation model: nodes
// that run logic and then dispatch to some number of children, and the
// ChildCount contract that governs how many children a node will accept.
package graph

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/tick"
)

// ChildCountKind tags the variant carried by a ChildCount value.
type ChildCountKind int

const (
	// CountNone means a node accepts no children (a leaf).
	CountNone ChildCountKind = iota
	// CountSome means a node accepts exactly N children.
	CountSome
	// CountInf means a node accepts any number of children.
	CountInf
)

// ChildCount describes how many children a node's children-collection may
// hold, and is used both to validate a children collection when
// NewNodeWrapper pairs it with a node and to drive the default
// child_exec/child_exec_all range logic.
type ChildCount struct {
	Kind ChildCountKind
	N    int
}

// None is the ChildCount for a leaf node.
func None() ChildCount { return ChildCount{Kind: CountNone} }

// Some is the ChildCount for a node with exactly n children.
func Some(n int) ChildCount { return ChildCount{Kind: CountSome, N: n} }

// Inf is the ChildCount for a node that accepts unboundedly many children.
func Inf() ChildCount { return ChildCount{Kind: CountInf} }

// Less defines the partial order over ChildCount used when validating
// whether a candidate count fits within a maximum: None < Some(n) < Some(m)
// for n<m < Inf, and equal kinds compare by N.
func (c ChildCount) Less(other ChildCount) bool {
	rank := func(k ChildCountKind) int { return int(k) }
	if c.Kind != other.Kind {
		return rank(c.Kind) < rank(other.Kind)
	}
	return c.Kind == CountSome && c.N < other.N
}

// Fits reports whether a children-collection of this size is permitted
// under max.
func (c ChildCount) Fits(max ChildCount) bool {
	switch max.Kind {
	case CountNone:
		return c.Kind == CountNone
	case CountInf:
		return true
	default: // CountSome
		if c.Kind == CountInf {
			return false
		}
		n := 0
		if c.Kind == CountSome {
			n = c.N
		}
		return n <= max.N
	}
}

// ChildRange is a half-open [Start, End) index range of children to run.
type ChildRange struct{ Start, End int }

// ChildExec is implemented by a node's children collection: it knows how
// many children it holds and how to run a contiguous range of them.
type ChildExec interface {
	// ChildCount reports how many children are present.
	ChildCount() ChildCount
	// ExecRange runs children[Start:End] under ctx. Implementations clamp
	// the range to what they actually hold.
	ExecRange(ctx event.EvalContext, r ChildRange)
}

// ExecOne runs a single child by index, matching the reference's default
// child_exec: a no-op for CountNone, bounds-checked for CountSome, always
// run for CountInf.
func ExecOne(c ChildExec, ctx event.EvalContext, index int) {
	switch cc := c.ChildCount(); cc.Kind {
	case CountNone:
		return
	case CountSome:
		if cc.N > index {
			c.ExecRange(ctx, ChildRange{Start: index, End: index + 1})
		}
	case CountInf:
		c.ExecRange(ctx, ChildRange{Start: index, End: index + 1})
	}
}

// ExecAll runs every child, matching the reference's default
// child_exec_all: the full [0,N) range for CountSome, and a single
// invocation at index 0 for CountInf (an infinite-children collection
// reports itself through a single logical slot; see graph/children.IndexWrapper).
func ExecAll(c ChildExec, ctx event.EvalContext) {
	switch cc := c.ChildCount(); cc.Kind {
	case CountNone:
		return
	case CountSome:
		c.ExecRange(ctx, ChildRange{Start: 0, End: cc.N})
	case CountInf:
		c.ExecRange(ctx, ChildRange{Start: 0, End: 1})
	}
}

// Any reports whether the collection holds at least one child.
func Any(c ChildExec) bool { return c.ChildCount().Kind != CountNone }

// NodeExec is implemented by any node with children: it runs its own
// logic and is responsible for invoking some subset of children via the
// ChildExec it is given.
type NodeExec interface {
	// Exec runs the node. ChildrenMax reports the largest ChildCount this
	// node will accept (CountInf unless overridden).
	Exec(ctx event.EvalContext, children ChildExec)
	ChildrenMax() ChildCount
}

// LeafExec is implemented by a node with no children.
type LeafExec interface {
	Exec(ctx event.EvalContext)
}

// leafAdapter makes any LeafExec satisfy NodeExec, matching the
// reference's blanket "impl<T: GraphLeafExec> GraphNodeExec for T".
type leafAdapter struct{ leaf LeafExec }

// AsNode adapts a leaf node to the NodeExec interface.
func AsNode(leaf LeafExec) NodeExec { return leafAdapter{leaf: leaf} }

func (l leafAdapter) Exec(ctx event.EvalContext, _ ChildExec) { l.leaf.Exec(ctx) }
func (l leafAdapter) ChildrenMax() ChildCount                 { return None() }

// RootExec is implemented by the logic driving a graph's root: it is
// itself an event, and additionally dispatches to a ChildExec each time
// it runs.
type RootExec interface {
	EventEval(ctx event.EvalContext, children ChildExec) tick.TickResched
}
