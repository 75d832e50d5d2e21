// Package children holds the graph child-collection variants: fixed
// arrays and growable slices (each optionally writing the running index
// into a binding), a single-child "infinite" wrapper, and the empty
// collection for leaves.
package children

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/param"
)

// Empty is the children collection for a leaf: it reports CountNone and
// runs nothing. Matches children::empty::Children.
type Empty struct{}

// ChildCount always reports None.
func (Empty) ChildCount() graph.ChildCount { return graph.None() }

// ExecRange is a no-op.
func (Empty) ExecRange(event.EvalContext, graph.ChildRange) {}

// Fixed is a fixed-size array of children, optionally writing the running
// index into a binding before each child runs. Matches children::boxed::Children.
type Fixed struct {
	nodes        []graph.Node
	indexBinding param.Set[int]
}

// NewFixed builds a Fixed collection with no index binding.
func NewFixed(nodes []graph.Node) *Fixed {
	return &Fixed{nodes: nodes, indexBinding: param.NoopSet[int]{}}
}

// NewFixedWithIndex builds a Fixed collection that writes each child's
// index into indexBinding immediately before running it.
func NewFixedWithIndex(nodes []graph.Node, indexBinding param.Set[int]) *Fixed {
	return &Fixed{nodes: nodes, indexBinding: indexBinding}
}

// ChildCount reports the fixed size.
func (f *Fixed) ChildCount() graph.ChildCount { return graph.Some(len(f.nodes)) }

// ExecRange runs nodes[r.Start:r.End], clamped to the collection's bounds.
func (f *Fixed) ExecRange(ctx event.EvalContext, r graph.ChildRange) {
	start, end := clampRange(r, len(f.nodes))
	for i := start; i < end; i++ {
		f.indexBinding.Set(i)
		f.nodes[i].NodeExec(ctx)
	}
}

// Slice is a growable-slice-backed children collection, for topologies
// assembled incrementally by a builder thread before scheduling starts.
type Slice struct {
	nodes        []graph.Node
	indexBinding param.Set[int]
}

// NewSlice builds a Slice collection with no index binding.
func NewSlice(nodes []graph.Node) *Slice {
	return &Slice{nodes: nodes, indexBinding: param.NoopSet[int]{}}
}

// NewSliceWithIndex builds a Slice collection with an index binding.
func NewSliceWithIndex(nodes []graph.Node, indexBinding param.Set[int]) *Slice {
	return &Slice{nodes: nodes, indexBinding: indexBinding}
}

// Append adds a child to the end of the collection. It is only safe to
// call before the schedule starts running (builder-thread only).
func (s *Slice) Append(n graph.Node) { s.nodes = append(s.nodes, n) }

// ChildCount reports the current size.
func (s *Slice) ChildCount() graph.ChildCount { return graph.Some(len(s.nodes)) }

// ExecRange runs nodes[r.Start:r.End], clamped to the collection's bounds.
func (s *Slice) ExecRange(ctx event.EvalContext, r graph.ChildRange) {
	start, end := clampRange(r, len(s.nodes))
	for i := start; i < end; i++ {
		s.indexBinding.Set(i)
		s.nodes[i].NodeExec(ctx)
	}
}

// IndexWrapper wraps a single child and reports CountInf: each call to
// ExecRange runs that one child once per index in the range, writing the
// index into a binding first. Matches children::nchild::ChildWrapper.
type IndexWrapper struct {
	child        graph.Node
	indexBinding param.Set[int]
}

// NewIndexWrapper wraps child with no index binding.
func NewIndexWrapper(child graph.Node) *IndexWrapper {
	return &IndexWrapper{child: child, indexBinding: param.NoopSet[int]{}}
}

// NewIndexWrapperWithIndex wraps child, writing each invocation's index
// into indexBinding first.
func NewIndexWrapperWithIndex(child graph.Node, indexBinding param.Set[int]) *IndexWrapper {
	return &IndexWrapper{child: child, indexBinding: indexBinding}
}

// ChildCount always reports Inf.
func (w *IndexWrapper) ChildCount() graph.ChildCount { return graph.Inf() }

// ExecRange runs the single wrapped child once for every index in r.
func (w *IndexWrapper) ExecRange(ctx event.EvalContext, r graph.ChildRange) {
	for i := r.Start; i < r.End; i++ {
		w.indexBinding.Set(i)
		w.child.NodeExec(ctx)
	}
}

func clampRange(r graph.ChildRange, n int) (start, end int) {
	start = r.Start
	end = r.End
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	return start, end
}
