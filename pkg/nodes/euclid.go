package nodes

import (
	"github.com/nsound/tickseq/pkg/event"
	"github.com/nsound/tickseq/pkg/graph"
	"github.com/nsound/tickseq/pkg/tick"
)

// bjorklundPattern computes a Euclidean rhythm: steps slots with pulses
// hits spread as evenly as possible, via Bjorklund's bucket algorithm.
// Computed once at construction time rather than generated offline.
func bjorklundPattern(pulses, steps int) []bool {
	pattern := make([]bool, steps)
	if steps <= 0 {
		return pattern
	}
	if pulses <= 0 {
		return pattern
	}
	if pulses >= steps {
		for i := range pattern {
			pattern[i] = true
		}
		return pattern
	}

	// Bucket distribution: walking a fractional accumulator of pulses/steps
	// and marking a hit whenever it crosses an integer boundary reproduces
	// Bjorklund's even-distribution property without building the
	// recursive remainder sequence explicitly. Starting the accumulator at
	// steps-pulses puts the first hit on step 0.
	acc := steps - pulses
	for i := 0; i < steps; i++ {
		acc += pulses
		if acc >= steps {
			acc -= steps
			pattern[i] = true
		}
	}
	return pattern
}

func rotatePattern(pattern []bool, rotation int) []bool {
	n := len(pattern)
	if n == 0 {
		return pattern
	}
	rotation = ((rotation % n) + n) % n
	if rotation == 0 {
		return pattern
	}
	out := make([]bool, n)
	for i := range pattern {
		out[(i+rotation)%n] = pattern[i]
	}
	return out
}

// EuclideanGate runs its children only on the "hit" steps of a Euclidean
// rhythm computed from Pulses/Steps/Rotation.
type EuclideanGate struct {
	stepTicks tick.Tick
	pattern   []bool
}

// NewEuclideanGate builds a gate over a step_ticks-wide grid, computing
// its pattern once up front from pulses/steps/rotation.
func NewEuclideanGate(stepTicks tick.Tick, pulses, steps, rotation int) *EuclideanGate {
	return &EuclideanGate{
		stepTicks: stepTicks,
		pattern:   rotatePattern(bjorklundPattern(pulses, steps), rotation),
	}
}

// Exec runs every child iff the context tick lands on a hit step of the
// precomputed pattern.
func (g *EuclideanGate) Exec(ctx event.EvalContext, children graph.ChildExec) {
	if g.stepTicks == 0 || len(g.pattern) == 0 {
		return
	}
	if ctx.ContextTickNow()%g.stepTicks != 0 {
		return
	}
	index := int((ctx.ContextTickNow() / g.stepTicks) % tick.Tick(len(g.pattern)))
	if g.pattern[index] {
		graph.ExecAll(children, ctx)
	}
}

// ChildrenMax reports that a EuclideanGate accepts any number of children.
func (g *EuclideanGate) ChildrenMax() graph.ChildCount { return graph.Inf() }
