package pclasso

import (
	"github.com/seqsense/pcgol/mat"
)

// LassoArity is the number of points of a lasso polygon.
const LassoArity = 4

type AccumulatorState int

const (
	Collecting AccumulatorState = iota
	Complete
)

func (s AccumulatorState) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// Edge is a segment of the lasso polygon.
type Edge [2]mat.Vec3

// Accumulator collects lasso points until the polygon closes.
type Accumulator struct {
	points []mat.Vec3
}

func NewAccumulator() *Accumulator {
	return &Accumulator{points: make([]mat.Vec3, 0, LassoArity)}
}

// Add appends a point and returns the edges created by it.
// The closing edge is returned together with the last edge when the
// polygon completes. Points added to a complete polygon are ignored.
func (a *Accumulator) Add(p mat.Vec3) (AccumulatorState, []Edge) {
	n := len(a.points)
	if n >= LassoArity {
		return Complete, nil
	}
	a.points = append(a.points, p)
	if n == 0 {
		return Collecting, nil
	}
	edges := []Edge{{a.points[n-1], p}}
	if n+1 < LassoArity {
		return Collecting, edges
	}
	return Complete, append(edges, Edge{p, a.points[0]})
}

func (a *Accumulator) State() AccumulatorState {
	if len(a.points) >= LassoArity {
		return Complete
	}
	return Collecting
}

func (a *Accumulator) Len() int {
	return len(a.points)
}

// Last returns the most recently added point.
func (a *Accumulator) Last() (mat.Vec3, bool) {
	if len(a.points) == 0 {
		return mat.Vec3{}, false
	}
	return a.points[len(a.points)-1], true
}

// Points returns a copy of the collected points.
func (a *Accumulator) Points() []mat.Vec3 {
	return append([]mat.Vec3{}, a.points...)
}

func (a *Accumulator) Reset() {
	a.points = a.points[:0]
}
