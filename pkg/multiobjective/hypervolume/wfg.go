package hypervolume

import (
	"cmp"
	"slices"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

// WFG is the recursive exclusive-volume solver of While, Bradstreet and Barone
// for fronts with three or more objectives. Fronts with fewer objectives are
// handed to CalculatorFor.
//
// The volume of a set S is the sum over its points p_i of the volume p_i
// dominates exclusively with respect to p_{i+1..n}, which is the inclusive
// volume of p_i minus the volume of the "limited" set obtained by moving every
// later point to the componentwise worse of itself and p_i. The limited set has
// the same dimensionality and at least one point less, so the recursion is at
// most |S| levels deep.
type WFG struct{}

func (WFG) Name() string { return "wfg" }

func (WFG) Volume(front framework.Front, ref framework.ObjectiveSpacePoint) float64 {
	dim := len(ref)
	if dim < 3 {
		return CalculatorFor(dim).Volume(front, ref)
	}
	if len(front) == 0 {
		return 0
	}

	s := newWFGState(len(front), dim, ref)
	top := s.level(0)
	for _, p := range front {
		if inclusiveVolume(p, ref) == 0 {
			continue
		}
		top.push(p)
	}
	return s.volume(0, top.points)
}

// wfgLevel is the scratch space of one recursion depth. points are views into
// coords, so reordering points never moves coordinates.
type wfgLevel struct {
	dim    int
	coords []float64
	points []framework.ObjectiveSpacePoint
}

func (l *wfgLevel) reset() {
	l.points = l.points[:0]
}

// next returns the storage for the point that would be pushed next.
func (l *wfgLevel) next() framework.ObjectiveSpacePoint {
	k := len(l.points)
	return l.coords[k*l.dim : (k+1)*l.dim : (k+1)*l.dim]
}

func (l *wfgLevel) push(p framework.ObjectiveSpacePoint) {
	dst := l.next()
	copy(dst, p)
	l.points = append(l.points, dst)
}

// wfgState owns one scratch level per recursion depth, allocated on first use
// and reused by every sibling call at that depth.
type wfgState struct {
	capacity int
	dim      int
	ref      framework.ObjectiveSpacePoint
	levels   []*wfgLevel
}

func newWFGState(capacity, dim int, ref framework.ObjectiveSpacePoint) *wfgState {
	return &wfgState{
		capacity: capacity,
		dim:      dim,
		ref:      ref,
	}
}

func (s *wfgState) level(depth int) *wfgLevel {
	for len(s.levels) <= depth {
		s.levels = append(s.levels, &wfgLevel{
			dim:    s.dim,
			coords: make([]float64, s.capacity*s.dim),
			points: make([]framework.ObjectiveSpacePoint, 0, s.capacity),
		})
	}
	l := s.levels[depth]
	l.reset()
	return l
}

func (s *wfgState) volume(depth int, points []framework.ObjectiveSpacePoint) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return inclusiveVolume(points[0], s.ref)
	}

	// Worst last objective first: the limited sets of early points then
	// collapse to few non-dominated members.
	last := s.dim - 1
	slices.SortFunc(points, func(a, b framework.ObjectiveSpacePoint) int {
		return cmp.Compare(b[last], a[last])
	})

	total := 0.0
	for i, p := range points {
		incl := inclusiveVolume(p, s.ref)
		if incl == 0 {
			continue
		}
		limited := s.limitSet(depth+1, p, points[i+1:])
		total += incl - s.volume(depth+1, limited)
	}
	return total
}

// limitSet builds {limit(p, q) : q in rest} at the given depth and reduces it
// to its non-dominated members. Dropped points would contribute nothing.
func (s *wfgState) limitSet(depth int, p framework.ObjectiveSpacePoint, rest []framework.ObjectiveSpacePoint) []framework.ObjectiveSpacePoint {
	l := s.level(depth)
	for _, q := range rest {
		dst := l.next()
		limit(dst, p, q)
		if inclusiveVolume(dst, s.ref) == 0 {
			continue
		}
		l.points = append(l.points, dst)
	}
	l.points = nonDominatedInPlace(l.points)
	return l.points
}

// nonDominatedInPlace compacts points to their non-dominated subset, keeping a
// single copy of duplicates. The result aliases the input slice.
func nonDominatedInPlace(points []framework.ObjectiveSpacePoint) []framework.ObjectiveSpacePoint {
	kept := 0
	for i := range points {
		c := points[i]
		covered := false
		for j := 0; j < kept; j++ {
			if weaklyDominates(points[j], c) {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		w := 0
		for j := 0; j < kept; j++ {
			if !framework.Dominates(c, points[j]) {
				points[w] = points[j]
				w++
			}
		}
		points[w] = c
		kept = w + 1
	}
	return points[:kept]
}
