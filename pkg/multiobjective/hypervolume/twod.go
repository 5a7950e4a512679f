package hypervolume

import (
	"cmp"
	"slices"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

// TwoD is the O(n log n) sort-and-sweep solver for bi-objective fronts.
type TwoD struct{}

func (TwoD) Name() string { return "2d-sweep" }

func (TwoD) Objectives() int { return 2 }

// Volume sorts the points by the first objective and sweeps from left to right,
// adding the slab each point cuts below the current frontier. Points that do
// not lower the frontier are dominated (or duplicates) and add nothing.
func (TwoD) Volume(front framework.Front, ref framework.ObjectiveSpacePoint) float64 {
	if len(front) == 0 {
		return 0
	}

	sorted := sortByFirstObjective(front)

	volume := 0.0
	lastY := ref[1]
	for _, i := range sorted {
		p := front[i]
		if p[0] >= ref[0] {
			break
		}
		if p[1] < lastY {
			volume += (ref[0] - p[0]) * (lastY - p[1])
			lastY = p[1]
		}
	}
	return volume
}

// sortByFirstObjective returns the indices of the front ordered by the first
// objective, then the second, then the input position.
func sortByFirstObjective(front framework.Front) []int {
	idx := make([]int, len(front))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(front[a][0], front[b][0]); c != 0 {
			return c
		}
		if c := cmp.Compare(front[a][1], front[b][1]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return idx
}
