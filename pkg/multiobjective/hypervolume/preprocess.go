package hypervolume

import "github.com/moo-lab/hypervolume/pkg/multiobjective/framework"

// contributing returns the indices of the points that can add volume: strictly
// inside the reference box and, when nonDominatedOnly is set, not dominated by
// or identical to an earlier point. Dropping the others never changes the
// hypervolume.
func contributing(front framework.Front, ref framework.ObjectiveSpacePoint, nonDominatedOnly bool) []int {
	inside := insideReference(front, ref)
	if !nonDominatedOnly || len(inside) < 2 {
		return inside
	}

	candidates := make(framework.Front, len(inside))
	for k, i := range inside {
		candidates[k] = front[i]
	}
	kept := framework.NonDominated(candidates)
	idx := make([]int, len(kept))
	for k, c := range kept {
		idx[k] = inside[c]
	}
	return idx
}

func subset(front framework.Front, idx []int) framework.Front {
	s := make(framework.Front, len(idx))
	for k, i := range idx {
		s[k] = front[i]
	}
	return s
}
