// Package selection reduces populations and archives by evicting the points
// that contribute the least hypervolume.
package selection

import (
	"fmt"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/hypervolume"
)

// DefaultOffset is added to the worst objective values of a population when
// no reference point is given.
const DefaultOffset = 1.0

// Reduce keeps size individuals of the population. Whole non-dominated fronts
// are kept in rank order while they fit; the first front that does not fit is
// truncated by repeatedly dropping the individual with the smallest exclusive
// hypervolume, recomputed after each removal. A nil ref is replaced by the
// worst objective values of the population plus DefaultOffset, so extreme
// points keep a positive contribution.
//
// Ranks and contributions are written to the returned individuals only; the
// population itself is not modified.
func Reduce(population []framework.Individual, size int, ref framework.ObjectiveSpacePoint) ([]framework.Individual, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative population size %d: %w", size, framework.ErrInvalidConfiguration)
	}
	if len(population) <= size {
		return population, nil
	}

	if ref == nil {
		var err error
		ref, err = hypervolume.ReferencePointFromFront(framework.Objectives(population), DefaultOffset)
		if err != nil {
			return nil, err
		}
	}
	hv, err := hypervolume.New(hypervolume.WithReferencePoint(ref))
	if err != nil {
		return nil, err
	}

	// Non-dominated sorting, on a copy so the caller's ranks stay untouched
	fronts := framework.NonDominatedSort(append([]framework.Individual(nil), population...))

	selected := make([]framework.Individual, 0, size)
	frontIndex := 0

	// Add fronts to new population
	for frontIndex < len(fronts) && len(selected)+len(fronts[frontIndex]) <= size {
		selected = append(selected, fronts[frontIndex]...)
		frontIndex++
	}

	// If needed, add remaining individuals based on hypervolume contribution
	if len(selected) < size && frontIndex < len(fronts) {
		last, err := truncate(hv, fronts[frontIndex], size-len(selected))
		if err != nil {
			return nil, err
		}
		selected = append(selected, last...)
	}

	return selected, nil
}

// truncate removes the least contributor of front until keep remain and
// records the final contributions on the survivors.
func truncate(hv *hypervolume.Hypervolume, front []framework.Individual, keep int) ([]framework.Individual, error) {
	front = append([]framework.Individual(nil), front...)
	for {
		contributions, err := hv.ComputeHypervolumeContribution(framework.Objectives(front))
		if err != nil {
			return nil, err
		}
		for i := range front {
			front[i].Contribution = contributions[i]
		}
		if len(front) <= keep {
			return front, nil
		}
		worst := leastContributor(contributions)
		front = append(front[:worst], front[worst+1:]...)
	}
}

// leastContributor returns the index of the smallest contribution, the first
// one on ties.
func leastContributor(contributions []float64) int {
	worst := 0
	for i, c := range contributions {
		if c < contributions[worst] {
			worst = i
		}
	}
	return worst
}
