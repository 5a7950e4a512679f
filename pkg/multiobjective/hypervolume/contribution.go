package hypervolume

import (
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

// ContributionCalculator computes the exclusive hypervolume of every point,
// HV(F) - HV(F \ {p}), where F is the whole front and only the single occurrence
// p is removed. Dominated points, points outside the reference box and every
// copy of a duplicated point get exactly 0, but dominated points inside the box
// still cover the region their dominators would otherwise expose. The result is
// aligned with the input front.
type ContributionCalculator interface {
	Name() string
	Contributions(front framework.Front, ref framework.ObjectiveSpacePoint) []float64
}

// ContributionsFor returns the contribution strategy for dim objectives.
func ContributionsFor(dim int) ContributionCalculator {
	if dim == 2 {
		return TwoDContributions{}
	}
	return NaiveContributions{}
}

// NaiveContributions recomputes the volume of the front without each point in
// turn. It needs one volume computation per non-dominated point, fine for the
// front sizes met in environmental selection.
type NaiveContributions struct {
	// Calculator overrides the dimension-selected volume strategy.
	Calculator Calculator
}

func (NaiveContributions) Name() string { return "naive" }

func (c NaiveContributions) Contributions(front framework.Front, ref framework.ObjectiveSpacePoint) []float64 {
	result := make([]float64, len(front))
	candidates := contributing(front, ref, true)
	if len(candidates) == 0 {
		return result
	}

	calc := c.Calculator
	if calc == nil {
		calc = CalculatorFor(len(ref))
	}

	inside := insideReference(front, ref)
	total := calc.Volume(subset(front, candidates), ref)
	if len(inside) == 1 {
		result[inside[0]] = total
		return result
	}

	candidate := make([]bool, len(front))
	for _, i := range candidates {
		candidate[i] = true
	}

	points := subset(front, inside)
	without := make(framework.Front, len(points)-1)
	for k, i := range inside {
		if !candidate[i] {
			continue
		}
		copy(without, points[:k])
		copy(without[k:], points[k+1:])
		rest := subset(without, contributing(without, ref, true))
		result[i] = clampZero(total - calc.Volume(rest, ref))
	}
	return result
}

// TwoDContributions reads every contribution off the sorted staircase. The
// region a staircase point exposes when removed is the rectangle bounded by its
// right neighbour (or the reference) along the first objective and by its left
// neighbour (or the reference) along the second, less whatever the points it
// dominates still cover inside that rectangle. Other dimensionalities use
// Fallback, or NaiveContributions when Fallback is nil.
type TwoDContributions struct {
	Fallback ContributionCalculator
}

func (TwoDContributions) Name() string { return "2d-staircase" }

func (c TwoDContributions) Contributions(front framework.Front, ref framework.ObjectiveSpacePoint) []float64 {
	if len(ref) != 2 {
		fallback := c.Fallback
		if fallback == nil {
			fallback = NaiveContributions{}
		}
		return fallback.Contributions(front, ref)
	}

	result := make([]float64, len(front))

	// Staircase members in increasing first objective, hence decreasing second.
	// Any other point is weakly dominated by the last staircase member seen so
	// far, and can only reach into that member's rectangle.
	stairs := make([]int, 0, len(front))
	var covers []framework.Front
	lastY := ref[1]
	for _, i := range sortByFirstObjective(front) {
		p := front[i]
		if p[0] >= ref[0] {
			break
		}
		if p[1] < lastY {
			stairs = append(stairs, i)
			covers = append(covers, nil)
			lastY = p[1]
			continue
		}
		k := len(stairs) - 1
		if k < 0 {
			continue
		}
		top := ref[1]
		if k > 0 {
			top = front[stairs[k-1]][1]
		}
		if p[1] < top {
			covers[k] = append(covers[k], p)
		}
	}

	for k, i := range stairs {
		p := front[i]
		corner := framework.ObjectiveSpacePoint{ref[0], ref[1]}
		if k+1 < len(stairs) {
			corner[0] = front[stairs[k+1]][0]
		}
		if k > 0 {
			corner[1] = front[stairs[k-1]][1]
		}
		area := (corner[0] - p[0]) * (corner[1] - p[1])
		result[i] = clampZero(area - TwoD{}.Volume(covers[k], corner))
	}
	return result
}

func clampZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
