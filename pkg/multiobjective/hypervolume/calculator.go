package hypervolume

import (
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

// Calculator computes the exact hypervolume of a front. Implementations may
// assume the front was validated against ref: no nil points and every point
// has len(ref) objectives. Points outside the reference box are tolerated and
// contribute nothing. Calculators never modify the front.
type Calculator interface {
	Name() string
	Volume(front framework.Front, ref framework.ObjectiveSpacePoint) float64
}

// CalculatorFor returns the strategy used for fronts with dim objectives.
func CalculatorFor(dim int) Calculator {
	switch dim {
	case 1:
		return OneD{}
	case 2:
		return TwoD{}
	default:
		return WFG{}
	}
}

// fixedDimension is implemented by strategies that only handle one
// dimensionality.
type fixedDimension interface {
	Objectives() int
}

// fits reports whether c can measure fronts with dim objectives.
func fits(c Calculator, dim int) bool {
	fixed, ok := c.(fixedDimension)
	return !ok || fixed.Objectives() == dim
}

// OneD handles single objective fronts, where the hypervolume is the distance
// from the best value to the reference.
type OneD struct{}

func (OneD) Name() string { return "1d" }

func (OneD) Objectives() int { return 1 }

func (OneD) Volume(front framework.Front, ref framework.ObjectiveSpacePoint) float64 {
	best := ref[0]
	for _, p := range front {
		if p[0] < best {
			best = p[0]
		}
	}
	return ref[0] - best
}
