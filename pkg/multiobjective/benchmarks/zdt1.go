package benchmarks

import (
	"math"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

const (
	ZDT1Name = "ZDT1"
)

var _ framework.FrontProvider = &ZDT1{}

// ZDT1 is a benchmark function used to test the correctness
// of multi-objective algorithms. For more details, check the article below:
// https://datacrayon.com/practical-evolutionary-algorithms/synthetic-objective-functions-and-zdt1/
//
// Its true front f2 = 1 - sqrt(f1), f1 in [0, 1], has a hypervolume of 2/3
// against the reference point (1, 1).
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{
		numVars,
	}
}

func (p *ZDT1) Name() string {
	return ZDT1Name
}

func (p *ZDT1) NumObjectives() int {
	return 2
}

// Evaluate maps a decision vector in [0, 1]^numVars to its objectives.
func (p *ZDT1) Evaluate(x []float64) framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.f1(x), p.f2(x)}
}

// f1 is the first ZDT1 objective
func (p *ZDT1) f1(x []float64) float64 {
	return x[0]
}

// f2 is the second ZDT1 objective
func (p *ZDT1) f2(x []float64) float64 {
	g := 1.0
	if len(x) > 1 {
		for i := 1; i < len(x); i++ {
			g += 9.0 * x[i] / float64(len(x)-1)
		}
	}
	return g * (1.0 - math.Sqrt(x[0]/g))
}

// TrueParetoFront generates numPoints points on the true Pareto front for ZDT1
func (p *ZDT1) TrueParetoFront(numPoints int) framework.Front {
	if numPoints < 2 {
		return framework.Front{{0, 1}}
	}
	points := make(framework.Front, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}
