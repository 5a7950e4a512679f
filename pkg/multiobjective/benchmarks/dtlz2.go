package benchmarks

import (
	"math"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

const (
	DTLZ2Name = "DTLZ2"
)

var _ framework.FrontProvider = &DTLZ2{}

// DTLZ2 is the scalable benchmark whose true front is the positive orthant of
// the unit sphere. Only the 3-objective front is sampled here.
type DTLZ2 struct{}

func NewDTLZ2() *DTLZ2 {
	return &DTLZ2{}
}

func (p *DTLZ2) Name() string {
	return DTLZ2Name
}

func (p *DTLZ2) NumObjectives() int {
	return 3
}

// TrueParetoFront samples a grid of side k = floor(sqrt(numPoints)) in the two
// angles of the sphere, so it returns k*k points.
func (p *DTLZ2) TrueParetoFront(numPoints int) framework.Front {
	k := int(math.Sqrt(float64(numPoints)))
	if k < 2 {
		return framework.Front{{1, 0, 0}}
	}
	points := make(framework.Front, 0, k*k)
	for i := 0; i < k; i++ {
		theta := math.Pi / 2 * float64(i) / float64(k-1)
		for j := 0; j < k; j++ {
			phi := math.Pi / 2 * float64(j) / float64(k-1)
			points = append(points, framework.ObjectiveSpacePoint{
				math.Cos(theta) * math.Cos(phi),
				math.Cos(theta) * math.Sin(phi),
				math.Sin(theta),
			})
		}
	}
	return points
}
