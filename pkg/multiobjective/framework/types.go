package framework

// Individual represents a solution in the population
type Individual struct {
	Variables  []float64
	Objectives ObjectiveSpacePoint

	// Rank is the index of the non-dominated front the individual belongs to.
	// It is filled in by NonDominatedSort.
	Rank int
	// Contribution is the exclusive hypervolume of the individual inside its
	// front, filled in by environmental selection.
	Contribution float64
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
// All objectives are minimized.
type ObjectiveSpacePoint []float64

// Clone returns a copy of the point that does not share its backing array.
func (p ObjectiveSpacePoint) Clone() ObjectiveSpacePoint {
	if p == nil {
		return nil
	}
	c := make(ObjectiveSpacePoint, len(p))
	copy(c, p)
	return c
}

// Front is an ordered collection of points with the same dimensionality.
type Front []ObjectiveSpacePoint

// Clone deep-copies the front.
func (f Front) Clone() Front {
	if f == nil {
		return nil
	}
	c := make(Front, len(f))
	for i, p := range f {
		c[i] = p.Clone()
	}
	return c
}

// Objectives extracts the objective vectors of a population, in order.
func Objectives(population []Individual) Front {
	front := make(Front, len(population))
	for i := range population {
		front[i] = population[i].Objectives
	}
	return front
}

// FrontProvider describes a benchmark with a known Pareto front.
type FrontProvider interface {
	Name() string
	NumObjectives() int

	// TrueParetoFront samples roughly numPoints points from the true front.
	TrueParetoFront(numPoints int) Front
}

// NewReference returns a point with every one of dim objectives set to value.
func NewReference(dim int, value float64) ObjectiveSpacePoint {
	p := make(ObjectiveSpacePoint, dim)
	for i := range p {
		p[i] = value
	}
	return p
}
