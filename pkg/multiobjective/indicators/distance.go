package indicators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

const (
	GDName  = "GD"
	IGDName = "IGD"
)

// GenerationalDistance is the mean Euclidean distance from every point of the
// front to its closest reference front point.
type GenerationalDistance struct {
	reference framework.Front
	dim       int
}

func NewGenerationalDistance(referenceFront framework.Front) (*GenerationalDistance, error) {
	ref, dim, err := validateReferenceFront(referenceFront)
	if err != nil {
		return nil, err
	}
	return &GenerationalDistance{reference: ref, dim: dim}, nil
}

func (g *GenerationalDistance) Name() string { return GDName }

func (g *GenerationalDistance) Description() string { return "Generational distance quality indicator" }

func (g *GenerationalDistance) IsTheLowerTheIndicatorValueTheBetter() bool { return true }

func (g *GenerationalDistance) Compute(front framework.Front) (float64, error) {
	if err := framework.ValidateFront(front, g.dim); err != nil {
		return 0, fmt.Errorf("computing %s: %w", GDName, err)
	}
	return meanDistance(front, g.reference), nil
}

// InvertedGenerationalDistance is the mean Euclidean distance from every
// reference front point to its closest point of the front.
type InvertedGenerationalDistance struct {
	reference framework.Front
	dim       int
}

func NewInvertedGenerationalDistance(referenceFront framework.Front) (*InvertedGenerationalDistance, error) {
	ref, dim, err := validateReferenceFront(referenceFront)
	if err != nil {
		return nil, err
	}
	return &InvertedGenerationalDistance{reference: ref, dim: dim}, nil
}

func (g *InvertedGenerationalDistance) Name() string { return IGDName }

func (g *InvertedGenerationalDistance) Description() string {
	return "Inverted generational distance quality indicator"
}

func (g *InvertedGenerationalDistance) IsTheLowerTheIndicatorValueTheBetter() bool { return true }

// Compute returns +Inf for an empty front.
func (g *InvertedGenerationalDistance) Compute(front framework.Front) (float64, error) {
	if err := framework.ValidateFront(front, g.dim); err != nil {
		return 0, fmt.Errorf("computing %s: %w", IGDName, err)
	}
	return meanDistance(g.reference, front), nil
}

// meanDistance averages, over from, the distance to the nearest point of to.
// It is 0 when from is empty and +Inf when only to is.
func meanDistance(from, to framework.Front) float64 {
	if len(from) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range from {
		nearest := math.Inf(1)
		for _, q := range to {
			nearest = math.Min(nearest, floats.Distance(p, q, 2))
		}
		sum += nearest
	}
	return sum / float64(len(from))
}
