package indicators

import (
	"fmt"
	"math"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

const (
	EpsilonName = "EPSILON"
)

// Epsilon is the additive epsilon indicator: the smallest amount every point
// of the front must be shifted by so that each reference front point is
// weakly dominated by some shifted point.
type Epsilon struct {
	reference framework.Front
	dim       int
}

func NewEpsilon(referenceFront framework.Front) (*Epsilon, error) {
	ref, dim, err := validateReferenceFront(referenceFront)
	if err != nil {
		return nil, err
	}
	return &Epsilon{reference: ref, dim: dim}, nil
}

func (e *Epsilon) Name() string { return EpsilonName }

func (e *Epsilon) Description() string { return "Additive epsilon quality indicator" }

func (e *Epsilon) IsTheLowerTheIndicatorValueTheBetter() bool { return true }

// Compute returns +Inf for an empty front, which covers nothing.
func (e *Epsilon) Compute(front framework.Front) (float64, error) {
	if err := framework.ValidateFront(front, e.dim); err != nil {
		return 0, fmt.Errorf("computing %s: %w", EpsilonName, err)
	}

	eps := math.Inf(-1)
	for _, r := range e.reference {
		best := math.Inf(1)
		for _, p := range front {
			worst := math.Inf(-1)
			for i := range r {
				worst = math.Max(worst, p[i]-r[i])
			}
			best = math.Min(best, worst)
		}
		eps = math.Max(eps, best)
	}
	return eps, nil
}

// validateReferenceFront copies a non-empty, rectangular reference front.
func validateReferenceFront(front framework.Front) (framework.Front, int, error) {
	if front == nil {
		return nil, 0, fmt.Errorf("reference front: %w", framework.ErrNullArgument)
	}
	if len(front) == 0 {
		return nil, 0, fmt.Errorf("reference front is empty: %w", framework.ErrInvalidConfiguration)
	}
	if front[0] == nil {
		return nil, 0, fmt.Errorf("reference front point 0: %w", framework.ErrNullArgument)
	}
	dim := len(front[0])
	if err := framework.ValidateFront(front, dim); err != nil {
		return nil, 0, fmt.Errorf("reference front: %w", err)
	}
	return front.Clone(), dim, nil
}
