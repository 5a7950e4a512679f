// Package hypervolume computes the exact hypervolume indicator of a front of
// minimized objective vectors and the exclusive contribution of every point.
//
// Bi-objective fronts use an O(n log n) sweep, fronts with more objectives the
// WFG recursion. Contributions are read off the sorted staircase in two
// dimensions and recomputed front-minus-one-point otherwise.
package hypervolume

import (
	"fmt"

	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
	"k8s.io/klog/v2"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

const (
	Name        = "HV"
	Description = "Hypervolume quality indicator"
)

// Hypervolume is the indicator facade. It is immutable once built and safe for
// concurrent use.
type Hypervolume struct {
	reference     framework.ObjectiveSpacePoint
	calculator    Calculator
	contributions ContributionCalculator
	logger        logr.Logger
}

// New builds a Hypervolume from exactly one of WithReferencePoint,
// WithReferenceFront or WithReferenceFrontFile.
func New(opts ...Option) (*Hypervolume, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	logger := klog.Background()
	if o.logger != nil {
		logger = *o.logger
	}

	if o.sources != 1 {
		return nil, fmt.Errorf("want exactly one reference point source, got %d: %w", o.sources, framework.ErrInvalidConfiguration)
	}

	var ref framework.ObjectiveSpacePoint
	switch o.source {
	case fromFrontFile:
		front, err := framework.ReadFrontFile(o.referenceFrontFile)
		if err != nil {
			return nil, err
		}
		if ref, err = ReferencePointFromFront(front, o.offset); err != nil {
			return nil, fmt.Errorf("reference front %s: %w", o.referenceFrontFile, err)
		}
	case fromFront:
		var err error
		if ref, err = ReferencePointFromFront(o.referenceFront, o.offset); err != nil {
			return nil, err
		}
	default:
		if err := framework.ValidateReference(o.referencePoint); err != nil {
			return nil, err
		}
		ref = o.referencePoint.Clone()
	}

	if o.calculator != nil && !fits(o.calculator, len(ref)) {
		return nil, fmt.Errorf("%s calculator cannot measure %d objectives: %w", o.calculator.Name(), len(ref), framework.ErrInvalidConfiguration)
	}
	if naive, ok := o.contributions.(NaiveContributions); ok && naive.Calculator != nil && !fits(naive.Calculator, len(ref)) {
		return nil, fmt.Errorf("%s calculator cannot measure %d objectives: %w", naive.Calculator.Name(), len(ref), framework.ErrInvalidConfiguration)
	}

	logger.V(5).Info(fmt.Sprintf("created %s indicator with reference point %v", Name, ref))

	return &Hypervolume{
		reference:     ref,
		calculator:    o.calculator,
		contributions: o.contributions,
		logger:        logger,
	}, nil
}

// ReferencePointFromFront returns the componentwise maximum of the front with
// offset added to every objective.
func ReferencePointFromFront(front framework.Front, offset float64) (framework.ObjectiveSpacePoint, error) {
	if front == nil {
		return nil, fmt.Errorf("reference front: %w", framework.ErrNullArgument)
	}
	if len(front) == 0 {
		return nil, fmt.Errorf("reference front is empty: %w", framework.ErrInvalidConfiguration)
	}
	if front[0] == nil {
		return nil, fmt.Errorf("reference front point 0: %w", framework.ErrNullArgument)
	}
	if err := framework.ValidateFront(front, len(front[0])); err != nil {
		return nil, fmt.Errorf("reference front: %w", err)
	}

	ref := front[0].Clone()
	for _, p := range front[1:] {
		for i, v := range p {
			if v > ref[i] {
				ref[i] = v
			}
		}
	}
	floats.AddConst(offset, ref)

	if err := framework.ValidateReference(ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (h *Hypervolume) Name() string {
	return Name
}

func (h *Hypervolume) Description() string {
	return Description
}

// IsTheLowerTheIndicatorValueTheBetter is always false: a larger dominated
// volume is better.
func (h *Hypervolume) IsTheLowerTheIndicatorValueTheBetter() bool {
	return false
}

// ReferencePoint returns a copy of the reference point in use.
func (h *Hypervolume) ReferencePoint() framework.ObjectiveSpacePoint {
	return h.reference.Clone()
}

// Compute returns the hypervolume of the front. An empty front has volume 0.
func (h *Hypervolume) Compute(front framework.Front) (float64, error) {
	if err := framework.ValidateFront(front, len(h.reference)); err != nil {
		return 0, fmt.Errorf("computing %s: %w", Name, err)
	}

	calc := h.calculator
	if calc == nil {
		calc = CalculatorFor(len(h.reference))
	}

	// The 2-D sweep skips dominated points on its own in O(n log n); only the
	// recursion benefits from filtering them up front.
	idx := contributing(front, h.reference, len(h.reference) > 2)
	h.logger.V(4).Info("computing hypervolume", "strategy", calc.Name(), "points", len(front), "contributing", len(idx))

	return calc.Volume(subset(front, idx), h.reference), nil
}

// ComputeHypervolumeContribution returns the exclusive contribution of every
// point of the front, in input order.
func (h *Hypervolume) ComputeHypervolumeContribution(front framework.Front) ([]float64, error) {
	if err := framework.ValidateFront(front, len(h.reference)); err != nil {
		return nil, fmt.Errorf("computing %s contributions: %w", Name, err)
	}

	contrib := h.contributions
	if contrib == nil {
		if h.calculator != nil {
			contrib = NaiveContributions{Calculator: h.calculator}
		} else {
			contrib = ContributionsFor(len(h.reference))
		}
	}
	h.logger.V(4).Info("computing hypervolume contributions", "strategy", contrib.Name(), "points", len(front))

	return contrib.Contributions(front, h.reference), nil
}

// Compute is a shorthand for building a Hypervolume with ref and computing the
// volume of front.
func Compute(front framework.Front, ref framework.ObjectiveSpacePoint) (float64, error) {
	h, err := New(WithReferencePoint(ref))
	if err != nil {
		return 0, err
	}
	return h.Compute(front)
}

// Contributions is a shorthand for building a Hypervolume with ref and
// computing the contributions of front.
func Contributions(front framework.Front, ref framework.ObjectiveSpacePoint) ([]float64, error) {
	h, err := New(WithReferencePoint(ref))
	if err != nil {
		return nil, err
	}
	return h.ComputeHypervolumeContribution(front)
}
