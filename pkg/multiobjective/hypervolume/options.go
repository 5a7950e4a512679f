package hypervolume

import (
	"github.com/go-logr/logr"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
)

// Option configures a Hypervolume.
type Option func(*options)

type referenceSource int

const (
	fromPoint referenceSource = iota
	fromFront
	fromFrontFile
)

type options struct {
	sources int
	source  referenceSource

	referencePoint     framework.ObjectiveSpacePoint
	referenceFront     framework.Front
	referenceFrontFile string
	offset             float64

	logger        *logr.Logger
	calculator    Calculator
	contributions ContributionCalculator
}

// WithReferencePoint bounds the computation by an explicit reference point.
func WithReferencePoint(ref framework.ObjectiveSpacePoint) Option {
	return func(o *options) {
		o.sources++
		o.source = fromPoint
		o.referencePoint = ref
	}
}

// WithReferenceFront derives the reference point from a front: the worst value
// of every objective across the front, plus offset.
func WithReferenceFront(front framework.Front, offset float64) Option {
	return func(o *options) {
		o.sources++
		o.source = fromFront
		o.referenceFront = front
		o.offset = offset
	}
}

// WithReferenceFrontFile is WithReferenceFront for a front stored in a file,
// see framework.ReadFront for the format.
func WithReferenceFrontFile(path string, offset float64) Option {
	return func(o *options) {
		o.sources++
		o.source = fromFrontFile
		o.referenceFrontFile = path
		o.offset = offset
	}
}

// WithLogger sets the logger. Defaults to klog.Background().
func WithLogger(logger logr.Logger) Option {
	return func(o *options) {
		o.logger = &logger
	}
}

// WithCalculator forces a volume strategy. New rejects a strategy bound to a
// dimensionality other than the reference point's, such as TwoD for three
// objectives.
func WithCalculator(c Calculator) Option {
	return func(o *options) {
		o.calculator = c
	}
}

// WithContributionStrategy forces a contribution strategy regardless of the
// dimensionality.
func WithContributionStrategy(c ContributionCalculator) Option {
	return func(o *options) {
		o.contributions = c
	}
}
