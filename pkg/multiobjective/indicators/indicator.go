// Package indicators exposes the quality indicators behind a closed set of
// kinds and a registration table mapping every kind to its factory.
package indicators

import (
	"fmt"
	"slices"
	"strings"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/hypervolume"
)

// Indicator scores a front. Whether larger or smaller values are better is
// fixed per indicator.
type Indicator interface {
	Name() string
	Description() string
	IsTheLowerTheIndicatorValueTheBetter() bool
	Compute(front framework.Front) (float64, error)
}

var _ Indicator = &hypervolume.Hypervolume{}

// Kind identifies an indicator.
type Kind int

const (
	KindHypervolume Kind = iota
	KindEpsilon
	KindGenerationalDistance
	KindInvertedGenerationalDistance
)

var kindNames = map[Kind]string{
	KindHypervolume:                  hypervolume.Name,
	KindEpsilon:                      EpsilonName,
	KindGenerationalDistance:         GDName,
	KindInvertedGenerationalDistance: IGDName,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a case-insensitive indicator name such as "HV" to its Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown indicator %q: %w", name, framework.ErrInvalidConfiguration)
}

// Kinds lists every registered kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Reference is what an indicator is measured against. Hypervolume needs a
// reference point and derives one from Front when Point is nil; the distance
// indicators need Front.
type Reference struct {
	Point  framework.ObjectiveSpacePoint
	Front  framework.Front
	Offset float64
}

// Factory builds an indicator for a reference.
type Factory func(Reference) (Indicator, error)

var registry = map[Kind]Factory{
	KindHypervolume: func(ref Reference) (Indicator, error) {
		if ref.Point != nil {
			return hypervolume.New(hypervolume.WithReferencePoint(ref.Point))
		}
		return hypervolume.New(hypervolume.WithReferenceFront(ref.Front, ref.Offset))
	},
	KindEpsilon: func(ref Reference) (Indicator, error) {
		return NewEpsilon(ref.Front)
	},
	KindGenerationalDistance: func(ref Reference) (Indicator, error) {
		return NewGenerationalDistance(ref.Front)
	},
	KindInvertedGenerationalDistance: func(ref Reference) (Indicator, error) {
		return NewInvertedGenerationalDistance(ref.Front)
	},
}

// New builds the indicator of the given kind.
func New(kind Kind, ref Reference) (Indicator, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("indicator %v: %w", kind, framework.ErrInvalidConfiguration)
	}
	ind, err := factory(ref)
	if err != nil {
		return nil, fmt.Errorf("building %v: %w", kind, err)
	}
	return ind, nil
}
