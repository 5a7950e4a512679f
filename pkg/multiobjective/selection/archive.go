package selection

import (
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/hypervolume"
)

// Archive is a bounded set of mutually non-dominated points. When a new point
// pushes it over capacity the member with the smallest exclusive hypervolume
// is evicted. Archive is not safe for concurrent use.
type Archive struct {
	capacity int
	dim      int
	hv       *hypervolume.Hypervolume
	members  framework.Front
	logger   logr.Logger
}

// NewArchive creates an archive holding at most capacity points, measured
// against ref.
func NewArchive(capacity int, ref framework.ObjectiveSpacePoint, logger logr.Logger) (*Archive, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("archive capacity %d: %w", capacity, framework.ErrInvalidConfiguration)
	}
	hv, err := hypervolume.New(hypervolume.WithReferencePoint(ref), hypervolume.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Archive{
		capacity: capacity,
		dim:      len(ref),
		hv:       hv,
		members:  make(framework.Front, 0, capacity+1),
		logger:   logger,
	}, nil
}

// NewArchiveWithDefaults is NewArchive logging through klog.
func NewArchiveWithDefaults(capacity int, ref framework.ObjectiveSpacePoint) (*Archive, error) {
	return NewArchive(capacity, ref, klog.Background())
}

// Add offers p to the archive and reports whether p is a member afterwards.
// Points dominated by or equal to a member are rejected; members dominated by
// p are dropped.
func (a *Archive) Add(p framework.ObjectiveSpacePoint) (bool, error) {
	if err := framework.ValidateFront(framework.Front{p}, a.dim); err != nil {
		return false, fmt.Errorf("adding to archive: %w", err)
	}

	kept := a.members[:0]
	for _, m := range a.members {
		if framework.Dominates(m, p) || framework.Equal(m, p) {
			return false, nil
		}
	}
	for _, m := range a.members {
		if !framework.Dominates(p, m) {
			kept = append(kept, m)
		}
	}
	a.members = append(kept, p.Clone())

	if len(a.members) <= a.capacity {
		return true, nil
	}

	contributions, err := a.hv.ComputeHypervolumeContribution(a.members)
	if err != nil {
		return false, err
	}
	worst := leastContributor(contributions)
	evicted := a.members[worst]
	a.members = append(a.members[:worst], a.members[worst+1:]...)
	a.logger.V(5).Info("evicted least contributor from archive", "point", evicted, "contribution", contributions[worst])

	return worst != len(a.members), nil
}

// Len returns the number of members.
func (a *Archive) Len() int {
	return len(a.members)
}

// Members returns a copy of the archived points in insertion order.
func (a *Archive) Members() framework.Front {
	return a.members.Clone()
}

// Hypervolume returns the volume dominated by the archive.
func (a *Archive) Hypervolume() (float64, error) {
	return a.hv.Compute(a.members)
}
