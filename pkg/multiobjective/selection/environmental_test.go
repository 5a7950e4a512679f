package selection

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moo-lab/hypervolume/pkg/multiobjective/benchmarks"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/framework"
	"github.com/moo-lab/hypervolume/pkg/multiobjective/hypervolume"
)

func population(points ...framework.ObjectiveSpacePoint) []framework.Individual {
	pop := make([]framework.Individual, len(points))
	for i, p := range points {
		pop[i] = framework.Individual{Objectives: p}
	}
	return pop
}

func TestReduceTruncatesByContribution(t *testing.T) {
	pop := population(
		framework.ObjectiveSpacePoint{1, 4},
		framework.ObjectiveSpacePoint{2, 3},
		framework.ObjectiveSpacePoint{3, 4},
		framework.ObjectiveSpacePoint{2.1, 2.9},
		framework.ObjectiveSpacePoint{4, 1},
	)

	got, err := Reduce(pop, 3, framework.ObjectiveSpacePoint{5, 5})
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, framework.Front{{1, 4}, {2.1, 2.9}, {4, 1}}, framework.Objectives(got))
	wantContributions := []float64{1.1, 2.09, 1.9}
	for i, ind := range got {
		assert.Zero(t, ind.Rank)
		assert.InDelta(t, wantContributions[i], ind.Contribution, 1e-9)
	}
}

func TestReduceKeepsWholeFronts(t *testing.T) {
	pop := population(
		framework.ObjectiveSpacePoint{1, 4},
		framework.ObjectiveSpacePoint{4, 4},
		framework.ObjectiveSpacePoint{2, 3},
		framework.ObjectiveSpacePoint{3, 4},
		framework.ObjectiveSpacePoint{2.1, 2.9},
		framework.ObjectiveSpacePoint{4, 1},
	)

	got, err := Reduce(pop, 5, framework.ObjectiveSpacePoint{5, 5})
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, ind := range got {
		assert.NotEqual(t, framework.ObjectiveSpacePoint{4, 4}, ind.Objectives)
	}
	assert.Equal(t, 1, got[4].Rank)
}

func TestReduceDerivesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	zdt1 := benchmarks.NewZDT1(5)
	pop := make([]framework.Individual, 40)
	for i := range pop {
		x := make([]float64, 5)
		for j := range x {
			x[j] = rng.Float64()
		}
		pop[i] = framework.Individual{Variables: x, Objectives: zdt1.Evaluate(x)}
	}

	got, err := Reduce(pop, 10, nil)
	require.NoError(t, err)
	assert.Len(t, got, 10)

	// The survivors of the first front must remain mutually non-dominated.
	for i := range got {
		for j := range got {
			if i != j && got[i].Rank == got[j].Rank {
				assert.False(t, framework.Dominates(got[i].Objectives, got[j].Objectives))
			}
		}
	}
}

func TestReduceGreedyBeatsDroppingExtremes(t *testing.T) {
	front := benchmarks.NewZDT1(30).TrueParetoFront(50)
	pop := make([]framework.Individual, len(front))
	for i, p := range front {
		pop[i] = framework.Individual{Objectives: p}
	}
	ref := framework.ObjectiveSpacePoint{1.1, 1.1}

	got, err := Reduce(pop, 10, ref)
	require.NoError(t, err)
	require.Len(t, got, 10)

	reduced, err := hypervolume.Compute(framework.Objectives(got), ref)
	require.NoError(t, err)
	firstTen, err := hypervolume.Compute(front[:10], ref)
	require.NoError(t, err)
	assert.Greater(t, reduced, firstTen)
}

func TestReduceEdgeCases(t *testing.T) {
	pop := population(framework.ObjectiveSpacePoint{1, 2}, framework.ObjectiveSpacePoint{2, 1})

	got, err := Reduce(pop, 5, nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Reduce(pop, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Reduce(pop, -1, nil)
	assert.ErrorIs(t, err, framework.ErrInvalidConfiguration)
}

func TestReduceLeavesPopulationUntouched(t *testing.T) {
	pop := population(
		framework.ObjectiveSpacePoint{1, 4},
		framework.ObjectiveSpacePoint{4, 4},
		framework.ObjectiveSpacePoint{2, 3},
		framework.ObjectiveSpacePoint{4, 1},
	)
	for i := range pop {
		pop[i].Rank = -1
	}

	got, err := Reduce(pop, 3, framework.ObjectiveSpacePoint{5, 5})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, ind := range got {
		assert.Zero(t, ind.Rank)
	}

	for i, ind := range pop {
		assert.Equal(t, -1, ind.Rank, "individual %d", i)
		assert.Zero(t, ind.Contribution, "individual %d", i)
	}
}
