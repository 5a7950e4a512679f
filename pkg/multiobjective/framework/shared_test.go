package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a, b ObjectiveSpacePoint
		want bool
	}{
		{"better in all", ObjectiveSpacePoint{1, 1}, ObjectiveSpacePoint{2, 2}, true},
		{"better in one", ObjectiveSpacePoint{1, 2}, ObjectiveSpacePoint{2, 2}, true},
		{"equal", ObjectiveSpacePoint{2, 2}, ObjectiveSpacePoint{2, 2}, false},
		{"incomparable", ObjectiveSpacePoint{1, 3}, ObjectiveSpacePoint{3, 1}, false},
		{"worse", ObjectiveSpacePoint{3, 3}, ObjectiveSpacePoint{2, 2}, false},
		{"different length", ObjectiveSpacePoint{1}, ObjectiveSpacePoint{2, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominates(tt.a, tt.b))
		})
	}
}

func TestNonDominated(t *testing.T) {
	front := Front{{1, 3}, {2, 2}, {3, 3}, {2, 2}, {3, 1}, {1, 3}}
	assert.Equal(t, []int{0, 1, 4}, NonDominated(front))
	assert.Empty(t, NonDominated(Front{}))
}

func TestNonDominatedSort(t *testing.T) {
	population := []Individual{
		{Objectives: ObjectiveSpacePoint{1, 1}},
		{Objectives: ObjectiveSpacePoint{2, 2}},
		{Objectives: ObjectiveSpacePoint{0, 3}},
		{Objectives: ObjectiveSpacePoint{3, 3}},
		{Objectives: ObjectiveSpacePoint{2, 2}},
	}

	fronts := NonDominatedSort(population)
	require.Len(t, fronts, 3)
	assert.Len(t, fronts[0], 2)
	assert.Len(t, fronts[1], 2)
	assert.Len(t, fronts[2], 1)

	wantRanks := []int{0, 1, 0, 2, 1}
	for i, ind := range population {
		assert.Equal(t, wantRanks[i], ind.Rank, "individual %d", i)
	}

	// Check if every front is non-dominated
	for _, front := range fronts {
		for i := range front {
			for j := range front {
				if i != j && Dominates(front[i].Objectives, front[j].Objectives) {
					t.Error("front contains dominated solutions")
				}
			}
		}
	}

	assert.Nil(t, NonDominatedSort(nil))
}

func TestValidateFront(t *testing.T) {
	assert.NoError(t, ValidateFront(Front{}, 2))
	assert.NoError(t, ValidateFront(Front{{1, 2}}, 2))
	assert.ErrorIs(t, ValidateFront(nil, 2), ErrNullArgument)
	assert.ErrorIs(t, ValidateFront(Front{{1, 2}, nil}, 2), ErrNullArgument)

	err := ValidateFront(Front{{1, 2}, {1, 2}, {1}}, 2)
	require.ErrorIs(t, err, ErrDimensionMismatch)
	assert.EqualError(t, err, "dimension mismatch: point 2 has 1 objectives, want 2")
}

func TestValidateReference(t *testing.T) {
	assert.NoError(t, ValidateReference(ObjectiveSpacePoint{1}))
	assert.ErrorIs(t, ValidateReference(nil), ErrNullArgument)
	assert.ErrorIs(t, ValidateReference(ObjectiveSpacePoint{}), ErrInvalidConfiguration)
}
