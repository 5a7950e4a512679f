package framework

// NonDominatedSort performs non-dominated sorting on the population and sets
// the Rank of every individual. Individuals in fronts[0] are not dominated by
// anyone, fronts[1] only by members of fronts[0] and so on.
func NonDominatedSort(population []Individual) [][]Individual {
	if len(population) == 0 {
		return nil
	}

	var fronts [][]Individual
	dominated := make([][]int, len(population))
	domCount := make([]int, len(population))

	// Calculate domination for each individual
	for i := 0; i < len(population); i++ {
		for j := i + 1; j < len(population); j++ {
			if Dominates(population[i].Objectives, population[j].Objectives) {
				dominated[i] = append(dominated[i], j)
				domCount[j]++
			} else if Dominates(population[j].Objectives, population[i].Objectives) {
				dominated[j] = append(dominated[j], i)
				domCount[i]++
			}
		}
	}

	// Find first front
	currentFront := []Individual{}
	currentFrontIndices := []int{}
	for i := 0; i < len(population); i++ {
		if domCount[i] == 0 {
			population[i].Rank = 0
			currentFront = append(currentFront, population[i])
			currentFrontIndices = append(currentFrontIndices, i)
		}
	}
	fronts = append(fronts, currentFront)

	// Find subsequent fronts
	frontIndex := 0
	for len(currentFront) > 0 {
		nextFront := []Individual{}
		nextFrontIndices := []int{}
		for _, idx := range currentFrontIndices {
			for _, dominatedIdx := range dominated[idx] {
				domCount[dominatedIdx]--
				if domCount[dominatedIdx] == 0 {
					population[dominatedIdx].Rank = frontIndex + 1
					nextFront = append(nextFront, population[dominatedIdx])
					nextFrontIndices = append(nextFrontIndices, dominatedIdx)
				}
			}
		}
		frontIndex++
		if len(nextFront) > 0 {
			fronts = append(fronts, nextFront)
		}
		currentFront = nextFront
		currentFrontIndices = nextFrontIndices
	}

	return fronts
}

// Dominates checks if point a dominates point b: a is no worse than b in every
// objective and strictly better in at least one. Points of different length
// never dominate each other.
func Dominates(a, b ObjectiveSpacePoint) bool {
	if len(a) != len(b) {
		return false
	}
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}

// Equal reports whether both points have identical coordinates.
func Equal(a, b ObjectiveSpacePoint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NonDominated returns the indices of the non-dominated points of the front in
// input order. Of several identical points only the first one is kept.
func NonDominated(front Front) []int {
	keep := make([]int, 0, len(front))
	for i := range front {
		survives := true
		for j := range front {
			if i == j {
				continue
			}
			if Dominates(front[j], front[i]) || (j < i && Equal(front[j], front[i])) {
				survives = false
				break
			}
		}
		if survives {
			keep = append(keep, i)
		}
	}
	return keep
}
