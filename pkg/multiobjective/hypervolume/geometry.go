package hypervolume

import "github.com/moo-lab/hypervolume/pkg/multiobjective/framework"

// inclusiveVolume is the volume of the box between p and ref. It is 0 when p
// does not strictly improve on ref in every objective.
func inclusiveVolume(p, ref framework.ObjectiveSpacePoint) float64 {
	v := 1.0
	for i := range ref {
		side := ref[i] - p[i]
		if side <= 0 {
			return 0
		}
		v *= side
	}
	return v
}

// limit writes the componentwise worse of p and q into dst.
func limit(dst, p, q framework.ObjectiveSpacePoint) {
	for i := range dst {
		if p[i] > q[i] {
			dst[i] = p[i]
		} else {
			dst[i] = q[i]
		}
	}
}

// weaklyDominates reports whether a is no worse than b in every objective,
// which includes a == b.
func weaklyDominates(a, b framework.ObjectiveSpacePoint) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// insideReference keeps the points with a non-zero inclusive volume.
func insideReference(front framework.Front, ref framework.ObjectiveSpacePoint) []int {
	idx := make([]int, 0, len(front))
	for i, p := range front {
		if inclusiveVolume(p, ref) > 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
