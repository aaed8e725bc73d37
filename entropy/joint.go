package entropy

// jointOutcome is the composite key identifying one co-occurring pair of
// values from two aligned samples. An exact struct key in a map — never a
// combined hash — so distinct (x, y) pairs can never silently collide.
type jointOutcome[X, Y comparable] struct {
	x X
	y Y
}

// EstimateJoint estimates the joint entropy H(X,Y) of two aligned samples
// under the selected Method.
//
// Position i of x is paired with position i of y into a single composite
// outcome; the distribution of those outcomes is counted and estimated like
// any other frequency distribution.
//
// Errors:
//   - ErrLengthMismatch — len(x) != len(y); checked before any computation.
//   - ErrInvalidMethod  — m is not one of Naive, ChaoShen, Shrinkage.
//
// Complexity: O(n + k) time, O(k) space (k distinct pairs).
func EstimateJoint[X, Y comparable](x []X, y []Y, m Method) (float64, error) {
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	joint := make(map[jointOutcome[X, Y]]int, len(x))
	for i := range x {
		joint[jointOutcome[X, Y]{x: x[i], y: y[i]}]++
	}

	return FromCounts(countWeights(joint), m)
}
