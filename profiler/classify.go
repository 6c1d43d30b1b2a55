// SPDX-License-Identifier: MIT

package profiler

import "math"

// classBand pairs a growth class with the duration ratio expected when
// the input size doubles: T(2N)/T(N) for large N.
type classBand struct {
	class Class
	ratio float64
}

// doublingBands is the classification table, ordered lowest order
// first. The slowly-growing classes cover bands rather than points
// (logarithmic ~1.0-1.3, linearithmic ~2.0-2.3); their entries carry
// the band midpoint so one nearest-neighbor rule serves every row.
var doublingBands = []classBand{
	{ClassConstant, 1.0},
	{ClassLogarithmic, 1.15},
	{ClassLinear, 2.0},
	{ClassLinearithmic, 2.15},
	{ClassQuadratic, 4.0},
	{ClassCubic, 8.0},
}

// exponentialLog2 is the cutoff above which a doubling ratio is no
// longer attributable to any polynomial row: log2(ratio) >= 3.5, i.e.
// a ratio past ~11.3. Exponential cost has no fixed doubling ratio, it
// keeps growing round over round, so the class is open-ended upward.
const exponentialLog2 = 3.5

// Classify maps an observed doubling ratio to the nearest growth class.
//
// The comparison runs on the log scale, since ratios are multiplicative:
// the winner minimizes |ln(observed) - ln(expected)| over doublingBands.
// Exact ties keep the earlier row, i.e. the lower-order class, which is
// the conservative read of an ambiguous measurement. Ratios at or past
// 2^3.5 classify as exponential before the table is consulted; zero,
// negative and non-finite ratios are inconclusive.
func Classify(ratio float64) Class {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		return ClassInconclusive
	}
	if math.Log2(ratio) >= exponentialLog2 {
		return ClassExponential
	}

	observed := math.Log(ratio)
	best := doublingBands[0].class
	bestDist := math.Abs(observed - math.Log(doublingBands[0].ratio))
	for _, band := range doublingBands[1:] {
		if d := math.Abs(observed - math.Log(band.ratio)); d < bestDist {
			best, bestDist = band.class, d
		}
	}
	return best
}
