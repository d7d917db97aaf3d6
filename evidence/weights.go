package evidence

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// Weights transforms one criterion vector into normalized evidence
// weights. The row minimum is subtracted before exponentiation; the
// normalized result is unchanged by the shift, but large criterion
// differences no longer overflow. A weight underflowing to zero means
// a hypothesis has effectively no support; it is kept as is.
func Weights(criterion []float64) []float64 {
	min := criterion[0]
	for _, c := range criterion[1:] {
		if c < min {
			min = c
		}
	}

	w := make([]float64, len(criterion))
	sum := 0.0
	for h, c := range criterion {
		w[h] = math.Exp(-0.5 * (c - min))
		sum += w[h]
	}
	for h := range w {
		w[h] /= sum
	}
	return w
}

// RelativeWeights builds the pairwise ratio matrix R[i][j] =
// w[i]/w[j] from a weight vector. The diagonal is written as a
// constant 1, so a zero weight never produces a 0/0 on the diagonal;
// off-diagonal ratios against a zero weight are +Inf.
func RelativeWeights(w []float64) *mat64.Dense {
	n := len(w)
	r := mat64.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				r.Set(i, j, 1)
				continue
			}
			r.Set(i, j, w[i]/w[j])
		}
	}
	return r
}
