package evidence

import (
	"math"
	"testing"
)

func TestWeightsShiftInvariance(tst *testing.T) {
	criterion := []float64{22, 26, 31.5, 24.8}
	shifted := make([]float64, len(criterion))
	for _, k := range []float64{-1000, -1, 17, 1e6} {
		for i, c := range criterion {
			shifted[i] = c + k
		}
		w := Weights(criterion)
		ws := Weights(shifted)
		for h := range w {
			if math.Abs(w[h]-ws[h]) > tolerance {
				tst.Errorf("shift by %v changed weight %d: %v vs %v", k, h, w[h], ws[h])
			}
		}
	}
}

func TestWeightsEqualCriteria(tst *testing.T) {
	w := Weights([]float64{42, 42, 42, 42, 42})
	for h := range w {
		if math.Abs(w[h]-0.2) > tolerance {
			tst.Errorf("weight[%d]=%v, expected 1/5", h, w[h])
		}
	}
}

func TestWeightsUnderflow(tst *testing.T) {
	// a criterion 5000 above the minimum underflows to exactly zero;
	// that is a reportable outcome, not an error
	w := Weights([]float64{0, 5000})
	if w[0] != 1 {
		tst.Error("Dominating hypothesis weight is not one:", w[0])
	}
	if w[1] != 0 {
		tst.Error("Underflowed weight is not zero:", w[1])
	}

	r := RelativeWeights(w)
	if !math.IsInf(r.At(0, 1), 1) {
		tst.Error("Ratio against a zero weight is not +Inf:", r.At(0, 1))
	}
	if r.At(1, 1) != 1 {
		tst.Error("Diagonal for a zero weight is not one:", r.At(1, 1))
	}
}

func TestWeightsLargeMagnitudes(tst *testing.T) {
	// raw exponentiation of these would overflow without the shift
	w := Weights([]float64{-2000, -1990})
	sum := 0.0
	for _, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Error("Non-finite weight:", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > tolerance {
		tst.Error("Weights don't sum to one:", sum)
	}
}

func TestRelativeWeights(tst *testing.T) {
	w := Weights([]float64{22, 26, 23.7})
	r := RelativeWeights(w)

	n, _ := r.Dims()
	for i := 0; i < n; i++ {
		if r.At(i, i) != 1 {
			tst.Errorf("diagonal entry (%d,%d) is %v", i, i, r.At(i, i))
		}
		for j := 0; j < n; j++ {
			prod := r.At(i, j) * r.At(j, i)
			if math.Abs(prod-1) > tolerance {
				tst.Errorf("R[%d][%d]*R[%d][%d]=%v, expected 1", i, j, j, i, prod)
			}
		}
	}
}
