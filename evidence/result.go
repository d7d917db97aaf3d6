package evidence

import (
	"github.com/LeonardV/GoricEvSyn/matrix"
	"github.com/LeonardV/GoricEvSyn/studies"
)

// Result is the assembled output of one synthesis. All matrices are
// built once and not modified afterwards.
type Result struct {
	// Approach is the evidence approach that was used.
	Approach EvidenceApproach
	// Data is the input the synthesis ran on.
	Data *studies.Data
	// CumCriterion is the (S+1)×H cumulative criterion matrix; rows
	// are labeled by study, the last row ("Final") duplicates row S.
	CumCriterion *matrix.Labeled
	// CumWeights is the (S+1)×H cumulative evidence-weight matrix,
	// labeled like CumCriterion. Every row sums to one.
	CumWeights *matrix.Labeled
	// StudyWeights is the S×H matrix of single-study evidence
	// weights, used as the point series of the trajectory plot.
	StudyWeights *matrix.Labeled
	// FinalCriterion is the criterion vector after the last study.
	FinalCriterion []float64
	// FinalWeights is the evidence-weight vector after the last
	// study.
	FinalWeights []float64
	// Relative is the H×H matrix of final relative weights,
	// Relative[i][j] = FinalWeights[i]/FinalWeights[j]. Entries
	// against a zero weight are +Inf; the diagonal is one.
	Relative *matrix.Labeled
}

// Best returns the index and label of the hypothesis with the highest
// final weight.
func (r *Result) Best() (int, string) {
	best := 0
	for h, w := range r.FinalWeights {
		if w > r.FinalWeights[best] {
			best = h
		}
	}
	return best, r.Data.HypoLabels[best]
}
