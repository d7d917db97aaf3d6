// Package studies holds the per-study input data for an evidence
// synthesis: one log-likelihood value and one penalty value per
// hypothesis for every study.
package studies

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
)

// Data is the validated input of one synthesis: S×H log-likelihood
// and penalty matrices plus display labels. It is not modified after
// creation.
type Data struct {
	// LL is the S×H log-likelihood matrix.
	LL *mat64.Dense
	// PT is the S×H penalty matrix.
	PT *mat64.Dense
	// StudyLabels has one display label per study.
	StudyLabels []string
	// HypoLabels has one display label per hypothesis, the last one
	// being the safeguard hypothesis.
	HypoLabels []string
}

// NewData validates the raw matrices and labels and bundles them. If
// studyLabels or hypoLabels is nil, default labels are generated.
// Any constraint violation is reported as a *ValidationError before
// any computation takes place.
func NewData(ll, pt [][]float64, studyLabels, hypoLabels []string) (*Data, error) {
	if err := checkMatrix("log-likelihood matrix", ll); err != nil {
		return nil, err
	}
	if err := checkMatrix("penalty matrix", pt); err != nil {
		return nil, err
	}

	nStudies := len(ll)
	nHypos := len(ll[0])
	if len(pt) != nStudies {
		return nil, &ValidationError{
			Arg: "penalty matrix",
			Constraint: fmt.Sprintf("must have one row per study (%d), got %d",
				nStudies, len(pt)),
		}
	}
	if len(pt[0]) != nHypos {
		return nil, &ValidationError{
			Arg: "penalty matrix",
			Constraint: fmt.Sprintf("must have one column per hypothesis (%d), got %d",
				nHypos, len(pt[0])),
		}
	}

	if studyLabels == nil {
		studyLabels = DefaultStudyLabels(nStudies)
	} else if len(studyLabels) != nStudies {
		return nil, &ValidationError{
			Arg: "study labels",
			Constraint: fmt.Sprintf("need %d labels, one per study, got %d",
				nStudies, len(studyLabels)),
		}
	}
	if hypoLabels == nil {
		hypoLabels = DefaultHypoLabels(nHypos)
	} else if len(hypoLabels) != nHypos {
		return nil, &ValidationError{
			Arg: "hypothesis labels",
			Constraint: fmt.Sprintf("need %d labels, one per hypothesis, got %d",
				nHypos, len(hypoLabels)),
		}
	}

	return &Data{
		LL:          mat64.NewDense(nStudies, nHypos, flatten(ll)),
		PT:          mat64.NewDense(nStudies, nHypos, flatten(pt)),
		StudyLabels: studyLabels,
		HypoLabels:  hypoLabels,
	}, nil
}

// NStudies returns the number of studies S.
func (d *Data) NStudies() int {
	rows, _ := d.LL.Dims()
	return rows
}

// NHypos returns the number of hypotheses H, safeguard included.
func (d *Data) NHypos() int {
	_, cols := d.LL.Dims()
	return cols
}

// LLRow returns a copy of study s's log-likelihood row (0-based).
func (d *Data) LLRow(s int) []float64 {
	return mat64.Row(make([]float64, d.NHypos()), s, d.LL)
}

// PTRow returns a copy of study s's penalty row (0-based).
func (d *Data) PTRow(s int) []float64 {
	return mat64.Row(make([]float64, d.NHypos()), s, d.PT)
}

// DefaultStudyLabels returns Study-1..Study-n.
func DefaultStudyLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("Study-%d", i+1)
	}
	return labels
}

// DefaultHypoLabels returns H1..H(n-1) plus Hu for the safeguard
// (unconstrained) hypothesis.
func DefaultHypoLabels(n int) []string {
	labels := make([]string, n)
	for i := 0; i < n-1; i++ {
		labels[i] = fmt.Sprintf("H%d", i+1)
	}
	labels[n-1] = "Hu"
	return labels
}

// checkMatrix rejects empty and ragged matrices.
func checkMatrix(name string, m [][]float64) error {
	if len(m) == 0 {
		return &ValidationError{Arg: name, Constraint: "must have at least one study row"}
	}
	if len(m[0]) == 0 {
		return &ValidationError{Arg: name, Constraint: "must have at least one hypothesis column"}
	}
	for i, row := range m {
		if len(row) != len(m[0]) {
			return &ValidationError{
				Arg: name,
				Constraint: fmt.Sprintf("row %d has %d values, expected %d",
					i+1, len(row), len(m[0])),
			}
		}
	}
	return nil
}

func flatten(m [][]float64) []float64 {
	flat := make([]float64, 0, len(m)*len(m[0]))
	for _, row := range m {
		flat = append(flat, row...)
	}
	return flat
}
