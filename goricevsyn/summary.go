package main

import (
	"encoding/json"
	"math"

	"github.com/gonum/matrix/mat64"

	"github.com/LeonardV/GoricEvSyn/evidence"
	"github.com/LeonardV/GoricEvSyn/matrix"
)

// ratio is a relative weight; non-finite values are marshaled as
// strings since JSON has no representation for them. A hypothesis
// with zero weight produces infinite ratios, which is a valid
// outcome and must survive encoding.
type ratio float64

// MarshalJSON implements json.Marshaler.
func (r ratio) MarshalJSON() ([]byte, error) {
	v := float64(r)
	switch {
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(v)
}

// RunSummary stores the complete result of one synthesis run.
type RunSummary struct {
	// Version stores the goricevsyn version.
	Version string `json:"version"`
	// CommandLine is an array storing binary name and all command-line parameters.
	CommandLine []string `json:"commandLine"`
	// Approach is the evidence approach used (added- or equal-evidence).
	Approach string `json:"approach"`
	// StudyLabels are the display labels of the studies, in processing order.
	StudyLabels []string `json:"studyLabels"`
	// HypoLabels are the hypothesis labels, the last one naming the safeguard.
	HypoLabels []string `json:"hypoLabels"`
	// LogLikelihood is the input S×H log-likelihood matrix.
	LogLikelihood [][]float64 `json:"logLikelihood"`
	// Penalty is the input S×H penalty matrix.
	Penalty [][]float64 `json:"penalty"`
	// CumCriterion is the (S+1)×H cumulative criterion matrix; the extra
	// last row ("Final") duplicates row S.
	CumCriterion [][]float64 `json:"cumCriterion"`
	// CumWeights is the (S+1)×H cumulative evidence-weight matrix, with
	// the same row labeling as CumCriterion.
	CumWeights [][]float64 `json:"cumWeights"`
	// StudyWeights is the S×H matrix of single-study evidence weights.
	StudyWeights [][]float64 `json:"studyWeights"`
	// FinalCriterion is the criterion vector after the last study.
	FinalCriterion []float64 `json:"finalCriterion"`
	// FinalWeights is the evidence-weight vector after the last study.
	FinalWeights []float64 `json:"finalWeights"`
	// RelativeWeights is the H×H matrix of final relative weights.
	RelativeWeights [][]ratio `json:"relativeWeights"`
	// Best is the label of the hypothesis with the highest final weight.
	Best string `json:"best"`
	// Time is the computations time in seconds.
	Time float64 `json:"time"`
}

// newRunSummary converts a synthesis result into a run summary.
func newRunSummary(res *evidence.Result) *RunSummary {
	_, best := res.Best()
	return &RunSummary{
		Approach:        res.Approach.String(),
		StudyLabels:     res.StudyWeights.RowNames,
		HypoLabels:      res.Data.HypoLabels,
		LogLikelihood:   denseRows(res.Data.LL),
		Penalty:         denseRows(res.Data.PT),
		CumCriterion:    res.CumCriterion.Rows(),
		CumWeights:      res.CumWeights.Rows(),
		StudyWeights:    res.StudyWeights.Rows(),
		FinalCriterion:  res.FinalCriterion,
		FinalWeights:    res.FinalWeights,
		RelativeWeights: ratioRows(res.Relative.Rows()),
		Best:            best,
	}
}

func ratioRows(rows [][]float64) [][]ratio {
	res := make([][]ratio, len(rows))
	for i, row := range rows {
		res[i] = make([]ratio, len(row))
		for j, v := range row {
			res[i][j] = ratio(v)
		}
	}
	return res
}

// denseRows converts an unlabeled matrix to a slice of rows.
func denseRows(m *mat64.Dense) [][]float64 {
	l := matrix.Labeled{Dense: m}
	return l.Rows()
}
