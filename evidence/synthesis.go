// Package evidence implements GORIC(A) evidence synthesis: per-study
// log-likelihood and penalty values for a fixed set of hypotheses are
// folded into cumulative information criteria and normalized evidence
// weights, under the added-evidence or the equal-evidence approach.
package evidence

import (
	"fmt"

	"github.com/gonum/matrix/mat64"
	"github.com/op/go-logging"

	"github.com/LeonardV/GoricEvSyn/matrix"
	"github.com/LeonardV/GoricEvSyn/studies"
)

// log is the global logging variable.
var log = logging.MustGetLogger("evidence")

// Synthesize folds all studies of d into cumulative criteria and
// evidence weights, starting from an empty accumulator.
func Synthesize(approach EvidenceApproach, d *studies.Data) *Result {
	res, _ := Extend(NewAccumulator(approach, d.NHypos()), d)
	return res
}

// Extend folds the studies of d into an existing accumulator, e.g.
// one restored from the run archive, and assembles the result for the
// newly added studies. The accumulator and the data must agree on the
// number of hypotheses.
func Extend(acc *Accumulator, d *studies.Data) (*Result, error) {
	if acc.NHypos() != d.NHypos() {
		return nil, fmt.Errorf("accumulator has %d hypotheses, data has %d",
			acc.NHypos(), d.NHypos())
	}

	nStudies := d.NStudies()
	nHypos := d.NHypos()
	log.Infof("Synthesizing evidence from %d studies, %d hypotheses, %s approach",
		nStudies, nHypos, acc.Approach())

	cumCriterion := mat64.NewDense(nStudies+1, nHypos, nil)
	cumWeights := mat64.NewDense(nStudies+1, nHypos, nil)
	studyWeights := mat64.NewDense(nStudies, nHypos, nil)

	var criterion, weights []float64
	for s := 0; s < nStudies; s++ {
		ll := d.LLRow(s)
		pt := d.PTRow(s)

		// weight of the study on its own, for the trajectory plot
		single := make([]float64, nHypos)
		for h := 0; h < nHypos; h++ {
			single[h] = -2*ll[h] + 2*pt[h]
		}
		studyWeights.SetRow(s, Weights(single))

		criterion = acc.Add(ll, pt)
		weights = Weights(criterion)
		cumCriterion.SetRow(s, criterion)
		cumWeights.SetRow(s, weights)
		log.Debugf("study %d: criterion=%v weights=%v", s+1, criterion, weights)
	}

	// The last row is duplicated so consumers can address the final
	// result by a stable row label.
	cumCriterion.SetRow(nStudies, criterion)
	cumWeights.SetRow(nStudies, weights)

	res := &Result{
		Approach:       acc.Approach(),
		Data:           d,
		FinalCriterion: criterion,
		FinalWeights:   weights,
	}

	rowNames := append(append([]string{}, d.StudyLabels...), "Final")
	res.CumCriterion = &matrix.Labeled{Dense: cumCriterion, RowNames: rowNames, ColNames: d.HypoLabels}
	res.CumWeights = &matrix.Labeled{Dense: cumWeights, RowNames: rowNames, ColNames: d.HypoLabels}
	res.StudyWeights = &matrix.Labeled{Dense: studyWeights, RowNames: d.StudyLabels, ColNames: d.HypoLabels}

	vsNames := make([]string, nHypos)
	for h, name := range d.HypoLabels {
		vsNames[h] = "vs " + name
	}
	res.Relative = &matrix.Labeled{
		Dense:    RelativeWeights(weights),
		RowNames: d.HypoLabels,
		ColNames: vsNames,
	}

	return res, nil
}
