package evidence

import "fmt"

// Accumulator folds per-study log-likelihood and penalty rows into
// GORIC(A) criterion vectors. Results depend only on the studies seen
// so far; feeding studies in a different order changes the
// intermediate criteria.
type Accumulator struct {
	approach EvidenceApproach
	nHypos   int
	nStudies int
	sumLL    []float64
	sumPT    []float64
}

// AccumulatorState is the serializable snapshot of an accumulator,
// used by the run archive to extend a synthesis with new studies.
type AccumulatorState struct {
	// Approach is the evidence approach label.
	Approach string `json:"approach"`
	// Studies is the number of studies folded in so far.
	Studies int `json:"studies"`
	// SumLL holds the accumulated log-likelihoods per hypothesis.
	SumLL []float64 `json:"sumLL"`
	// SumPT holds the accumulated penalties per hypothesis.
	SumPT []float64 `json:"sumPT"`
}

// NewAccumulator creates an empty accumulator for nHypos hypotheses.
func NewAccumulator(approach EvidenceApproach, nHypos int) *Accumulator {
	return &Accumulator{
		approach: approach,
		nHypos:   nHypos,
		sumLL:    make([]float64, nHypos),
		sumPT:    make([]float64, nHypos),
	}
}

// RestoreAccumulator recreates an accumulator from an archived state.
func RestoreAccumulator(state *AccumulatorState) (*Accumulator, error) {
	approach, err := ParseApproach(state.Approach)
	if err != nil {
		return nil, err
	}
	if len(state.SumLL) != len(state.SumPT) {
		return nil, fmt.Errorf("archived sums have mismatching lengths: %d vs %d",
			len(state.SumLL), len(state.SumPT))
	}
	if state.Studies < 0 {
		return nil, fmt.Errorf("archived study count is negative: %d", state.Studies)
	}
	a := NewAccumulator(approach, len(state.SumLL))
	a.nStudies = state.Studies
	copy(a.sumLL, state.SumLL)
	copy(a.sumPT, state.SumPT)
	return a, nil
}

// Add folds one study into the accumulator and returns the criterion
// vector after that study. The returned slice is owned by the caller.
func (a *Accumulator) Add(ll, pt []float64) []float64 {
	a.nStudies++
	criterion := make([]float64, a.nHypos)
	for h := 0; h < a.nHypos; h++ {
		a.sumLL[h] += ll[h]
		a.sumPT[h] += pt[h]
		criterion[h] = -2*a.sumLL[h] + 2*a.approach.scalePenalty(a.sumPT[h], a.nStudies)
	}
	return criterion
}

// NStudies returns the number of studies folded in so far.
func (a *Accumulator) NStudies() int {
	return a.nStudies
}

// NHypos returns the number of hypotheses.
func (a *Accumulator) NHypos() int {
	return a.nHypos
}

// Approach returns the evidence approach the accumulator uses.
func (a *Accumulator) Approach() EvidenceApproach {
	return a.approach
}

// State returns a snapshot suitable for archiving.
func (a *Accumulator) State() *AccumulatorState {
	st := &AccumulatorState{
		Approach: a.approach.String(),
		Studies:  a.nStudies,
		SumLL:    make([]float64, a.nHypos),
		SumPT:    make([]float64, a.nHypos),
	}
	copy(st.SumLL, a.sumLL)
	copy(st.SumPT, a.sumPT)
	return st
}
