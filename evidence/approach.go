package evidence

import (
	"fmt"
	"strings"
)

// EvidenceApproach selects how accumulated penalties are combined
// across studies.
type EvidenceApproach int

const (
	// AddedEvidence accumulates penalties without rescaling. The
	// combined evidence is stronger than what literal pooling of the
	// raw data would give.
	AddedEvidence EvidenceApproach = iota
	// EqualEvidence divides the accumulated penalty by the number of
	// studies seen so far, approximating a single analysis of the
	// pooled data.
	EqualEvidence
)

// String returns the approach label used in output and archives.
func (a EvidenceApproach) String() string {
	switch a {
	case AddedEvidence:
		return "added-evidence"
	case EqualEvidence:
		return "equal-evidence"
	}
	return fmt.Sprintf("EvidenceApproach(%d)", int(a))
}

// ParseApproach returns an evidence approach from a string. There is
// no default: anything but the two known approaches is an error.
func ParseApproach(s string) (EvidenceApproach, error) {
	switch strings.ToLower(s) {
	case "added", "added-evidence", "addedevidence":
		return AddedEvidence, nil
	case "equal", "equal-evidence", "equalevidence":
		return EqualEvidence, nil
	}
	return AddedEvidence, fmt.Errorf("unknown evidence approach: %s (added or equal)", s)
}

// scalePenalty applies the approach's penalty scaling to an
// accumulated penalty sum at 1-based study index s.
func (a EvidenceApproach) scalePenalty(sumPT float64, s int) float64 {
	if a == EqualEvidence {
		return sumPT / float64(s)
	}
	return sumPT
}
