package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/LeonardV/GoricEvSyn/archive"
	"github.com/LeonardV/GoricEvSyn/evidence"
	"github.com/LeonardV/GoricEvSyn/evplot"
	"github.com/LeonardV/GoricEvSyn/studies"
)

// synSettings stores settings of a synthesize run.
type synSettings struct {
	llFileName string
	ptFileName string

	approachName string
	studyLabels  string
	hypoLabels   string

	dbFileName string
	runKey     string
	resume     bool

	plotFileName string
	noColor      bool
}

// newSynSettings creates synSettings from the command line parameters
// (global variables).
func newSynSettings() *synSettings {
	return &synSettings{
		llFileName: *llFileName,
		ptFileName: *ptFileName,

		approachName: *approachName,
		studyLabels:  *studyLabelsFlag,
		hypoLabels:   *hypoLabelsFlag,

		dbFileName: *dbFileName,
		runKey:     *runKey,
		resume:     *resume,

		plotFileName: *plotFileName,
		noColor:      *noColor,
	}
}

// splitLabels converts a comma-separated label flag into a label
// slice; an empty flag means default labels.
func splitLabels(flag string) []string {
	if flag == "" {
		return nil
	}
	labels := strings.Split(flag, ",")
	for i := range labels {
		labels[i] = strings.TrimSpace(labels[i])
	}
	return labels
}

// run performs the synthesis and returns the run summary.
func (s *synSettings) run() (*RunSummary, error) {
	startTime := time.Now()

	approach, err := evidence.ParseApproach(s.approachName)
	if err != nil {
		return nil, err
	}

	ll, err := studies.ReadMatrixFile(s.llFileName)
	if err != nil {
		return nil, fmt.Errorf("error reading log-likelihood matrix: %v", err)
	}
	pt, err := studies.ReadMatrixFile(s.ptFileName)
	if err != nil {
		return nil, fmt.Errorf("error reading penalty matrix: %v", err)
	}

	var runIO *archive.RunIO
	if s.dbFileName != "" {
		db, err := bolt.Open(s.dbFileName, 0666, nil)
		if err != nil {
			return nil, fmt.Errorf("error opening archive: %v", err)
		}
		defer db.Close()
		runIO = archive.NewRunIO(db, s.runKey)
	} else if s.resume {
		return nil, errors.New("-resume requires -db")
	}

	acc, err := s.accumulator(approach, runIO, len(ll))
	if err != nil {
		return nil, err
	}

	studyLabels := splitLabels(s.studyLabels)
	if studyLabels == nil && acc != nil && acc.NStudies() > 0 {
		// continue the numbering of the archived studies
		studyLabels = make([]string, len(ll))
		for i := range studyLabels {
			studyLabels[i] = fmt.Sprintf("Study-%d", acc.NStudies()+i+1)
		}
	}

	data, err := studies.NewData(ll, pt, studyLabels, splitLabels(s.hypoLabels))
	if err != nil {
		return nil, err
	}

	if acc == nil {
		acc = evidence.NewAccumulator(approach, data.NHypos())
	}

	res, err := evidence.Extend(acc, data)
	if err != nil {
		return nil, err
	}

	if err := writeResult(os.Stdout, res, !s.noColor); err != nil {
		return nil, err
	}

	if s.plotFileName != "" {
		log.Infof("Writing trajectory plot to %s", s.plotFileName)
		err := evplot.Save(res.StudyWeights, res.CumWeights, s.plotFileName)
		if err != nil {
			log.Error("Error writing trajectory plot:", err)
		}
	}

	summary := newRunSummary(res)
	summary.Version = version
	summary.CommandLine = os.Args

	deltaT := time.Since(startTime)
	log.Noticef("Running time: %v", deltaT)
	summary.Time = deltaT.Seconds()

	if runIO != nil {
		if err := runIO.SaveState(acc.State()); err != nil {
			log.Error("Error archiving accumulator state:", err)
		}
		if err := runIO.SaveSummary(summary); err != nil {
			log.Error("Error archiving run summary:", err)
		}
	}

	return summary, nil
}

// accumulator returns the starting accumulator: a restored one when
// resuming an archived run, nil otherwise (the caller creates a fresh
// one once the data shape is known).
func (s *synSettings) accumulator(approach evidence.EvidenceApproach, runIO *archive.RunIO, newStudies int) (*evidence.Accumulator, error) {
	if !s.resume {
		return nil, nil
	}

	state, err := runIO.LoadState()
	if err != nil {
		return nil, fmt.Errorf("error loading archived state: %v", err)
	}
	if state == nil {
		return nil, fmt.Errorf("no archived run named %q to resume", s.runKey)
	}
	if state.Approach != approach.String() {
		return nil, fmt.Errorf("archived run uses the %s approach, requested %s",
			state.Approach, approach)
	}

	acc, err := evidence.RestoreAccumulator(state)
	if err != nil {
		return nil, err
	}
	log.Noticef("Resuming after %d archived studies, adding %d", acc.NStudies(), newStudies)
	return acc, nil
}
