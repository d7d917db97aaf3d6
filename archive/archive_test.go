package archive

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"

	"github.com/LeonardV/GoricEvSyn/evidence"
)

func openTestDB(tst *testing.T) *bolt.DB {
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "archive.db"), 0666, nil)
	if err != nil {
		tst.Fatal("Error opening database:", err)
	}
	tst.Cleanup(func() { db.Close() })
	return db
}

func TestStateRoundtrip(tst *testing.T) {
	db := openTestDB(tst)
	run := NewRunIO(db, "meta1")

	acc := evidence.NewAccumulator(evidence.EqualEvidence, 2)
	acc.Add([]float64{-10, -12}, []float64{1, 1})
	if err := run.SaveState(acc.State()); err != nil {
		tst.Fatal("Error saving state:", err)
	}

	state, err := run.LoadState()
	if err != nil {
		tst.Fatal("Error loading state:", err)
	}
	if state == nil {
		tst.Fatal("No state found after save")
	}
	if state.Studies != 1 || state.Approach != "equal-evidence" {
		tst.Error("Wrong state:", state)
	}
	if state.SumLL[1] != -12 || state.SumPT[0] != 1 {
		tst.Error("Wrong archived sums:", state)
	}

	if _, err := evidence.RestoreAccumulator(state); err != nil {
		tst.Error("Error restoring accumulator:", err)
	}
}

func TestLoadStateMissing(tst *testing.T) {
	db := openTestDB(tst)

	state, err := NewRunIO(db, "unknown").LoadState()
	if err != nil {
		tst.Error("Error loading missing state:", err)
	}
	if state != nil {
		tst.Error("Unexpected state for an unknown run:", state)
	}
}

func TestSummaryRoundtrip(tst *testing.T) {
	db := openTestDB(tst)
	run := NewRunIO(db, "meta1")

	summary := map[string]interface{}{"approach": "added-evidence"}
	if err := run.SaveSummary(summary); err != nil {
		tst.Fatal("Error saving summary:", err)
	}

	raw, err := run.LoadSummary()
	if err != nil {
		tst.Fatal("Error loading summary:", err)
	}
	if len(raw) == 0 {
		tst.Error("Empty archived summary")
	}

	if _, err := NewRunIO(db, "unknown").LoadSummary(); err == nil {
		tst.Error("No error for an unknown run summary")
	}
}

func TestNilDB(tst *testing.T) {
	if err := SaveData(nil, STATE, []byte("k"), []byte("v")); err != nil {
		tst.Error("Error saving to nil database:", err)
	}
	data, err := LoadData(nil, STATE, []byte("k"))
	if err != nil || data != nil {
		tst.Error("Unexpected result loading from nil database:", data, err)
	}
}
