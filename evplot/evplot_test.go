package evplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LeonardV/GoricEvSyn/evidence"
	"github.com/LeonardV/GoricEvSyn/studies"
)

func testResult(tst *testing.T) *evidence.Result {
	data, err := studies.NewData(
		[][]float64{{-10, -12}, {-8, -9}, {-21, -20}},
		[][]float64{{1, 1}, {1, 1}, {1, 1}},
		nil, nil)
	if err != nil {
		tst.Fatal("Error creating data:", err)
	}
	return evidence.Synthesize(evidence.AddedEvidence, data)
}

func TestTrajectory(tst *testing.T) {
	res := testResult(tst)

	p, err := Trajectory(res.StudyWeights, res.CumWeights)
	if err != nil {
		tst.Fatal("Error creating plot:", err)
	}
	if p.Y.Max != 1 {
		tst.Error("Weight axis is not limited to [0,1]")
	}
}

func TestTrajectoryShapeMismatch(tst *testing.T) {
	res := testResult(tst)

	if _, err := Trajectory(res.StudyWeights, res.Relative); err == nil {
		tst.Error("No error for mismatching matrices")
	}
}

func TestSave(tst *testing.T) {
	res := testResult(tst)

	fn := filepath.Join(tst.TempDir(), "trajectory.png")
	if err := Save(res.StudyWeights, res.CumWeights, fn); err != nil {
		tst.Fatal("Error saving plot:", err)
	}
	if fi, err := os.Stat(fn); err != nil || fi.Size() == 0 {
		tst.Error("Plot file missing or empty")
	}
}
