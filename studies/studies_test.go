package studies

import (
	"strings"
	"testing"
)

func TestParseMatrix(tst *testing.T) {
	input := `# log-likelihoods, one row per study
-10.0 -12
	-8 -9.5

`
	m, err := ParseMatrix(strings.NewReader(input))
	if err != nil {
		tst.Fatal("Error parsing matrix:", err)
	}
	if len(m) != 2 || len(m[0]) != 2 {
		tst.Fatalf("Wrong matrix shape: %dx%d", len(m), len(m[0]))
	}
	if m[0][1] != -12 || m[1][1] != -9.5 {
		tst.Error("Wrong matrix values:", m)
	}
}

func TestParseMatrixBadValue(tst *testing.T) {
	_, err := ParseMatrix(strings.NewReader("-10 x\n"))
	if err == nil {
		tst.Error("No error for a non-numeric value")
	}
}

func TestNewDataDefaults(tst *testing.T) {
	data, err := NewData(
		[][]float64{{-10, -12, -11}, {-8, -9, -8.5}},
		[][]float64{{1, 2, 3}, {1, 2, 3}},
		nil, nil)
	if err != nil {
		tst.Fatal("Error creating data:", err)
	}

	if data.NStudies() != 2 || data.NHypos() != 3 {
		tst.Errorf("Wrong dimensions: %dx%d", data.NStudies(), data.NHypos())
	}
	if data.StudyLabels[0] != "Study-1" || data.StudyLabels[1] != "Study-2" {
		tst.Error("Wrong study labels:", data.StudyLabels)
	}
	if data.HypoLabels[0] != "H1" || data.HypoLabels[2] != "Hu" {
		tst.Error("Wrong hypothesis labels:", data.HypoLabels)
	}

	row := data.LLRow(1)
	if row[0] != -8 || row[2] != -8.5 {
		tst.Error("Wrong log-likelihood row:", row)
	}
}

func TestNewDataValidation(tst *testing.T) {
	ll := [][]float64{{-10, -12}, {-8, -9}}
	pt := [][]float64{{1, 1}, {1, 1}}

	cases := []struct {
		name        string
		ll, pt      [][]float64
		studyLabels []string
		hypoLabels  []string
	}{
		{"empty ll", nil, pt, nil, nil},
		{"empty row", [][]float64{{}}, pt, nil, nil},
		{"ragged ll", [][]float64{{-10, -12}, {-8}}, pt, nil, nil},
		{"row count mismatch", ll, [][]float64{{1, 1}}, nil, nil},
		{"column count mismatch", ll, [][]float64{{1}, {1}}, nil, nil},
		{"study label count", ll, pt, []string{"only one"}, nil},
		{"hypothesis label count", ll, pt, nil, []string{"H1", "H2", "Hu"}},
	}

	for _, c := range cases {
		_, err := NewData(c.ll, c.pt, c.studyLabels, c.hypoLabels)
		if err == nil {
			tst.Error("No error for", c.name)
			continue
		}
		if _, ok := err.(*ValidationError); !ok {
			tst.Errorf("%s: error is not a ValidationError: %v", c.name, err)
		}
	}
}

func TestValidationErrorMessage(tst *testing.T) {
	_, err := NewData([][]float64{{-10, -12}}, [][]float64{{1}}, nil, nil)
	if err == nil {
		tst.Fatal("No error for shape mismatch")
	}
	msg := err.Error()
	if !strings.Contains(msg, "penalty matrix") {
		tst.Error("Error doesn't name the offending argument:", msg)
	}
}
