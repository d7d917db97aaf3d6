// Package evplot renders evidence-weight trajectories: per-study
// weights as points and cumulative weights as lines, one series of
// each per hypothesis.
package evplot

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/LeonardV/GoricEvSyn/matrix"
)

// Trajectory creates the evidence-weight trajectory plot. perStudy is
// the S×H matrix of single-study weights, cumulative the (S+1)×H
// matrix of cumulative weights; only the first S rows of cumulative
// are drawn. The legend names every hypothesis plus the two series
// styles ("per study" points, "cumulative" lines).
func Trajectory(perStudy, cumulative *matrix.Labeled) (*plot.Plot, error) {
	nStudies, nHypos := perStudy.Dims()
	cumRows, cumCols := cumulative.Dims()
	if cumCols != nHypos || cumRows < nStudies {
		return nil, errors.New("per-study and cumulative weight matrices don't match")
	}

	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = "Evidence weights"
	p.X.Label.Text = "study"
	p.Y.Label.Text = "weight"
	p.Y.Min = 0
	p.Y.Max = 1
	p.NominalX(perStudy.RowNames...)

	for h := 0; h < nHypos; h++ {
		points := make(plotter.XYs, nStudies)
		lines := make(plotter.XYs, nStudies)
		for s := 0; s < nStudies; s++ {
			points[s].X = float64(s)
			points[s].Y = perStudy.At(s, h)
			lines[s].X = float64(s)
			lines[s].Y = cumulative.At(s, h)
		}

		scatter, err := plotter.NewScatter(points)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = plotutil.Color(h)
		scatter.GlyphStyle.Shape = plotutil.Shape(h)

		line, err := plotter.NewLine(lines)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(h)

		p.Add(scatter, line)
		p.Legend.Add(perStudy.ColNames[h], scatter, line)
	}

	// series-style legend entries
	stylePoints, err := plotter.NewScatter(plotter.XYs{})
	if err != nil {
		return nil, err
	}
	p.Legend.Add("per study", stylePoints)
	styleLine, err := plotter.NewLine(plotter.XYs{})
	if err != nil {
		return nil, err
	}
	p.Legend.Add("cumulative", styleLine)
	p.Legend.Top = true

	return p, nil
}

// Save renders the trajectory plot to a file; the format follows the
// file extension (png, svg, pdf, ...).
func Save(perStudy, cumulative *matrix.Labeled, fn string) error {
	p, err := Trajectory(perStudy, cumulative)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, fn)
}
