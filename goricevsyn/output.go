package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/LeonardV/GoricEvSyn/evidence"
	"github.com/LeonardV/GoricEvSyn/matrix"
)

// fmtFloat formats a matrix cell; %g keeps Inf readable.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// writeMatrixTable renders a labeled matrix as a right-aligned table
// with row names in the first column.
func writeMatrixTable(w io.Writer, title string, m *matrix.Labeled) error {
	if _, err := fmt.Fprintf(w, "%s\n", title); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := append([]string{""}, m.ColNames...)
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	rows, cols := m.Dims()
	var data [][]string
	for i := 0; i < rows; i++ {
		row := make([]string, 0, cols+1)
		row = append(row, m.RowNames[i])
		for j := 0; j < cols; j++ {
			row = append(row, fmtFloat(m.At(i, j)))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeResult prints the synthesis result: the cumulative weight
// trajectory, the final weights with the best-supported hypothesis
// highlighted, and the final relative-weight matrix.
func writeResult(w io.Writer, res *evidence.Result, useColors bool) error {
	green := fmt.Sprint
	if useColors {
		green = color.New(color.FgGreen).SprintFunc()
	}

	if _, err := fmt.Fprintf(w, "Approach: %s\n", res.Approach); err != nil {
		return err
	}

	if err := writeMatrixTable(w, "Cumulative evidence weights:", res.CumWeights); err != nil {
		return err
	}
	if err := writeMatrixTable(w, "Final relative weights:", res.Relative); err != nil {
		return err
	}

	best, bestLabel := res.Best()
	for h, label := range res.Data.HypoLabels {
		line := fmt.Sprintf("%s: %s", label, fmtFloat(res.FinalWeights[h]))
		if h == best {
			line = green(line + " *")
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Most supported hypothesis: %s\n", green(bestLabel))
	return err
}
