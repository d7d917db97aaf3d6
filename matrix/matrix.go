// Package matrix provides float64 matrices with named rows and
// columns, as used in synthesis results and reports.
package matrix

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gonum/matrix/mat64"
)

// Labeled is a dense matrix with row and column names.
type Labeled struct {
	*mat64.Dense
	RowNames []string
	ColNames []string
}

// NewLabeled wraps a dense matrix with row and column names.
func NewLabeled(m *mat64.Dense, rowNames, colNames []string) (*Labeled, error) {
	rows, cols := m.Dims()
	if len(rowNames) != rows {
		return nil, errors.New("number of row names doesn't match matrix size")
	}
	if len(colNames) != cols {
		return nil, errors.New("number of column names doesn't match matrix size")
	}
	return &Labeled{Dense: m, RowNames: rowNames, ColNames: colNames}, nil
}

// FromRows creates a labeled matrix from a slice of equally sized
// rows.
func FromRows(data [][]float64, rowNames, colNames []string) (*Labeled, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, errors.New("matrix dimensions should be > 0")
	}
	cols := len(data[0])
	flat := make([]float64, 0, len(data)*cols)
	for _, row := range data {
		if len(row) != cols {
			return nil, errors.New("matrix rows have unequal lengths")
		}
		flat = append(flat, row...)
	}
	return NewLabeled(mat64.NewDense(len(data), cols, flat), rowNames, colNames)
}

// Row returns a copy of row i.
func (m *Labeled) Row(i int) []float64 {
	_, cols := m.Dims()
	return mat64.Row(make([]float64, cols), i, m.Dense)
}

// String returns a truncated textual rendering for logging.
func (m *Labeled) String() string {
	var buffer bytes.Buffer
	if m == nil || m.Dense == nil {
		return "<Uninitialized matrix>"
	}
	rows, cols := m.Dims()
	buffer.WriteString("<Matrix\n")
	for i := 0; i < rows; i++ {
		if i == 10 {
			buffer.WriteString("...\n")
			break
		}
		buffer.WriteString("  ")
		buffer.WriteString(m.RowNames[i])
		for j := 0; j < cols; j++ {
			if j == 10 {
				buffer.WriteString("\t...")
				break
			}
			buffer.WriteByte('\t')
			buffer.WriteString(strconv.FormatFloat(m.At(i, j), 'E', 3, 64))
		}
		buffer.WriteByte('\n')
	}
	buffer.WriteByte('>')
	return buffer.String()
}

// Rows returns the matrix contents as a slice of rows, for JSON
// output.
func (m *Labeled) Rows() [][]float64 {
	rows, cols := m.Dims()
	res := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		res[i] = mat64.Row(make([]float64, cols), i, m.Dense)
	}
	return res
}
