package studies

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseMatrix reads a numeric matrix: one row per line, values
// separated by whitespace. Blank lines and lines starting with '#'
// are skipped. Rows may have unequal lengths here; shapes are checked
// by NewData.
func ParseMatrix(rd io.Reader) ([][]float64, error) {
	var m [][]float64

	scanner := bufio.NewScanner(rd)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, 0, len(fields))
		for _, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: cannot parse value %q", lineno, field)
			}
			row = append(row, v)
		}
		m = append(m, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// ReadMatrixFile reads a numeric matrix from a file.
func ReadMatrixFile(fn string) ([][]float64, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMatrix(f)
}
