package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/OutSquareCapital/rustats/matrix"
)

// readMatrix parses path as a headerless CSV file of float64 values,
// treating empty cells and the literal "NaN" as missing.
func readMatrix(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("readMatrix(%s): %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("readMatrix(%s): %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			if field == "" || field == "NaN" {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("readMatrix(%s): row %d col %d: %w", path, i, j, err)
			}
			row[j] = v
		}
		rows[i] = row
	}
	return matrix.FromRows(rows)
}

// writeMatrix writes m to path as a headerless CSV file, rendering
// missing cells as the literal "NaN".
func writeMatrix(path string, m *matrix.Dense) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeMatrix(%s): %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, m.Cols())
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			v := m.Value(row, col)
			if math.IsNaN(v) {
				record[col] = "NaN"
			} else {
				record[col] = strconv.FormatFloat(v, 'g', -1, 64)
			}
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writeMatrix(%s): %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writeMatrix(%s): %w", path, err)
	}
	return nil
}
