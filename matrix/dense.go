package matrix

import "fmt"

// denseErrorf wraps an underlying error with Dense method context.
// Example message shape: "Dense.At(3,7): matrix: index out of bounds".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A cell holding math.NaN() represents a missing observation; every
// driver in this module treats NaN as data, never as an error.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zero.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewNaN creates an r×c Dense matrix with every cell initialized to NaN.
// Useful for building output matrices whose warm-up rows are left
// unset by a moving-window driver and must read back as missing.
// Complexity: O(r*c).
func NewNaN(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = nan
	}
	return m, nil
}

// FromRows builds a Dense from row-major literal data: each element of
// rows is one matrix row, and every row must share the same length.
// Stage 1 (Validate): reject empty input and ragged rows.
// Stage 2 (Execute): copy row by row into flat storage.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("matrix.FromRows: row %d has length %d, want %d: %w", i, len(row), cols, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// FromColumns builds a Dense from column-major literal data: each
// element of cols is one matrix column, and every column must share
// the same length. This is the orientation a caller assembling
// per-series data (one slice per instrument, say) naturally has on hand.
// Complexity: O(r*c).
func FromColumns(cols [][]float64) (*Dense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmptyInput
	}
	rows := len(cols[0])
	m, err := NewDense(rows, len(cols))
	if err != nil {
		return nil, err
	}
	for j, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("matrix.FromColumns: column %d has length %d, want %d: %w", j, len(col), rows, ErrRaggedRows)
		}
		for i, v := range col {
			m.data[i*m.c+j] = v
		}
	}
	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrIndexOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrIndexOutOfBounds
	}
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrIndexOutOfBounds on a bad index.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrIndexOutOfBounds on a bad index.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	m.data[idx] = v
	return nil
}

// Value is the unchecked counterpart of At, for driver hot loops that
// already know (row, col) is in range because they derived it from
// m.Rows()/m.Cols() themselves. It panics on an out-of-range index,
// same as a slice index would.
// Complexity: O(1).
func (m *Dense) Value(row, col int) float64 {
	return m.data[row*m.c+col]
}

// SetValue is the unchecked counterpart of Set. See Value.
// Complexity: O(1).
func (m *Dense) SetValue(row, col int, v float64) {
	m.data[row*m.c+col] = v
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging and log output.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var s string
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}
	return s
}
