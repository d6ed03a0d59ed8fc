// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer with the index formula i*cols + j.
//   - Guarantee exclusive ownership: every constructor that receives external
//     values copies them, Clone and Assign deep-copy, nothing hands out the slice.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Ref: O(1); Clone/Assign: O(r*c).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxRef    = "Ref"    // method tag used in error wrappers
	ctxFrom   = "From"   // ctor tag for NewDenseFrom/FromRows
	ctxFlat   = "Flat"   // ctor tag for NewDenseFlat
	ctxAssign = "Assign" // method tag for Assign
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1 after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// The zero value is not usable; build a Dense with one of the constructors.
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c), owned exclusively
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// New returns a 1×1 matrix holding 0.0.
// Complexity: O(1).
func New() *Dense {
	return &Dense{r: 1, c: 1, data: make([]float64, 1)}
}

// NewScalar returns a 1×1 matrix holding v.
// Complexity: O(1).
func NewScalar(v float64) *Dense {
	return &Dense{r: 1, c: 1, data: []float64{v}}
}

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape before any allocation.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom copies an externally owned rows×cols buffer element by element.
// MAIN DESCRIPTION:
//   - The caller keeps ownership of src; it is neither retained nor mutated.
//
// Implementation:
//   - Stage 1: validate the requested shape via NewDense.
//   - Stage 2: validate that src has exactly rows rows of exactly cols values.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions for a non-positive shape, a row count mismatch or a ragged row.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, src [][]float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(src) != rows {
		return nil, fmt.Errorf("Dense.%s: got %d rows, want %d: %w", ctxFrom, len(src), rows, ErrInvalidDimensions)
	}
	var i int
	for i = 0; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, fmt.Errorf("Dense.%s: row %d has %d values, want %d: %w", ctxFrom, i, len(src[i]), cols, ErrInvalidDimensions)
		}
		copy(m.data[i*cols:(i+1)*cols], src[i]) // row i lands at offset i*cols
	}

	return m, nil
}

// FromRows is NewDenseFrom with the shape inferred from src (len(src) × len(src[0])).
// Errors: ErrInvalidDimensions for an empty or ragged src.
func FromRows(src [][]float64) (*Dense, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("Dense.%s: no rows: %w", ctxFrom, ErrInvalidDimensions)
	}

	return NewDenseFrom(len(src), len(src[0]), src)
}

// NewDenseFlat copies a row-major slice of exactly rows*cols values.
// Errors: ErrInvalidDimensions for a non-positive shape or a length mismatch.
// Complexity: O(r*c).
func NewDenseFlat(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Dense.%s: got %d values, want %d: %w", ctxFlat, len(data), rows*cols, ErrInvalidDimensions)
	}
	copy(m.data, data)

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Dims packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfBounds.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set/Ref) wrap with
//     coordinates and method name.
//   - Shared by every accessor so read and write use identical bounds semantics.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfBounds
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfBounds
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfBounds.
// No clamping and no wraparound: negative and past-the-end indices both fail.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfBounds.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Ref returns a writable reference to the element at (row, col).
// MAIN DESCRIPTION:
//   - Mutable accessor: *p = 5 writes straight into the matrix buffer.
//
// Behavior highlights:
//   - Same bounds contract as At/Set (ErrOutOfBounds).
//   - The pointer stays valid until the receiver is reassigned through Assign
//     or an in-place operation, which swap in a fresh buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Ref(row, col int) (*float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy (new buffer, same shape and values).
// Mutations of the clone never reach the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Assign is copy assignment: the receiver releases its buffer and takes a
// fresh deep copy of src (shape included).
// MAIN DESCRIPTION:
//   - m.Assign(m) is a no-op and does not reallocate.
//
// Errors:
//   - ErrNilMatrix when m or src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Assign(src *Dense) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxAssign, ErrNilMatrix)
	}
	if m == src {
		return nil // self-assignment
	}
	m.adopt(src.Clone())

	return nil
}

// adopt moves the storage of a freshly built matrix into m.
// fresh must not be reachable from anywhere else afterwards.
func (m *Dense) adopt(fresh *Dense) {
	m.r, m.c, m.data = fresh.r, fresh.c, fresh.data
}
