// SPDX-License-Identifier: MIT

// Package format renders matrices as text.
//
// It reads values only through the read-only matrix.Matrix interface
// (Rows, Cols, At), so the core matrix package stays free of formatting.
//
//   - String:  "[1, 2]\n[3, 4]\n" with %g values.
//   - Aligned: right-aligned columns of a fixed or computed width.
//   - Write:   Aligned, streamed to an io.Writer.
package format

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cofactor/matrix"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtPad      = " "
)

// ErrNilMatrix is returned when a nil matrix is passed to a formatter.
var ErrNilMatrix = errors.New("format: nil matrix")

// cell formats a single value with the shortest representation that
// round-trips (%g semantics).
func cell(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// isNil reports an untyped nil or a nil *matrix.Dense held in the interface.
func isNil(m matrix.Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*matrix.Dense)

	return ok && d == nil
}

// String renders m row by row: "[a, b]\n[c, d]\n".
// Complexity: O(r*c).
func String(m matrix.Matrix) (string, error) {
	if isNil(m) {
		return "", ErrNilMatrix
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return "", fmt.Errorf("format.String: %w", err)
			}
			b.WriteString(cell(v))
			if j+1 < m.Cols() {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String(), nil
}

// Aligned renders m as right-aligned columns separated by one space, one
// row per line. A width <= 0 uses the widest formatted cell.
// Complexity: O(r*c).
func Aligned(m matrix.Matrix, width int) (string, error) {
	var b strings.Builder
	if err := Write(&b, m, width); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Write streams the Aligned rendering of m to w.
func Write(w io.Writer, m matrix.Matrix, width int) error {
	if isNil(m) {
		return ErrNilMatrix
	}

	rows, cols := m.Rows(), m.Cols()
	cells := make([]string, 0, rows*cols)
	widest := 0
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return fmt.Errorf("format.Write: %w", err)
			}
			s := cell(v)
			if len(s) > widest {
				widest = len(s)
			}
			cells = append(cells, s)
		}
	}
	if width <= 0 {
		width = widest
	}

	var line strings.Builder
	for i = 0; i < rows; i++ {
		line.Reset()
		for j = 0; j < cols; j++ {
			if j > 0 {
				line.WriteString(_fmtPad)
			}
			s := cells[i*cols+j]
			if pad := width - len(s); pad > 0 {
				line.WriteString(strings.Repeat(_fmtPad, pad))
			}
			line.WriteString(s)
		}
		line.WriteString("\n")
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}

	return nil
}
