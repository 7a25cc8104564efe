// SPDX-License-Identifier: MIT
// Package: quadfield/hierarchy
//
// dense.go — column-indexed gonum export/import of per-vertex fields.
//
// Layout:
//   • Vector fields (N, V, Q, O) map to a 3×n matrix, column i = vertex i.
//   • The scale field S maps to a 2×n matrix.
//   • Exports are copies; mutating the matrix never aliases level storage.

package hierarchy

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Field selects one per-vertex attribute of a Level.
type Field int

const (
	// FieldN selects the normals.
	FieldN Field = iota
	// FieldV selects the positions.
	FieldV
	// FieldQ selects the orientations.
	FieldQ
	// FieldO selects the offsets.
	FieldO
	// FieldS selects the 2-component scale.
	FieldS
)

// String returns the one-letter field name.
func (f Field) String() string {
	switch f {
	case FieldN:
		return "N"
	case FieldV:
		return "V"
	case FieldQ:
		return "Q"
	case FieldO:
		return "O"
	case FieldS:
		return "S"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Rows returns the matrix row count of the field (3 or 2), or 0 when unknown.
func (f Field) Rows() int {
	switch f {
	case FieldN, FieldV, FieldQ, FieldO:
		return 3
	case FieldS:
		return 2
	default:
		return 0
	}
}

// vectors returns the backing slice of a vector field, or nil for S/unknown.
func (lv *Level) vectors(f Field) []r3.Vec {
	switch f {
	case FieldN:
		return lv.N
	case FieldV:
		return lv.V
	case FieldQ:
		return lv.Q
	case FieldO:
		return lv.O
	default:
		return nil
	}
}

// Dense exports field f as a column-indexed matrix.
// Returns ErrUnknownField for an undeclared field and ErrDimensionMismatch for
// an empty level (gonum rejects zero-sized matrices).
// Complexity: O(n).
func (lv *Level) Dense(f Field) (*mat.Dense, error) {
	rows := f.Rows()
	if rows == 0 {
		return nil, fmt.Errorf("Level.Dense(%s): %w", f, ErrUnknownField)
	}
	n := lv.Len()
	if n == 0 {
		return nil, fmt.Errorf("Level.Dense(%s): empty level: %w", f, ErrDimensionMismatch)
	}

	m := mat.NewDense(rows, n, nil)
	if f == FieldS {
		for i, s := range lv.S {
			m.Set(0, i, s[0])
			m.Set(1, i, s[1])
		}

		return m, nil
	}
	for i, v := range lv.vectors(f) {
		m.Set(0, i, v.X)
		m.Set(1, i, v.Y)
		m.Set(2, i, v.Z)
	}

	return m, nil
}

// SetDense overwrites field f from a column-indexed matrix of shape
// Rows()×Len().
// Complexity: O(n).
func (lv *Level) SetDense(f Field, m mat.Matrix) error {
	rows := f.Rows()
	if rows == 0 {
		return fmt.Errorf("Level.SetDense(%s): %w", f, ErrUnknownField)
	}
	r, c := m.Dims()
	if r != rows || c != lv.Len() {
		return fmt.Errorf("Level.SetDense(%s): got %d×%d, want %d×%d: %w",
			f, r, c, rows, lv.Len(), ErrDimensionMismatch)
	}

	if f == FieldS {
		for i := range lv.S {
			lv.S[i] = [2]float64{m.At(0, i), m.At(1, i)}
		}

		return nil
	}
	dst := lv.vectors(f)
	for i := range dst {
		dst[i] = r3.Vec{X: m.At(0, i), Y: m.At(1, i), Z: m.At(2, i)}
	}

	return nil
}
