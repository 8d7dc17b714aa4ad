/*
Package sparse implements a simple type for sparse integer matrices.
It is used for LL(1) parse tables, where rows are non-terminals, columns
are terminals and entries are rule numbers. Most of the cells of such a
table are empty.

This implementation uses the COO algorithm (a.k.a. triplet-encoding),
with triplets kept sorted by (row, column).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     old := M.Set(2, 3, 4711)       // set a value, old is -1
//     v := M.Value(2, 3)             // returns 4711
//     old = M.Set(2, 3, 123)         // overwrite, old is 4711
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// Values cannot be deleted. Clients detecting conflicting entries should check
// the return value of Set.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// find returns the index of the first triplet not stored left of (i,j).
func (m *IntMatrix) find(i, j int) int {
	return sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
}

// Value returns the value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	k := m.find(i, j)
	if k < len(m.values) && m.values[k].storedAt(i, j) {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Returns the value previously
// stored at (i,j), which is NullValue for an empty cell.
// Panics if (i,j) is out of range.
func (m *IntMatrix) Set(i, j int, value int32) int32 {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at := m.find(i, j)
	if at < len(m.values) && m.values[at].storedAt(i, j) {
		old := m.values[at].value
		m.values[at].value = value
		return old
	}
	tnew := triplet{row: i, col: j, value: value}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m.nullval
}

// Row returns the column indices of all non-null entries in row i, in ascending order.
func (m *IntMatrix) Row(i int) []int {
	var cols []int
	for k := m.find(i, 0); k < len(m.values) && m.values[k].row == i; k++ {
		if m.values[k].value != m.nullval {
			cols = append(cols, m.values[k].col)
		}
	}
	return cols
}

// Each calls f for every non-null entry, ordered by row and column.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		if t.value != m.nullval {
			f(t.row, t.col, t.value)
		}
	}
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}
