// Package matrix assembles dense origin-destination matrices from triples.
package matrix

import (
	"fmt"

	"github.com/arloliu/mtxconv/errs"
	"github.com/arloliu/mtxconv/format"
	"github.com/arloliu/mtxconv/zone"
)

// Dense is an n×n float32 matrix stored row-major: cell (i, j) is at i*n+j,
// with i the origin rank and j the destination rank.
type Dense struct {
	n     int
	cells []float32
}

// NewDense allocates an n×n matrix with every cell set to zero.
func NewDense(n int) *Dense {
	return &Dense{n: n, cells: make([]float32, n*n)}
}

// FromValues wraps row-major cells as an n×n matrix without copying.
func FromValues(n int, cells []float32) (*Dense, error) {
	if n < 0 || len(cells) != n*n {
		return nil, fmt.Errorf("%w: %d cells for %d zones", errs.ErrMatrixSizeMismatch, len(cells), n)
	}

	return &Dense{n: n, cells: cells}, nil
}

// N returns the dimension of the matrix.
func (m *Dense) N() int {
	return m.n
}

// At returns cell (i, j).
func (m *Dense) At(i, j int) float32 {
	return m.cells[i*m.n+j]
}

// Set overwrites cell (i, j).
func (m *Dense) Set(i, j int, v float32) {
	m.cells[i*m.n+j] = v
}

// Values returns the row-major cell slice. The slice is shared with m.
func (m *Dense) Values() []float32 {
	return m.cells
}

// Stats counts how triples were applied during assembly.
type Stats struct {
	// Applied is the number of triples written into the matrix, overwrites included.
	Applied int
	// Dropped is the number of triples whose origin or destination is not in the zone set.
	Dropped int
}

// Assemble builds the dense matrix for zones and applies triples in order.
//
// A triple is written only when both its origin and destination have a rank
// in zones; other triples are dropped and counted. A later triple for the same
// cell overwrites an earlier one, values are never accumulated.
func Assemble(triples []format.Triple, zones zone.Set) (*Dense, Stats) {
	idx := zones.Index()
	m := NewDense(zones.Len())

	var stats Stats
	for _, t := range triples {
		i, ok := idx.Rank(t.Origin)
		if !ok {
			stats.Dropped++
			continue
		}
		j, ok := idx.Rank(t.Destination)
		if !ok {
			stats.Dropped++
			continue
		}

		m.Set(i, j, t.Value)
		stats.Applied++
	}

	return m, stats
}
