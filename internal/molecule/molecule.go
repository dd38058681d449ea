// Package molecule is for the blocks (residue templates) of a force field
// and the molecules that are built from them
package molecule

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
)

// ErrNrexclMismatch is returned when merging a block into a molecule
// with a different exclusion distance
var ErrNrexclMismatch = errors.New("cannot merge molecules with different nrexcl")

// Correspondence maps the node ids of a block to the ids they have
// once added to a molecule
type Correspondence map[int]int

// Targets returns the molecule node ids of the correspondence, sorted
func (c Correspondence) Targets() []int {
	return sortedValues(c)
}

// Molecule is a fine-grained molecule built from one or more blocks
type Molecule struct {
	*graph.Graph

	// Nrexcl is the exclusion distance shared by every block in the molecule
	Nrexcl int
}

// NewMolecule returns an empty molecule
func NewMolecule(nrexcl int) *Molecule {
	return &Molecule{Graph: graph.New(), Nrexcl: nrexcl}
}

// MergeMolecule adds the block's nodes and edges to the molecule.
//
// New node ids start after the largest id in the molecule, and resids
// are offset by the resid of that node, so a block starting at resid 1
// continues the molecule's residue numbering.
func (m *Molecule) MergeMolecule(b *Block) (Correspondence, error) {
	offset, residOffset := -1, 0
	if last, ok := m.MaxNode(); ok {
		if m.Nrexcl != b.Nrexcl {
			return nil, fmt.Errorf("merging %s (nrexcl %d) into molecule (nrexcl %d): %w",
				b.Name, b.Nrexcl, m.Nrexcl, ErrNrexclMismatch)
		}
		offset = last
		residOffset, _ = Resid(m.Node(last))
	} else {
		m.Nrexcl = b.Nrexcl
	}

	correspondence := make(Correspondence, b.Len())
	for i, id := range b.Nodes() {
		newID := offset + 1 + i
		correspondence[id] = newID

		attrs := b.Node(id).Copy()
		resid, ok := Resid(attrs)
		if !ok {
			resid = 1
		}
		attrs["resid"] = resid + residOffset
		m.AddNode(newID, attrs)
	}
	for _, e := range b.Edges() {
		m.AddEdge(correspondence[e[0]], correspondence[e[1]])
	}

	return correspondence, nil
}

// Copy returns a deep copy of the molecule's structure
func (m *Molecule) Copy() *Molecule {
	return &Molecule{Graph: m.Graph.Copy(), Nrexcl: m.Nrexcl}
}

// Resid returns the "resid" attribute as an int. A float resid has to be
// a whole number.
func Resid(attrs graph.Attrs) (int, bool) {
	switch v := attrs["resid"].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	}
	return 0, false
}
