package molecule

import (
	"sort"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
)

// Block is a template for one residue, or for a fragment of several
// residues read from an existing topology
type Block struct {
	*graph.Graph

	// Name of the block in its force field
	Name string

	// Nrexcl is the number of bonds within which non-bonded
	// interactions are excluded
	Nrexcl int
}

// NewBlock returns an empty block
func NewBlock(name string, nrexcl int) *Block {
	return &Block{Graph: graph.New(), Name: name, Nrexcl: nrexcl}
}

// ToMolecule makes a new molecule from the block. Node ids are kept, so
// the block to molecule correspondence is the identity.
func (b *Block) ToMolecule() *Molecule {
	m := NewMolecule(b.Nrexcl)
	for _, id := range b.Nodes() {
		attrs := b.Node(id).Copy()
		if _, ok := Resid(attrs); !ok {
			attrs["resid"] = 1
		}
		m.AddNode(id, attrs)
	}
	for _, e := range b.Edges() {
		m.AddEdge(e[0], e[1])
	}
	return m
}

// Copy returns a deep copy of the block
func (b *Block) Copy() *Block {
	return &Block{Graph: b.Graph.Copy(), Name: b.Name, Nrexcl: b.Nrexcl}
}

// Resids returns the distinct resids in the block, sorted
func (b *Block) Resids() []int {
	seen := make(map[int]bool)
	for _, id := range b.Nodes() {
		if resid, ok := Resid(b.Node(id)); ok {
			seen[resid] = true
		} else {
			seen[1] = true
		}
	}
	var resids []int
	for resid := range seen {
		resids = append(resids, resid)
	}
	sort.Ints(resids)
	return resids
}

func sortedValues(m map[int]int) []int {
	values := make([]int, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}
