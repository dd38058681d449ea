package molecule

import (
	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
)

// MetaMolecule is a residue level graph, one node per residue. Nodes
// have a "resname" and "resid", and an optional "from_itp" naming the
// multi-residue block they're part of.
type MetaMolecule struct {
	*graph.Graph

	// Name of the molecule
	Name string

	// Molecule is the fine-grained molecule, set once the
	// meta-molecule has been mapped to blocks
	Molecule *Molecule

	// Exclusions records how block exclusion distances were
	// changed while building Molecule
	Exclusions *ExclusionReport
}

// ExclusionReport is the result of making the exclusion distance
// (nrexcl) uniform across the blocks of one molecule
type ExclusionReport struct {
	// Min is the exclusion distance every block was set to
	Min int `json:"min"`

	// Original nrexcl of every referenced block
	Original map[string]int `json:"original"`

	// Tagged blocks had a higher nrexcl and now carry "exclude" on their nodes
	Tagged []string `json:"tagged,omitempty"`
}

// NewMetaMolecule returns an empty meta-molecule
func NewMetaMolecule(name string) *MetaMolecule {
	return &MetaMolecule{Graph: graph.New(), Name: name}
}

// Residue returns the fine-grained graph of one residue node, nil if
// the meta-molecule hasn't been mapped yet
func (mm *MetaMolecule) Residue(node int) *graph.Graph {
	attrs := mm.Node(node)
	if attrs == nil {
		return nil
	}
	g, _ := attrs["graph"].(*graph.Graph)
	return g
}
