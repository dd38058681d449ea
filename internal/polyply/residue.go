package polyply

import (
	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// correspondenceToResidue makes the graph of the residue that node stands
// for in mm. The residue holds the nodes of mol, among the targets of the
// correspondence, with the same resid as node. Every attribute of node is
// propagated onto the residue's nodes, except "graph" and "seqID".
func correspondenceToResidue(
	mm *molecule.MetaMolecule,
	mol *molecule.Molecule,
	correspondence molecule.Correspondence,
	node int,
) *graph.Graph {
	meta := mm.Node(node)
	resid, _ := molecule.Resid(meta)

	var ids []int
	for _, id := range correspondence.Targets() {
		if r, ok := molecule.Resid(mol.Node(id)); ok && r == resid {
			ids = append(ids, id)
		}
	}

	residue := mol.Subgraph(ids)
	for _, id := range residue.Nodes() {
		attrs := residue.Node(id)
		for k, v := range meta {
			if k == graphAttr || k == seqIDAttr {
				continue
			}
			attrs[k] = v
		}
	}
	return residue
}
