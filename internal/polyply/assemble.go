package polyply

import (
	"fmt"
	"sort"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// byResid returns the nodes of the meta-molecule sorted by resid. Nodes
// with the same resid keep their id order.
func byResid(mm *molecule.MetaMolecule) ([]int, error) {
	nodes := mm.Nodes()
	resids := make(map[int]int, len(nodes))
	for _, n := range nodes {
		resid, ok := molecule.Resid(mm.Node(n))
		if !ok {
			if v, set := mm.Node(n)[residAttr]; set {
				return nil, fmt.Errorf("node %d: %s %v is not an integer", n, residAttr, v)
			}
			return nil, fmt.Errorf("node %d has no %s", n, residAttr)
		}
		resids[n] = resid
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if resids[nodes[i]] != resids[nodes[j]] {
			return resids[nodes[i]] < resids[nodes[j]]
		}
		return nodes[i] < nodes[j]
	})
	return nodes, nil
}

// addBlocks builds the fine-grained molecule for mm from the blocks in ff.
// The molecule is made of disconnected blocks that links join later.
//
// Nodes are added in resid order. A node in a fragment adds the fragment's
// block the first time the fragment is seen, and the other nodes of the
// fragment reuse that merge. Every other node adds its own block.
//
// Residue graphs are returned by node rather than set on mm, so a failed
// build leaves mm as it was. A node whose resid matches no atom of its
// block is an error.
func addBlocks(mm *molecule.MetaMolecule, reg *registry, ff *molecule.ForceField) (*molecule.Molecule, map[int]*graph.Graph, error) {
	nodes := reg.order
	if len(nodes) == 0 {
		return nil, nil, fmt.Errorf("meta-molecule %q has no residues", mm.Name)
	}

	residues := make(map[int]*graph.Graph, len(nodes))

	// correspondences of the fragments already in the molecule, by fragment index
	added := make(map[int]molecule.Correspondence)

	start := nodes[0]
	b, err := ff.Block(reg.nodeToBlock[start])
	if err != nil {
		return nil, nil, err
	}
	mol := b.ToMolecule()

	if frag, ok := reg.fragment(start); ok {
		correspondence := make(molecule.Correspondence, mol.Len())
		for _, id := range mol.Nodes() {
			correspondence[id] = id
		}
		added[frag] = correspondence
		residues[start] = correspondenceToResidue(mm, mol, correspondence, start)
		if residues[start].Len() == 0 {
			return nil, nil, emptyResidueError(mm, start)
		}
	} else {
		// the block is the whole residue
		residues[start] = mol.Copy().Graph
	}

	for _, node := range nodes[1:] {
		frag, inFragment := reg.fragment(node)
		correspondence, merged := added[frag]
		if !inFragment || !merged {
			b, err := ff.Block(reg.nodeToBlock[node])
			if err != nil {
				return nil, nil, err
			}
			if correspondence, err = mol.MergeMolecule(b); err != nil {
				return nil, nil, fmt.Errorf("adding residue %d of %q: %w", node, mm.Name, err)
			}
			if inFragment {
				added[frag] = correspondence
			}
		}

		residues[node] = correspondenceToResidue(mm, mol, correspondence, node)
		if residues[node].Len() == 0 {
			return nil, nil, emptyResidueError(mm, node)
		}
	}

	return mol, residues, nil
}

func emptyResidueError(mm *molecule.MetaMolecule, node int) error {
	return fmt.Errorf("residue %d of %q (%s %v) matches no atoms of its block", node, mm.Name, residAttr, mm.Node(node)[residAttr])
}
