package polyply

import (
	"fmt"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// newBlock makes a linear block with one atom per resid passed
func newBlock(name string, nrexcl int, resids ...int) *molecule.Block {
	b := molecule.NewBlock(name, nrexcl)
	for i, resid := range resids {
		b.AddNode(i, graph.Attrs{
			"atomname": fmt.Sprintf("%s%d", name, i),
			"resname":  name,
			"resid":    resid,
		})
		if i > 0 {
			b.AddEdge(i-1, i)
		}
	}
	return b
}

// newForceField makes a force field with the blocks passed
func newForceField(blocks ...*molecule.Block) *molecule.ForceField {
	ff := molecule.NewForceField("test")
	for _, b := range blocks {
		ff.Add(b)
	}
	return ff
}

// linearMeta makes a linear meta-molecule, one node per residue passed
func linearMeta(residues ...graph.Attrs) *molecule.MetaMolecule {
	mm := molecule.NewMetaMolecule("test")
	for i, res := range residues {
		mm.AddNode(i, res)
		if i > 0 {
			mm.AddEdge(i-1, i)
		}
	}
	return mm
}

// res is a meta-molecule residue
func res(resname string, resid int) graph.Attrs {
	return graph.Attrs{"resname": resname, "resid": resid}
}

// itpRes is a meta-molecule residue that's part of a multi-residue block
func itpRes(resname string, resid int, block string) graph.Attrs {
	return graph.Attrs{"resname": resname, "resid": resid, "from_itp": block}
}
