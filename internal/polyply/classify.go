package polyply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// meta-molecule node attributes
const (
	resnameAttr = "resname"
	residAttr   = "resid"
	fromITPAttr = "from_itp"
	graphAttr   = "graph"
	seqIDAttr   = "seqID"
	excludeAttr = "exclude"
)

// ErrResidNumbering is returned when the resids of a meta-molecule don't
// number its nodes 1 to N. Merged blocks continue the molecule's resids
// from the last one, so any other numbering leaves nodes without atoms.
var ErrResidNumbering = errors.New("resids must number the residues from 1 without gaps or repeats")

// Fragment is a set of meta-molecule nodes that are built together
// from one multi-residue block
type Fragment struct {
	// Block is the name of the multi-residue block
	Block string

	// Nodes of the meta-molecule in this fragment, sorted
	Nodes []int
}

// InconsistentFragmentError is returned when the nodes of one connected
// fragment name more than one block in "from_itp"
type InconsistentFragmentError struct {
	// Nodes in the fragment
	Nodes []int

	// Blocks named by the nodes, in node order
	Blocks []string
}

func (e *InconsistentFragmentError) Error() string {
	return fmt.Sprintf("fragment with nodes %v refers to more than one block: %s",
		e.Nodes, strings.Join(e.Blocks, ", "))
}

// registry is the mapping from meta-molecule nodes to blocks. It's
// built once by classify and only read afterwards.
type registry struct {
	// nodeToBlock is the name of the block for every node
	nodeToBlock map[int]string

	// nodeToFragment is the index in fragments for fragment nodes
	nodeToFragment map[int]int

	// fragments in the order they were found
	fragments []Fragment

	// order is the nodes sorted by resid, the order they're built in
	order []int
}

// fragment returns the fragment a node belongs to, if any
func (r *registry) fragment(node int) (int, bool) {
	i, ok := r.nodeToFragment[node]
	return i, ok
}

// blockNames returns the distinct block names referenced, in node order
func (r *registry) blockNames(nodes []int) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range nodes {
		name := r.nodeToBlock[n]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// classify matches every node of the meta-molecule to a block in ff.
//
// A node is either a single residue, whose block is its resname, or part
// of a fragment: a connected set of nodes that all have "from_itp". All
// the nodes of a fragment have to name the same block.
//
// Two fragments that are bonded to one another end up in one connected
// set and fail the check even if each is consistent on its own.
//
// Every check is made here, before anything is changed: resids, block
// names and fragments.
func classify(mm *molecule.MetaMolecule, ff *molecule.ForceField) (*registry, error) {
	order, err := byResid(mm)
	if err != nil {
		return nil, err
	}
	for i, node := range order {
		if resid, _ := molecule.Resid(mm.Node(node)); resid != i+1 {
			return nil, fmt.Errorf("node %d has %s %d, want %d: %w", node, residAttr, resid, i+1, ErrResidNumbering)
		}
	}

	reg := &registry{
		nodeToBlock:    make(map[int]string),
		nodeToFragment: make(map[int]int),
		order:          order,
	}

	fromITP := make(map[int]string)
	for node, v := range mm.NodeAttr(fromITPAttr) {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("node %d: %s must be a string, got %T", node, fromITPAttr, v)
		}
		fromITP[node] = name
	}

	// every "from_itp" node is in the restart graph, even one that only
	// has edges to regular nodes (or none at all)
	restart := graph.New()
	for _, node := range mm.Nodes() {
		if _, ok := fromITP[node]; ok {
			restart.AddNode(node, nil)
			continue
		}

		resname, ok := mm.Node(node)[resnameAttr].(string)
		if !ok {
			return nil, fmt.Errorf("node %d has no %s", node, resnameAttr)
		}
		reg.nodeToBlock[node] = resname
	}
	for _, e := range mm.DFSEdges() {
		if restart.HasNode(e[0]) && restart.HasNode(e[1]) {
			restart.AddEdge(e[0], e[1])
		}
	}

	for _, nodes := range restart.ConnectedComponents() {
		name := fromITP[nodes[0]]
		for _, n := range nodes[1:] {
			if fromITP[n] != name {
				blocks := make([]string, 0, len(nodes))
				for _, m := range nodes {
					blocks = append(blocks, fromITP[m])
				}
				return nil, &InconsistentFragmentError{Nodes: nodes, Blocks: blocks}
			}
		}

		reg.fragments = append(reg.fragments, Fragment{Block: name, Nodes: nodes})
		for _, n := range nodes {
			reg.nodeToBlock[n] = name
			reg.nodeToFragment[n] = len(reg.fragments) - 1
		}
	}

	for _, name := range reg.blockNames(mm.Nodes()) {
		if _, err := ff.Block(name); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
