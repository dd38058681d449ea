// Package polyply is for building fine-grained molecules from meta-molecules,
// residue level graphs, and the blocks of a force field
package polyply

import (
	"context"
	"fmt"

	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
	"golang.org/x/sync/errgroup"
)

// Processor changes one meta-molecule at a time
type Processor interface {
	RunMolecule(mm *molecule.MetaMolecule) (*molecule.MetaMolecule, error)
}

// MapToMolecule is a Processor that makes the fine-grained molecule of a
// meta-molecule. The molecule is a set of disconnected blocks, one per
// residue or per multi-residue fragment, that links connect afterwards.
type MapToMolecule struct {
	// ff is the library of blocks
	ff *molecule.ForceField

	// shared is whether exclusions are normalized on the blocks of ff
	// itself rather than on a copy made for each molecule
	shared bool
}

// Option configures MapToMolecule
type Option func(*MapToMolecule)

// WithSharedLibrary makes the processor change the blocks of its force
// field in place. Molecules processed later see the lowered nrexcl of
// those before them, so they have to be processed one at a time.
func WithSharedLibrary() Option {
	return func(p *MapToMolecule) {
		p.shared = true
	}
}

// NewMapToMolecule returns a processor for the force field ff
func NewMapToMolecule(ff *molecule.ForceField, opts ...Option) *MapToMolecule {
	p := &MapToMolecule{ff: ff}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Shared returns whether the force field's blocks are changed in place
func (p *MapToMolecule) Shared() bool {
	return p.shared
}

// RunMolecule matches the nodes of mm to blocks, makes their exclusion
// distances uniform, and builds the fine-grained molecule. On success mm
// has Molecule and Exclusions set and every node has a "graph" with its
// residue. On failure mm is left as it was.
func (p *MapToMolecule) RunMolecule(mm *molecule.MetaMolecule) (*molecule.MetaMolecule, error) {
	reg, err := classify(mm, p.ff)
	if err != nil {
		return nil, fmt.Errorf("matching %q to blocks: %w", mm.Name, err)
	}

	ff := p.ff
	if !p.shared {
		if ff, err = p.ff.Subset(reg.blockNames(mm.Nodes())); err != nil {
			return nil, err
		}
	}

	report, err := tagExclusions(reg.nodeToBlock, ff)
	if err != nil {
		return nil, err
	}

	mol, residues, err := addBlocks(mm, reg, ff)
	if err != nil {
		return nil, err
	}

	for node, residue := range residues {
		mm.Node(node)[graphAttr] = residue
	}
	mm.Molecule = mol
	mm.Exclusions = report
	return mm, nil
}

// RunSystem runs the processor over every meta-molecule, returning them in
// the same order. Up to workers molecules run at once; a processor with a
// shared library always runs one at a time. The first error stops the run.
func RunSystem(ctx context.Context, p Processor, mms []*molecule.MetaMolecule, workers int) ([]*molecule.MetaMolecule, error) {
	if m, ok := p.(*MapToMolecule); ok && m.Shared() {
		workers = 1
	}
	if workers < 1 {
		workers = 1
	}

	out := make([]*molecule.MetaMolecule, len(mms))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, mm := range mms {
		i, mm := i, mm
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			processed, err := p.RunMolecule(mm)
			if err != nil {
				return err
			}
			out[i] = processed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, ctx.Err()
}
