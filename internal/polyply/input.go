package polyply

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
	"gopkg.in/yaml.v3"
)

// blockFile is a single block in a force field file
type blockFile struct {
	// exclusion distance, required
	Nrexcl *int `yaml:"nrexcl"`

	// atoms in the block, each a map of node attributes
	Atoms []map[string]interface{} `yaml:"atoms"`

	// bonded pairs of atoms, by index in Atoms
	Edges [][]int `yaml:"edges"`
}

// forceFieldFile is the YAML layout of a force field
type forceFieldFile struct {
	Name   string               `yaml:"name"`
	Blocks map[string]blockFile `yaml:"blocks"`
}

// metaMoleculeFile is a single meta-molecule in an input file
type metaMoleculeFile struct {
	Name string `yaml:"name"`

	// residues, each a map of node attributes
	Residues []map[string]interface{} `yaml:"residues"`

	// bonded pairs of residues, by index in Residues
	Edges [][]int `yaml:"edges"`
}

// systemFile is the YAML layout of a list of meta-molecules
type systemFile struct {
	Molecules []metaMoleculeFile `yaml:"molecules"`
}

// ReadForceField reads a force field of blocks from a YAML file
func ReadForceField(path string) (*molecule.ForceField, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read force field: %w", err)
	}
	return parseForceField(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// parseForceField turns YAML into a force field. name is used if the
// file doesn't name the force field itself.
func parseForceField(data []byte, name string) (*molecule.ForceField, error) {
	var file forceFieldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse force field: %w", err)
	}
	if file.Name != "" {
		name = file.Name
	}

	ff := molecule.NewForceField(name)
	for blockName, bf := range file.Blocks {
		if bf.Nrexcl == nil {
			return nil, fmt.Errorf("block %s has no nrexcl", blockName)
		}

		b := molecule.NewBlock(blockName, *bf.Nrexcl)
		for i, atom := range bf.Atoms {
			attrs := graph.Attrs(atom)
			if attrs == nil {
				attrs = graph.Attrs{}
			}
			if _, ok := attrs[residAttr]; !ok {
				attrs[residAttr] = 1
			}
			if _, ok := attrs[resnameAttr]; !ok {
				attrs[resnameAttr] = blockName
			}
			b.AddNode(i, attrs)
		}
		if err := addEdges(b.Graph, bf.Edges); err != nil {
			return nil, fmt.Errorf("block %s: %w", blockName, err)
		}
		ff.Add(b)
	}

	return ff, nil
}

// ReadMetaMolecules reads a list of meta-molecules from a YAML file
func ReadMetaMolecules(path string) ([]*molecule.MetaMolecule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read meta-molecules: %w", err)
	}
	return parseMetaMolecules(data)
}

// parseMetaMolecules turns YAML into meta-molecules. Residues without
// a resid are numbered by their position, starting at 1.
func parseMetaMolecules(data []byte) ([]*molecule.MetaMolecule, error) {
	var file systemFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse meta-molecules: %w", err)
	}

	var mms []*molecule.MetaMolecule
	for i, mf := range file.Molecules {
		name := mf.Name
		if name == "" {
			name = fmt.Sprintf("molecule_%d", i)
		}
		if len(mf.Residues) == 0 {
			return nil, fmt.Errorf("meta-molecule %s has no residues", name)
		}

		mm := molecule.NewMetaMolecule(name)
		for j, res := range mf.Residues {
			attrs := graph.Attrs(res)
			if attrs == nil {
				attrs = graph.Attrs{}
			}
			if _, ok := attrs[resnameAttr]; !ok {
				if _, ok := attrs[fromITPAttr]; !ok {
					return nil, fmt.Errorf("meta-molecule %s: residue %d has neither %s nor %s", name, j, resnameAttr, fromITPAttr)
				}
			}
			if _, ok := attrs[residAttr]; !ok {
				attrs[residAttr] = j + 1
			}
			mm.AddNode(j, attrs)
		}
		if err := addEdges(mm.Graph, mf.Edges); err != nil {
			return nil, fmt.Errorf("meta-molecule %s: %w", name, err)
		}
		mms = append(mms, mm)
	}

	return mms, nil
}

// addEdges adds pairs of node indexes to g
func addEdges(g *graph.Graph, edges [][]int) error {
	for _, e := range edges {
		if len(e) != 2 {
			return fmt.Errorf("edge %v is not a pair", e)
		}
		if !g.HasNode(e[0]) || !g.HasNode(e[1]) {
			return fmt.Errorf("edge %v refers to a missing node", e)
		}
		g.AddEdge(e[0], e[1])
	}
	return nil
}
