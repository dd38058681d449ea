package polyply

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/chrisjonesBSU/polyply-1.0/internal/graph"
	"github.com/chrisjonesBSU/polyply-1.0/internal/molecule"
)

// Atom is a single node of the fine-grained molecule
type Atom struct {
	// ID of the atom in the molecule
	ID int `json:"id"`

	// Name of the atom, eg "BB"
	Name string `json:"name,omitempty"`

	// Exclude is the nrexcl of the atom's block before it was lowered
	Exclude int `json:"exclude,omitempty"`
}

// Residue is a meta-molecule node with its atoms
type Residue struct {
	// Resid of the residue
	Resid int `json:"resid"`

	// Resname of the residue
	Resname string `json:"resname,omitempty"`

	// Block used to build the residue, when from a multi-residue block
	FromITP string `json:"fromItp,omitempty"`

	// Atoms in the residue
	Atoms []Atom `json:"atoms"`
}

// MoleculeOutput is the summary of one built molecule
type MoleculeOutput struct {
	// Name of the meta-molecule
	Name string `json:"name"`

	// AtomCount of the fine-grained molecule
	AtomCount int `json:"atomCount"`

	// Nrexcl of the fine-grained molecule
	Nrexcl int `json:"nrexcl"`

	// Exclusions is how block exclusions were made uniform
	Exclusions *molecule.ExclusionReport `json:"exclusions,omitempty"`

	// Residues in resid order
	Residues []Residue `json:"residues"`

	// Bonds between atoms of the fine-grained molecule
	Bonds [][2]int `json:"bonds"`
}

// Output is the result of a run
type Output struct {
	// ForceField the blocks were taken from
	ForceField string `json:"forceField"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	// Molecules built
	Molecules []MoleculeOutput `json:"molecules"`
}

// newMoleculeOutput summarizes a processed meta-molecule
func newMoleculeOutput(mm *molecule.MetaMolecule) (MoleculeOutput, error) {
	if mm.Molecule == nil {
		return MoleculeOutput{}, fmt.Errorf("meta-molecule %q has no molecule", mm.Name)
	}

	out := MoleculeOutput{
		Name:       mm.Name,
		AtomCount:  mm.Molecule.Len(),
		Nrexcl:     mm.Molecule.Nrexcl,
		Exclusions: mm.Exclusions,
		Bonds:      mm.Molecule.Edges(),
	}

	nodes, err := byResid(mm)
	if err != nil {
		return MoleculeOutput{}, err
	}
	for _, node := range nodes {
		attrs := mm.Node(node)
		res := Residue{Atoms: []Atom{}}
		res.Resid, _ = molecule.Resid(attrs)
		res.Resname, _ = attrs[resnameAttr].(string)
		res.FromITP, _ = attrs[fromITPAttr].(string)
		if residue := mm.Residue(node); residue != nil {
			res.Atoms = atoms(residue)
		}
		out.Residues = append(out.Residues, res)
	}

	return out, nil
}

// atoms lists the nodes of a residue graph by id
func atoms(g *graph.Graph) []Atom {
	ids := g.Nodes()
	sort.Ints(ids)

	list := make([]Atom, 0, len(ids))
	for _, id := range ids {
		attrs := g.Node(id)
		a := Atom{ID: id}
		a.Name, _ = attrs["atomname"].(string)
		a.Exclude, _ = attrs[excludeAttr].(int)
		list = append(list, a)
	}
	return list
}

// writeJSON writes the processed meta-molecules to filename
func writeJSON(filename, forceField string, mms []*molecule.MetaMolecule, seconds float64, indent bool) ([]byte, error) {
	// same format as log.Println
	t := time.Now()
	output := Output{
		ForceField: forceField,
		Time: fmt.Sprintf(
			"%d/%02d/%02d %02d:%02d:%02d",
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
		),
		Execution: seconds,
	}

	for _, mm := range mms {
		mo, err := newMoleculeOutput(mm)
		if err != nil {
			return nil, err
		}
		output.Molecules = append(output.Molecules, mo)
	}

	var data []byte
	var err error
	if indent {
		data, err = json.MarshalIndent(output, "", "  ")
	} else {
		data, err = json.Marshal(output)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to serialize the output: %w", err)
	}

	if filename != "" {
		if err = os.WriteFile(filename, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write the output: %w", err)
		}
	}

	return data, nil
}
