package polyply

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadForceField(t *testing.T) {
	ff, err := ReadForceField(filepath.Join("testdata", "martini.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if ff.Name != "martini3" {
		t.Errorf("ReadForceField() name = %s, want martini3", ff.Name)
	}
	if got := ff.Names(); !reflect.DeepEqual(got, []string{"LYSO", "PEO", "PS"}) {
		t.Errorf("ReadForceField() blocks = %v", got)
	}

	lyso := ff.Blocks["LYSO"]
	if lyso.Nrexcl != 3 || lyso.Len() != 5 {
		t.Errorf("ReadForceField() LYSO nrexcl = %d, atoms = %d", lyso.Nrexcl, lyso.Len())
	}
	if got := lyso.Resids(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("ReadForceField() LYSO resids = %v", got)
	}

	// defaults for single residue blocks
	peo := ff.Blocks["PEO"].Node(0)
	if peo["resid"] != 1 || peo["resname"] != "PEO" {
		t.Errorf("ReadForceField() PEO atom = %v", peo)
	}

	if got := len(ff.Blocks["PS"].Edges()); got != 4 {
		t.Errorf("ReadForceField() PS edges = %d, want 4", got)
	}
}

func Test_parseForceField(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantName string
		wantErr  bool
	}{
		{
			"name from the file name",
			"blocks:\n  A:\n    nrexcl: 1\n    atoms: [{atomname: A}]\n",
			"fallback",
			false,
		},
		{
			"no nrexcl",
			"blocks:\n  A:\n    atoms: [{atomname: A}]\n",
			"",
			true,
		},
		{
			"edge to a missing atom",
			"blocks:\n  A:\n    nrexcl: 1\n    atoms: [{atomname: A}]\n    edges: [[0, 1]]\n",
			"",
			true,
		},
		{
			"edge that isn't a pair",
			"blocks:\n  A:\n    nrexcl: 1\n    atoms: [{atomname: A}, {atomname: B}]\n    edges: [[0, 1, 0]]\n",
			"",
			true,
		},
		{
			"not yaml",
			"blocks: [",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseForceField([]byte(tt.data), "fallback")
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseForceField() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got.Name != tt.wantName {
				t.Errorf("parseForceField() name = %s, want %s", got.Name, tt.wantName)
			}
		})
	}
}

func TestReadMetaMolecules(t *testing.T) {
	mms, err := ReadMetaMolecules(filepath.Join("testdata", "system.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(mms) != 2 {
		t.Fatalf("ReadMetaMolecules() = %d molecules, want 2", len(mms))
	}

	mm := mms[0]
	if mm.Name != "PEO-lysozyme" || mm.Len() != 6 || len(mm.Edges()) != 5 {
		t.Errorf("ReadMetaMolecules() %s: %d nodes, %d edges", mm.Name, mm.Len(), len(mm.Edges()))
	}

	// resids default to position
	for _, node := range mm.Nodes() {
		if got := mm.Node(node)["resid"]; got != node+1 {
			t.Errorf("ReadMetaMolecules() node %d resid = %v, want %d", node, got, node+1)
		}
	}
	if got := mm.Node(2)["from_itp"]; got != "LYSO" {
		t.Errorf("ReadMetaMolecules() node 2 from_itp = %v", got)
	}
}

func Test_parseMetaMolecules(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantName string
		wantErr  bool
	}{
		{
			"unnamed",
			"molecules:\n  - residues: [{resname: PEO}]\n",
			"molecule_0",
			false,
		},
		{
			"no residues",
			"molecules:\n  - name: empty\n",
			"",
			true,
		},
		{
			"residue without a block",
			"molecules:\n  - residues: [{resid: 1}]\n",
			"",
			true,
		},
		{
			"edge to a missing residue",
			"molecules:\n  - residues: [{resname: PEO}]\n    edges: [[0, 3]]\n",
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMetaMolecules([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMetaMolecules() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got[0].Name != tt.wantName {
				t.Errorf("parseMetaMolecules() name = %s, want %s", got[0].Name, tt.wantName)
			}
		})
	}
}
