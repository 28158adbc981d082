package parse

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pdbLine(serial int, name, resName, chain string, resSeq int, x, y, z, occ, bfac float64, element string) string {
	return fmt.Sprintf("ATOM  %5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		serial, name, resName, chain, resSeq, x, y, z, occ, bfac, element)
}

func TestReadPDBSingleModel(t *testing.T) {
	input := strings.Join([]string{
		"HEADER    TEST STRUCTURE",
		"REMARK   2 RESOLUTION. 1.50 ANGSTROMS.",
		pdbLine(1, "N", "ALA", "A", 1, 11.104, 6.134, -6.504, 1.00, 12.50, "N"),
		pdbLine(2, "CA", "ALA", "A", 1, 12.560, 6.351, -6.509, 1.00, 11.20, "C"),
		pdbLine(3, "C", "ALA", "A", 1, 13.276, 5.028, -6.300, 1.00, 10.80, "C"),
		pdbLine(4, "N", "GLY", "A", 2, 12.644, 3.895, -6.580, 1.00, 13.10, "N"),
		pdbLine(5, "CA", "GLY", "B", 1, 1.000, 2.000, 3.000, 0.50, 20.00, "C"),
		"TER",
		"END",
	}, "\n")

	models, err := readPDB(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readPDB: %v", err)
	}
	if len(models) != 1 {
		t.Fatalf("models = %d, want 1", len(models))
	}
	m := &models[0]
	if len(m.Chains) != 2 {
		t.Fatalf("chains = %d, want 2", len(m.Chains))
	}
	a := m.Chain("A")
	if a == nil || len(a.Residues) != 2 {
		t.Fatalf("chain A residues = %v, want 2", a)
	}
	if a.Residues[0].Name != "ALA" || len(a.Residues[0].Atoms) != 3 {
		t.Errorf("residue 1 = %s with %d atoms, want ALA with 3", a.Residues[0].Name, len(a.Residues[0].Atoms))
	}

	ca := a.Residues[0].Atoms[1]
	if ca.Name != "CA" || ca.Serial != 2 || ca.Element != "C" {
		t.Errorf("CA atom = %+v", ca)
	}
	if math.Abs(ca.Coords.X-12.560) > 1e-9 || math.Abs(ca.Coords.Y-6.351) > 1e-9 {
		t.Errorf("CA coords = %v", ca.Coords)
	}
	if math.Abs(ca.Occupancy-1.00) > 1e-9 || math.Abs(ca.BFactor-11.20) > 1e-9 {
		t.Errorf("CA occupancy/bfactor = %g/%g", ca.Occupancy, ca.BFactor)
	}
}

func TestReadPDBMultiModel(t *testing.T) {
	input := strings.Join([]string{
		"MODEL        1",
		pdbLine(1, "CA", "GLY", "A", 1, 0, 0, 0, 1, 0, "C"),
		"ENDMDL",
		"MODEL        2",
		pdbLine(1, "CA", "GLY", "A", 1, 1, 1, 1, 1, 0, "C"),
		"ENDMDL",
		"END",
	}, "\n")

	models, err := readPDB(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readPDB: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
	if models[1].Chains[0].Residues[0].Atoms[0].Coords.X != 1 {
		t.Error("model 2 atom has model 1 coordinates")
	}
}

func TestReadPDBHetatm(t *testing.T) {
	line := "HETATM" + pdbLine(1, "O", "HOH", "A", 101, 5, 5, 5, 1, 30, "O")[6:]
	models, err := readPDB(strings.NewReader(line))
	if err != nil {
		t.Fatalf("readPDB: %v", err)
	}
	if models[0].AtomCount() != 1 {
		t.Fatalf("HETATM record not parsed")
	}
}

func TestReadPDBTruncatedCoordsOK(t *testing.T) {
	// Occupancy, B-factor and element columns are optional.
	line := pdbLine(1, "CA", "GLY", "A", 1, 1, 2, 3, 0, 0, "")[:54]
	models, err := readPDB(strings.NewReader(line))
	if err != nil {
		t.Fatalf("readPDB: %v", err)
	}
	atom := models[0].Chains[0].Residues[0].Atoms[0]
	if atom.Element != "C" {
		t.Errorf("element fallback = %q, want C from atom name", atom.Element)
	}
}

func TestReadPDBErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"no atoms", "HEADER    EMPTY\nEND"},
		{"short record", "ATOM      1  CA"},
		{"bad coordinate", pdbLine(1, "CA", "GLY", "A", 1, 0, 0, 0, 1, 0, "C")[:46] + "   xx.xxx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := readPDB(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

const cifFixture = `data_test
#
_entry.id TEST
#
loop_
_atom_site.group_PDB
_atom_site.id
_atom_site.type_symbol
_atom_site.label_atom_id
_atom_site.label_comp_id
_atom_site.label_asym_id
_atom_site.label_seq_id
_atom_site.Cartn_x
_atom_site.Cartn_y
_atom_site.Cartn_z
_atom_site.occupancy
_atom_site.B_iso_or_equiv
_atom_site.auth_seq_id
_atom_site.auth_asym_id
_atom_site.pdbx_PDB_model_num
ATOM 1 N N ALA A 1 11.104 6.134 -6.504 1.00 12.50 1 A 1
ATOM 2 C CA ALA A 1 12.560 6.351 -6.509 1.00 11.20 1 A 1
ATOM 3 P P U B 1 0.500 1.500 2.500 1.00 40.00 5 B 1
ATOM 4 O "O5'" U B 1 1.500 2.500 3.500 1.00 41.00 5 B 1
ATOM 5 N N ALA A 1 11.000 6.000 -6.000 1.00 12.00 1 A 2
#
`

func TestReadMMCIF(t *testing.T) {
	models, err := readMMCIF(strings.NewReader(cifFixture))
	if err != nil {
		t.Fatalf("readMMCIF: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models = %d, want 2", len(models))
	}
	m := &models[0]
	if got := strings.Join(m.ChainIDs(), ""); got != "AB" {
		t.Fatalf("chains = %q, want AB", got)
	}

	b := m.Chain("B")
	if b.Residues[0].Num != 5 {
		t.Errorf("auth_seq_id not preferred: residue num = %d, want 5", b.Residues[0].Num)
	}
	o5 := b.Residues[0].Atoms[1]
	if o5.Name != "O5'" {
		t.Errorf("quoted atom name = %q, want O5'", o5.Name)
	}
	if math.Abs(o5.BFactor-41.00) > 1e-9 {
		t.Errorf("O5' bfactor = %g", o5.BFactor)
	}

	if models[1].AtomCount() != 1 {
		t.Errorf("model 2 atoms = %d, want 1", models[1].AtomCount())
	}
}

func TestReadMMCIFNoAtoms(t *testing.T) {
	if _, err := readMMCIF(strings.NewReader("data_x\n_entry.id X\n")); err == nil {
		t.Error("expected error for file without atom_site loop")
	}
}

func TestSplitCIF(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"ATOM 1 N", []string{"ATOM", "1", "N"}},
		{`ATOM "O5'" x`, []string{"ATOM", "O5'", "x"}},
		{"'a b' c", []string{"a b", "c"}},
		{"  padded\tfields  ", []string{"padded", "fields"}},
	}
	for _, tt := range tests {
		got := splitCIF(tt.line)
		if len(got) != len(tt.want) {
			t.Errorf("splitCIF(%q) = %v, want %v", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitCIF(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdb", FormatPDB, false},
		{"PDB", FormatPDB, false},
		{"mmcif", FormatMMCIF, false},
		{"cif", FormatMMCIF, false},
		{"xyz", FormatUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestInferFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"1abc.pdb", FormatPDB, false},
		{"pdb1abc.ent", FormatPDB, false},
		{"1ABC.PDB", FormatPDB, false},
		{"1abc.cif", FormatMMCIF, false},
		{"1abc.mmcif", FormatMMCIF, false},
		{"1abc.xyz", FormatUnknown, true},
		{"noext", FormatUnknown, true},
	}
	for _, tt := range tests {
		got, err := InferFormat(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("InferFormat(%q) = %v, %v", tt.path, got, err)
		}
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.pdb")
	content := strings.Join([]string{
		pdbLine(1, "N", "GLY", "A", 1, 0, 0, 0, 1, 0, "N"),
		pdbLine(2, "CA", "GLY", "A", 1, 2, 0, 0, 1, 0, "C"),
		pdbLine(3, "C", "GLY", "A", 1, 4, 0, 0, 1, 0, "C"),
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := ReadFile(path, FormatUnknown)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if s.Path != path {
		t.Errorf("Path = %q", s.Path)
	}
	if s.Models[0].AtomCount() != 3 {
		t.Errorf("atoms = %d, want 3", s.Models[0].AtomCount())
	}
	// Models are centered on load.
	ca := s.Models[0].Chains[0].Residues[0].Atoms[1]
	if math.Abs(ca.Coords.X) > 1e-9 {
		t.Errorf("centered CA x = %g, want 0", ca.Coords.X)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.pdb"), FormatPDB); err == nil {
		t.Error("expected error for missing file")
	}
}
