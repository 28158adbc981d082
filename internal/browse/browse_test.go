package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/molterm/internal/structure"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "escape":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testStructure(t *testing.T) *structure.Structure {
	t.Helper()
	mk := func() structure.Model {
		return structure.Model{Chains: []structure.Chain{
			{ID: "A", Residues: []structure.Residue{
				{Num: 1, Name: "ALA", Atoms: []structure.Atom{{Serial: 1, Name: "CA"}}},
				{Num: 2, Name: "GLY", Atoms: []structure.Atom{{Serial: 2, Name: "CA"}}},
			}},
			{ID: "B", Residues: []structure.Residue{
				{Num: 1, Name: "LYS", Atoms: []structure.Atom{{Serial: 3, Name: "CA"}}},
			}},
		}}
	}
	s, err := structure.New("nav.pdb", []structure.Model{mk(), mk()})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func step(t *testing.T, m tea.Model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return got
}

func TestNavigationDescendAscend(t *testing.T) {
	m := newModel(testStructure(t))
	if m.level != levelModels {
		t.Fatalf("start level = %v", m.level)
	}

	m = step(t, m, key("j"))
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m = step(t, m, key("enter"))
	if m.level != levelChains || m.modelIdx != 1 || m.cursor != 0 {
		t.Fatalf("after enter: level=%v modelIdx=%d cursor=%d", m.level, m.modelIdx, m.cursor)
	}
	m = step(t, m, key("j"))
	m = step(t, m, key("enter"))
	if m.level != levelResidues || m.chainIdx != 1 {
		t.Fatalf("after second enter: level=%v chainIdx=%d", m.level, m.chainIdx)
	}

	m = step(t, m, key("escape"))
	if m.level != levelChains || m.cursor != 1 {
		t.Fatalf("ascend restores chain cursor: level=%v cursor=%d", m.level, m.cursor)
	}
	m = step(t, m, key("escape"))
	if m.level != levelModels || m.cursor != 1 {
		t.Fatalf("ascend restores model cursor: level=%v cursor=%d", m.level, m.cursor)
	}
}

func TestCursorBounds(t *testing.T) {
	m := newModel(testStructure(t))
	m = step(t, m, key("k"))
	if m.cursor != 0 {
		t.Errorf("cursor moved above first item")
	}
	for i := 0; i < 10; i++ {
		m = step(t, m, key("j"))
	}
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want clamp at 1", m.cursor)
	}
}

func TestQuit(t *testing.T) {
	m := newModel(testStructure(t))
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q did not quit")
	}
}

func TestViewShowsItems(t *testing.T) {
	m := newModel(testStructure(t))
	v := m.View()
	for _, want := range []string{"nav.pdb", "models", "model 1", "2 chains"} {
		if !strings.Contains(v, want) {
			t.Errorf("model view missing %q", want)
		}
	}

	m = step(t, m, key("enter"))
	v = m.View()
	if !strings.Contains(v, "chain A") || !strings.Contains(v, "chain B") {
		t.Errorf("chain view missing chains:\n%s", v)
	}

	m = step(t, m, key("enter"))
	v = m.View()
	if !strings.Contains(v, "ALA") || !strings.Contains(v, "GLY") {
		t.Errorf("residue view missing residues:\n%s", v)
	}
}
