// Package browse is a small interactive explorer for the structure
// hierarchy: models, their chains, and the residues inside each chain.
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/molterm/internal/structure"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type level int

const (
	levelModels level = iota
	levelChains
	levelResidues
)

type model struct {
	s *structure.Structure

	level    level
	cursor   int
	modelIdx int
	chainIdx int

	width  int
	height int
}

func newModel(s *structure.Structure) model {
	return model{s: s, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.itemCount()-1 {
			m.cursor++
		}
	case "enter", " ", "l", "right":
		m.descend()
	case "esc", "escape", "backspace", "h", "left":
		m.ascend()
	}
	return m, nil
}

func (m model) itemCount() int {
	switch m.level {
	case levelModels:
		return len(m.s.Models)
	case levelChains:
		return len(m.currentModel().Chains)
	default:
		return len(m.currentChain().Residues)
	}
}

func (m *model) descend() {
	switch m.level {
	case levelModels:
		m.modelIdx = m.cursor
		m.level = levelChains
		m.cursor = 0
	case levelChains:
		m.chainIdx = m.cursor
		m.level = levelResidues
		m.cursor = 0
	}
}

func (m *model) ascend() {
	switch m.level {
	case levelChains:
		m.level = levelModels
		m.cursor = m.modelIdx
	case levelResidues:
		m.level = levelChains
		m.cursor = m.chainIdx
	}
}

func (m model) currentModel() *structure.Model {
	return &m.s.Models[m.modelIdx]
}

func (m model) currentChain() *structure.Chain {
	return &m.currentModel().Chains[m.chainIdx]
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + cyan.Render(m.s.Path) + "  " + dim.Render(m.breadcrumb()) + "\n")
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", 40)) + "\n\n")

	lines := m.items()
	visible := m.height - 8
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString("  " + cyan.Render("▸ ") + white.Render(lines[i]) + "\n")
		} else {
			b.WriteString("    " + dim.Render(lines[i]) + "\n")
		}
	}
	if end < len(lines) {
		b.WriteString(dimmer.Render(fmt.Sprintf("    ... %d more", len(lines)-end)) + "\n")
	}

	b.WriteString("\n" + dim.Render("  ↑↓ move  enter open  esc back  q quit") + "\n")
	return b.String()
}

func (m model) breadcrumb() string {
	switch m.level {
	case levelModels:
		return "models"
	case levelChains:
		return fmt.Sprintf("model %d / chains", m.currentModel().Num)
	default:
		return fmt.Sprintf("model %d / chain %s / residues", m.currentModel().Num, m.currentChain().ID)
	}
}

func (m model) items() []string {
	switch m.level {
	case levelModels:
		out := make([]string, len(m.s.Models))
		for i := range m.s.Models {
			mm := &m.s.Models[i]
			out[i] = fmt.Sprintf("model %-3d  %d chains, %d residues, %d atoms",
				mm.Num, len(mm.Chains), mm.ResidueCount(), mm.AtomCount())
		}
		return out
	case levelChains:
		chains := m.currentModel().Chains
		out := make([]string, len(chains))
		for i := range chains {
			c := &chains[i]
			out[i] = fmt.Sprintf("chain %-2s  %d residues, %d atoms",
				c.ID, len(c.Residues), c.AtomCount())
		}
		return out
	default:
		residues := m.currentChain().Residues
		out := make([]string, len(residues))
		for i := range residues {
			r := &residues[i]
			out[i] = fmt.Sprintf("%-3s %-5d  %d atoms", r.Name, r.Num, len(r.Atoms))
		}
		return out
	}
}

// Run opens the hierarchy browser for s and blocks until the user
// quits.
func Run(s *structure.Structure) error {
	p := tea.NewProgram(newModel(s), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
