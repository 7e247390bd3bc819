package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
)

// paletteEntry is one jump target: a named element and its handle.
type paletteEntry struct {
	name string
	elem focus.ElemID
}

// PaletteModel is the jump palette overlay: fuzzy-search every named element
// and jump focus straight to it. Confirming emits a single focus-on request;
// the palette never touches focus state itself.
type PaletteModel struct {
	input    textinput.Model
	all      []paletteEntry
	filtered []paletteEntry
	selected int
	visible  bool
	width    int
	height   int
}

// NewPaletteModel builds a palette over every named element of g.
func NewPaletteModel(g *focus.Graph) PaletteModel {
	ti := textinput.New()
	ti.Placeholder = "Jump to element..."
	ti.CharLimit = 64
	ti.Width = 32

	m := PaletteModel{input: ti}
	m.SetGraph(g)
	return m
}

// SetGraph rebuilds the entry list, e.g. after a layout reload.
func (m *PaletteModel) SetGraph(g *focus.Graph) {
	m.all = m.all[:0]
	for _, e := range g.ElementIDs() {
		if name := g.Name(e); name != "" {
			m.all = append(m.all, paletteEntry{name: name, elem: e})
		}
	}
	sort.Slice(m.all, func(i, j int) bool { return m.all[i].name < m.all[j].name })
	m.filtered = append([]paletteEntry(nil), m.all...)
	m.selected = 0
}

// SetSize sets the viewport dimensions the overlay centers itself in.
func (m *PaletteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Show opens the palette with a cleared query.
func (m *PaletteModel) Show() {
	m.visible = true
	m.input.SetValue("")
	m.input.Focus()
	m.filtered = append(m.filtered[:0], m.all...)
	m.selected = 0
}

// Hide closes the palette.
func (m *PaletteModel) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible reports whether the palette is showing.
func (m PaletteModel) IsVisible() bool {
	return m.visible
}

// Update handles one key message while the palette is open. It returns the
// jump request when the user confirms a target, or nil.
func (m *PaletteModel) Update(msg tea.KeyMsg) *focus.Request {
	switch msg.String() {
	case "esc":
		m.Hide()
		return nil
	case "enter":
		if m.selected < len(m.filtered) {
			req := focus.FocusOn(m.filtered[m.selected].elem)
			m.Hide()
			return &req
		}
		m.Hide()
		return nil
	case "up", "ctrl+k":
		if m.selected > 0 {
			m.selected--
		}
		return nil
	case "down", "ctrl+j":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	_ = cmd
	m.filter()
	return nil
}

func (m *PaletteModel) filter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = append(m.filtered[:0], m.all...)
		m.selected = 0
		return
	}

	names := make([]string, len(m.all))
	for i, entry := range m.all {
		names[i] = entry.name
	}
	matches := fuzzy.Find(query, names)

	m.filtered = make([]paletteEntry, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, m.all[match.Index])
	}
	m.selected = 0
}

// View renders the palette overlay centered in the viewport.
func (m PaletteModel) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(RenderDivider(36))
	b.WriteString("\n")

	itemStyle := lipgloss.NewStyle().Foreground(ColorSubtext)
	selectedStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	maxRows := 8
	if len(m.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("  no matches"))
	}
	for i, entry := range m.filtered {
		if i >= maxRows {
			b.WriteString(lipgloss.NewStyle().Foreground(ColorMuted).Render("  …"))
			break
		}
		if i == m.selected {
			b.WriteString(selectedStyle.Render("▸ " + entry.name))
		} else {
			b.WriteString(itemStyle.Render("  " + entry.name))
		}
		if i < len(m.filtered)-1 && i < maxRows-1 {
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
