package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/navkit/pkg/input"
)

// HelpModel shows the keyboard shortcuts overlay, rendered from markdown so
// the binding table stays readable in both the overlay and the README.
type HelpModel struct {
	visible  bool
	width    int
	height   int
	rendered string
	mapping  input.Mapping
}

// NewHelpModel creates the help overlay for the given bindings.
func NewHelpModel(m input.Mapping) HelpModel {
	return HelpModel{mapping: m}
}

// Show makes the overlay visible.
func (m *HelpModel) Show() {
	m.visible = true
}

// Hide makes the overlay invisible.
func (m *HelpModel) Hide() {
	m.visible = false
}

// Toggle toggles visibility.
func (m *HelpModel) Toggle() {
	m.visible = !m.visible
}

// IsVisible returns true if the overlay is showing.
func (m HelpModel) IsVisible() bool {
	return m.visible
}

// SetSize sets dimensions and invalidates the rendered markdown.
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.rendered = ""
}

// render produces the styled markdown, caching it until the size changes.
func (m *HelpModel) render() string {
	if m.rendered != "" {
		return m.rendered
	}
	wrap := m.width - 12
	if wrap < 40 {
		wrap = 40
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, rerr := r.Render(m.markdown()); rerr == nil {
			m.rendered = out
		}
	}
	if m.rendered == "" {
		// Plain fallback when the renderer cannot initialize.
		m.rendered = m.markdown()
	}
	return m.rendered
}

func (m *HelpModel) markdown() string {
	km := m.mapping
	return fmt.Sprintf(`# Navigation

| Key | Action |
|-----|--------|
| %s / %s | move up |
| %s / %s | move down |
| %s / %s | move left |
| %s / %s | move right |
| %s | activate focused element |
| %s | back to enclosing menu |
| %s / %s | next sibling menu |
| %s | previous sibling menu |

# Demo

| Key | Action |
|-----|--------|
| / | jump palette |
| y | copy focused element name |
| ? | toggle this help |
| ctrl+c | quit |

Click an element to focus it; click the focused element to activate it.
`,
		km.KeyUp, km.KeyUpAlt,
		km.KeyDown, km.KeyDownAlt,
		km.KeyLeft, km.KeyLeftAlt,
		km.KeyRight, km.KeyRightAlt,
		km.KeyAction,
		km.KeyCancel,
		km.KeyNext, km.KeyNextAlt,
		km.KeyPrevious)
}

// View renders the help overlay.
func (m *HelpModel) View() string {
	if !m.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1).
		Render(m.render())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
