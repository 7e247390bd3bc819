package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing, colors, and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Dracula-inspired with semantic accents
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Base colors
	ColorBg          = lipgloss.Color("#282A36")
	ColorBgSubtle    = lipgloss.Color("#363949")
	ColorBgHighlight = lipgloss.Color("#44475A")
	ColorText        = lipgloss.Color("#F8F8F2")
	ColorSubtext     = lipgloss.Color("#BFBFBF")
	ColorMuted       = lipgloss.Color("#6272A4")

	// Accent colors
	ColorPrimary = lipgloss.Color("#BD93F9")
	ColorInfo    = lipgloss.Color("#8BE9FD")
	ColorSuccess = lipgloss.Color("#50FA7B")
	ColorWarning = lipgloss.Color("#FFB86C")
	ColorDanger  = lipgloss.Color("#FF5555")
)

// ══════════════════════════════════════════════════════════════════════════════
// SCOPE AND BUTTON STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ScopeStyle frames a scope whose subtree does not hold focus
	ScopeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBgHighlight).
			Padding(0, 1)

	// ActiveScopeStyle frames the scope whose subtree holds focus
	ActiveScopeStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	// ButtonStyle is an unfocused focusable element
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBgHighlight).
			Padding(0, 1)

	// FocusedButtonStyle is the focused element
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorSuccess).
				Bold(true).
				Padding(0, 1)

	// ActivatedButtonStyle flashes on the element an action just fired on
	ActivatedButtonStyle = lipgloss.NewStyle().
				Foreground(ColorBg).
				Background(ColorWarning).
				Bold(true).
				Padding(0, 1)

	// ScopeTitleStyle labels each scope frame
	ScopeTitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Bold(true)

	// StatusBarStyle is the bottom event line
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSubtext).
			Background(ColorBgSubtle).
			Padding(0, 1)

	// StatusEventStyle highlights the last event text within the status bar
	StatusEventStyle = lipgloss.NewStyle().
				Foreground(ColorInfo).
				Background(ColorBgSubtle)

	// StatusWarnStyle highlights no-change outcomes within the status bar
	StatusWarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Background(ColorBgSubtle)
)

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
