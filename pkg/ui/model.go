// Package ui is the interactive demo: a bubbletea program that renders a
// loaded layout as panels of buttons and routes every keyboard and mouse
// message through the input adapters, the request queue, and the resolver.
// It is a host like any other; the engine packages know nothing about it.
package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"

	"github.com/Dicklesworthstone/navkit/pkg/focus"
	"github.com/Dicklesworthstone/navkit/pkg/geom"
	"github.com/Dicklesworthstone/navkit/pkg/input"
	"github.com/Dicklesworthstone/navkit/pkg/journal"
	"github.com/Dicklesworthstone/navkit/pkg/layout"
)

// LayoutMsg delivers a reloaded layout (or the reload failure) to the
// running program. The watcher goroutine sends it with Program.Send.
type LayoutMsg struct {
	Layout *layout.Layout
	Err    error
}

// cellRect is the screen-cell footprint of one rendered button, recorded
// during View so mouse messages can be mapped back to elements.
type cellRect struct {
	x, y, w, h int
}

// Model is the demo's bubbletea model.
type Model struct {
	km      KeyMap
	mapping input.Mapping

	lay     *layout.Layout
	graph   *focus.Graph
	focused focus.ElemID

	queue  *focus.Queue
	bridge *input.Bridge

	journal *journal.DB
	logger  zerolog.Logger

	tick      int64
	lastEvent focus.Event
	hasEvent  bool
	activated map[focus.ElemID]int

	palette PaletteModel
	help    HelpModel

	width     int
	height    int
	cellRects map[focus.ElemID]cellRect

	layoutErr error
	notice    string
	quitting  bool
}

// NewModel builds the demo model over a loaded layout.
func NewModel(lay *layout.Layout, mapping input.Mapping) Model {
	g := lay.Graph
	focused, ok := g.DefaultMember(g.Root())
	if !ok {
		focused = focus.NoElem
	}
	return Model{
		km:        DefaultKeyMap(),
		mapping:   mapping,
		lay:       lay,
		graph:     g,
		focused:   focused,
		queue:     focus.NewQueue(0),
		bridge:    input.NewBridge(mapping),
		logger:    zerolog.Nop(),
		activated: make(map[focus.ElemID]int),
		palette:   NewPaletteModel(g),
		help:      NewHelpModel(mapping),
		cellRects: make(map[focus.ElemID]cellRect),
	}
}

// WithJournal attaches an event journal; every resolved event is recorded.
func (m Model) WithJournal(db *journal.DB) Model {
	m.journal = db
	return m
}

// WithLogger attaches a structured logger for resolution tracing.
func (m Model) WithLogger(logger zerolog.Logger) Model {
	m.logger = logger
	return m
}

// Focused returns the currently focused element.
func (m Model) Focused() focus.ElemID {
	return m.focused
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetSize(msg.Width, msg.Height)
		m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case LayoutMsg:
		return m.applyLayout(msg), nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		released := msg.Action == tea.MouseActionRelease
		pos := m.enginePos(msg.X, msg.Y)
		for _, req := range m.bridge.MouseRequests(m.graph, m.focused, pos, released) {
			m.queue.Push(req)
		}
		m.drain()
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.km.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.help.IsVisible() {
		// Any key closes help.
		m.help.Hide()
		return m, nil
	}

	if m.palette.IsVisible() {
		if req := m.palette.Update(msg); req != nil {
			m.queue.Push(*req)
			m.drain()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.km.Help):
		m.help.Show()
		return m, nil
	case key.Matches(msg, m.km.Palette):
		m.palette.Show()
		return m, textinput.Blink
	case key.Matches(msg, m.km.Copy):
		return m.copyFocused(), nil
	}

	m.notice = ""
	for _, req := range m.bridge.KeyRequests(msg) {
		m.queue.Push(req)
	}
	m.drain()
	return m, nil
}

func (m Model) copyFocused() Model {
	if !m.graph.ValidElem(m.focused) {
		return m
	}
	name := m.graph.Name(m.focused)
	if name == "" {
		name = fmt.Sprintf("element %d", int(m.focused))
	}
	if err := clipboard.WriteAll(name); err != nil {
		m.logger.Warn().Err(err).Msg("clipboard write failed")
		m.notice = "copy failed"
		return m
	}
	m.notice = fmt.Sprintf("copied %q", name)
	return m
}

// applyLayout swaps in a reloaded layout, carrying focus over by element
// name where the new layout still has it.
func (m Model) applyLayout(msg LayoutMsg) Model {
	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("layout reload failed, keeping previous layout")
		m.layoutErr = msg.Err
		return m
	}

	var carryName string
	if m.graph.ValidElem(m.focused) {
		carryName = m.graph.Name(m.focused)
	}

	m.lay = msg.Layout
	m.graph = msg.Layout.Graph
	m.layoutErr = nil
	m.activated = make(map[focus.ElemID]int)
	m.palette.SetGraph(m.graph)

	if e, ok := m.graph.Lookup(carryName); carryName != "" && ok {
		m.focused = e
	} else if e, ok := m.graph.DefaultMember(m.graph.Root()); ok {
		m.focused = e
	} else {
		m.focused = focus.NoElem
	}
	m.logger.Info().Str("focused", m.elemLabel(m.focused)).Msg("layout reloaded")
	return m
}

// drain runs one resolution tick over everything queued so far.
func (m *Model) drain() {
	if m.queue.Len() == 0 {
		return
	}
	m.tick++
	focused, events := m.queue.Drain(m.graph, m.focused)
	m.focused = focused
	for _, ev := range events {
		m.logger.Debug().
			Int64("tick", m.tick).
			Str("event", ev.String()).
			Str("request", ev.Request.String()).
			Msg("resolved")
		if m.journal != nil {
			if err := m.journal.Record(m.tick, ev); err != nil {
				m.logger.Warn().Err(err).Msg("journal write failed")
			}
		}
		if ev.Kind == focus.Activated {
			m.activated[ev.To]++
		}
		m.lastEvent = ev
		m.hasEvent = true
	}
}

// enginePos maps a screen cell back into the graph's coordinate space. A
// cell inside a rendered button maps to that element's center; anywhere else
// maps to a point no element occupies.
func (m Model) enginePos(x, y int) geom.Point {
	for e, r := range m.cellRects {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return m.graph.Position(e)
		}
	}
	return geom.Point{X: -1e9, Y: -1e9}
}

// ══════════════════════════════════════════════════════════════════════════════
// VIEW - Panel rendering with cell-rect tracking for mouse hit-testing
// ══════════════════════════════════════════════════════════════════════════════

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.help.IsVisible() {
		return m.help.View()
	}
	if m.palette.IsVisible() {
		return m.palette.View()
	}

	for e := range m.cellRects {
		delete(m.cellRects, e)
	}

	header := m.renderHeader()
	headerHeight := lipgloss.Height(header)

	root := m.graph.Root()
	panels := make([]string, 0, len(m.graph.ChildrenOf(root)))
	xOff := 0
	for _, child := range m.sortedChildren(root) {
		block := m.renderScope(child, xOff, headerHeight)
		panels = append(panels, block)
		xOff += lipgloss.Width(block) + 1
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, joinWithSpaces(panels)...)

	status := m.renderStatus()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func joinWithSpaces(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, b)
	}
	return out
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true).Render("navkit demo")
	parts := []string{title}
	if m.layoutErr != nil {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorDanger).
			Render("layout error: "+m.layoutErr.Error()))
	}
	if m.notice != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorInfo).Render(m.notice))
	}
	return strings.Join(parts, "  ") + "\n"
}

// sortedChildren orders root's child scopes left to right by the center of
// their subtree bounds, so the panels appear where the layout puts them.
func (m Model) sortedChildren(s focus.ScopeID) []focus.ScopeID {
	children := append([]focus.ScopeID(nil), m.graph.ChildrenOf(s)...)
	center := func(sc focus.ScopeID) float64 {
		if r, ok := m.graph.Bounds(sc); ok {
			return r.Center.X
		}
		return 0
	}
	sort.SliceStable(children, func(i, j int) bool { return center(children[i]) < center(children[j]) })
	return children
}

// renderScope draws one scope as a framed panel: title line, then member
// rows top-down, then nested child panels. xOff and yOff are the screen cell
// of the frame's top-left corner; button rects are recorded as drawn.
func (m Model) renderScope(s focus.ScopeID, xOff, yOff int) string {
	// Frame border plus one cell of padding.
	innerX := xOff + 2
	innerY := yOff + 1

	title := ScopeTitleStyle.Render(m.scopeLabel(s))
	lines := []string{title}

	for _, row := range m.memberRows(s) {
		rowX := innerX
		var parts []string
		for _, e := range row {
			btn := m.renderButton(e)
			w := lipgloss.Width(btn)
			m.cellRects[e] = cellRect{x: rowX, y: innerY + len(lines), w: w, h: 1}
			parts = append(parts, btn)
			rowX += w + 1
		}
		lines = append(lines, strings.Join(parts, " "))
	}

	for _, child := range m.sortedChildren(s) {
		block := m.renderScope(child, innerX, innerY+len(lines))
		lines = append(lines, strings.Split(block, "\n")...)
	}

	style := ScopeStyle
	if m.graph.ValidElem(m.focused) && m.scopeContains(s, m.graph.ScopeOf(m.focused)) {
		style = ActiveScopeStyle
	}
	return style.Render(strings.Join(lines, "\n"))
}

// memberRows groups a scope's members into rows: higher positions first,
// then left to right within a row.
func (m Model) memberRows(s focus.ScopeID) [][]focus.ElemID {
	members := append([]focus.ElemID(nil), m.graph.MembersOf(s)...)
	sort.SliceStable(members, func(i, j int) bool {
		pi, pj := m.graph.Position(members[i]), m.graph.Position(members[j])
		if pi.Y != pj.Y {
			return pi.Y > pj.Y
		}
		return pi.X < pj.X
	})

	var rows [][]focus.ElemID
	for _, e := range members {
		y := m.graph.Position(e).Y
		if len(rows) > 0 && m.graph.Position(rows[len(rows)-1][0]).Y == y {
			rows[len(rows)-1] = append(rows[len(rows)-1], e)
			continue
		}
		rows = append(rows, []focus.ElemID{e})
	}
	return rows
}

func (m Model) renderButton(e focus.ElemID) string {
	label := m.elemLabel(e)
	if n := m.activated[e]; n > 0 {
		label = fmt.Sprintf("%s ×%d", label, n)
	}
	label = runewidth.FillRight(label, 8)

	style := ButtonStyle
	switch {
	case m.hasEvent && m.lastEvent.Kind == focus.Activated && m.lastEvent.To == e:
		style = ActivatedButtonStyle
	case e == m.focused:
		style = FocusedButtonStyle
	}
	return style.Render(label)
}

func (m Model) renderStatus() string {
	focusedPart := StatusBarStyle.Render("focused: " + m.elemLabel(m.focused))

	var eventPart string
	if m.hasEvent {
		style := StatusEventStyle
		if m.lastEvent.Kind == focus.NoChange {
			style = StatusWarnStyle
		}
		eventPart = style.Render(" " + m.lastEvent.String())
	}

	var droppedPart string
	if n := m.queue.Dropped(); n > 0 {
		droppedPart = StatusWarnStyle.Render(fmt.Sprintf(" dropped: %d", n))
	}

	hint := StatusBarStyle.Render(" ? help  / jump  ctrl+c quit")
	return "\n" + focusedPart + eventPart + droppedPart + hint
}

func (m Model) elemLabel(e focus.ElemID) string {
	if !m.graph.ValidElem(e) {
		return "none"
	}
	if name := m.graph.Name(e); name != "" {
		return name
	}
	return fmt.Sprintf("#%d", int(e))
}

func (m Model) scopeLabel(s focus.ScopeID) string {
	if name, ok := m.lay.ScopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scope %d", int(s))
}

// scopeContains reports whether scope is s or a descendant of s.
func (m Model) scopeContains(s, scope focus.ScopeID) bool {
	for cur := scope; ; {
		if cur == s {
			return true
		}
		parent, ok := m.graph.ParentOf(cur)
		if !ok {
			return false
		}
		cur = parent
	}
}
