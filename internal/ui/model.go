package ui

import (
	"fmt"
	"strconv"
	"strings"

	"eventboard/internal/core/board"
	"eventboard/internal/core/normalize"
	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/metrics"
	"eventboard/internal/services/events/domain"
	"eventboard/internal/services/events/render"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// header and status bar lines around the viewport
const chromeHeight = 3

// Model is the board client. It holds the one loaded board and the current
// selector; switching filters never refetches
type Model struct {
	load     func() tea.Cmd
	opts     render.Options
	metrics  *metrics.Metrics
	renderer *render.Renderer

	board     domain.BoardReader
	selectors []board.Selector
	cursor    int

	vp       viewport.Model
	content  string
	width    int
	height   int
	loaded   bool
	setupErr error
	quitting bool
}

// New builds the model. load starts the fetch and must eventually yield a
// BoardLoaded message; nil means the board arrives some other way
func New(load func() tea.Cmd, opts render.Options, m *metrics.Metrics) Model {
	return Model{
		load:    load,
		opts:    opts,
		metrics: m,
		vp:      viewport.New(80, 20),
	}
}

// Init starts the load
func (m Model) Init() tea.Cmd {
	if m.load == nil {
		return nil
	}
	return m.load()
}

// Selected returns the active selector
func (m Model) Selected() board.Selector {
	if len(m.selectors) == 0 {
		return board.All
	}
	return m.selectors[m.cursor]
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case BoardLoaded:
		return m.onLoaded(msg), nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab", "l", "right":
			return m.selectAt(m.cursor + 1), nil
		case "shift+tab", "h", "left":
			return m.selectAt(m.cursor - 1), nil
		case "a":
			return m.selectAt(0), nil
		case "g", "home":
			m.vp.GotoTop()
			return m, nil
		case "G", "end":
			m.vp.GotoBottom()
			return m, nil
		}
		if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n < len(m.selectors) {
			return m.selectAt(n), nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) onLoaded(msg BoardLoaded) Model {
	m.loaded = true
	if msg.Err != nil || msg.Board == nil {
		m.setupErr = msg.Err
		if m.setupErr == nil {
			m.setupErr = perr.Internalf("no board")
		}
		return m
	}
	m.board = msg.Board
	m.renderer = render.New(msg.Board.Catalog(), m.opts)
	m.selectors = []board.Selector{board.All}
	for _, id := range msg.Board.Catalog().IDs() {
		m.selectors = append(m.selectors, board.Selector(id))
	}
	m.cursor = 0
	return m.refresh()
}

// selectAt wraps i around the selector ring
func (m Model) selectAt(i int) Model {
	if len(m.selectors) == 0 {
		return m
	}
	n := len(m.selectors)
	m.cursor = ((i % n) + n) % n
	return m.refresh()
}

func (m Model) refresh() Model {
	v := m.board.View(m.Selected())
	m.metrics.Rendered("tui", string(v.Selector))

	var b strings.Builder
	if v.Err != nil {
		b.WriteString(ErrorStyle.Render("Could not load events (" + perr.CodeOf(v.Err).String() + ")"))
		b.WriteByte('\n')
	}
	if v.Empty() {
		b.WriteString(EmptyStyle.Render("No events"))
	}
	for _, ev := range m.renderer.Items(v.Records) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			DayStyle.Render(ev.Day), " ",
			Badge.Render(sanitize(ev.CategoryName)), " ",
			sanitize(ev.Name),
		))
		b.WriteByte('\n')
		b.WriteString(LinkStyle.Render(sanitize(ev.Link)))
		b.WriteByte('\n')
	}
	m.content = b.String()
	m.vp.SetContent(m.content)
	m.vp.GotoTop()
	return m
}

// View renders the client
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.loaded {
		return "Loading events…\n"
	}
	if m.setupErr != nil {
		return ErrorStyle.Render("Could not start: "+sanitize(m.setupErr.Error())) + "\n"
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.tabs(), m.vp.View(), m.status())
}

func (m Model) tabs() string {
	counts := m.board.Counts()
	cat := m.board.Catalog()
	parts := make([]string, 0, len(m.selectors))
	for i, sel := range m.selectors {
		label := fmt.Sprintf("All %d", counts.Total)
		if !sel.IsAll() {
			label = fmt.Sprintf("%s %d", sanitize(cat.DisplayNameOf(sel.Category())), counts.Of(sel))
		}
		style := TabInactive
		if i == m.cursor {
			style = TabActive
		}
		parts = append(parts, style.Render(label))
	}
	return ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Top, parts...), max(m.width, 40), "…")
}

func (m Model) status() string {
	meta := m.board.Meta()
	hints := StatusBarKey.Render("tab") + " filter  " +
		StatusBarKey.Render("a") + " all  " +
		StatusBarKey.Render("g") + " top  " +
		StatusBarKey.Render("q") + " quit"
	if at := m.renderer.Stamp(meta.LoadedAt); at != "" {
		hints += "  loaded " + at
	}
	return StatusBar.Render(hints)
}

// sanitize keeps source text from driving the terminal
func sanitize(s string) string {
	return normalize.Name(ansi.Strip(s))
}
