package ui

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eventboard/internal/core/board"
	"eventboard/internal/core/catalog"
	perr "eventboard/internal/platform/errors"
	"eventboard/internal/platform/metrics"
	kit "eventboard/internal/platform/testkit"
	"eventboard/internal/services/events/domain"
	"eventboard/internal/services/events/render"
	"eventboard/internal/services/events/service"

	tea "github.com/charmbracelet/bubbletea"
)

func sampleBoard(err error, policy domain.FailurePolicy) *service.Board {
	res := domain.FetchResult{Err: err}
	if err == nil {
		res.Records = []board.Record{
			{ID: "a", Name: "Alpha", Category: "equal-love", CreatedAt: 1704067200000},
			{ID: "b", Name: "Bravo", Category: "other", CreatedAt: 1704153600000},
			{ID: "c", Name: "Charlie \x1b[31mred", Category: "equal-love", CreatedAt: 1704240000000},
		}
	}
	return service.NewBoard(res, catalog.Default(), policy, domain.LoadMeta{
		LoadID:   "L",
		LoadedAt: time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC),
	})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedModel(t *testing.T, b *service.Board) Model {
	t.Helper()
	m := New(nil, render.Options{LinkBase: "https://example.com", Location: time.UTC}, nil)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = step(t, m, BoardLoaded{Board: b})
	return m
}

func TestInitRunsLoader(t *testing.T) {
	called := false
	m := New(func() tea.Cmd {
		called = true
		return func() tea.Msg { return BoardLoaded{} }
	}, render.Options{}, nil)
	if cmd := m.Init(); cmd == nil || !called {
		t.Fatal("Init should start the load")
	}
	if New(nil, render.Options{}, nil).Init() != nil {
		t.Fatal("nil loader should give nil cmd")
	}
}

func TestLoadingThenBoard(t *testing.T) {
	m := New(nil, render.Options{Location: time.UTC}, nil)
	kit.MustContain(t, m.View(), "Loading events")

	m = loadedModel(t, sampleBoard(nil, domain.PolicySoft))
	if m.Selected() != board.All {
		t.Fatalf("selected = %q", m.Selected())
	}
	// newest first
	c, b, a := strings.Index(m.content, "Charlie"), strings.Index(m.content, "Bravo"), strings.Index(m.content, "Alpha")
	if c < 0 || !(c < b && b < a) {
		t.Fatalf("order wrong:\n%s", m.content)
	}
	kit.MustContain(t, m.content, "2024/01/03")
	kit.MustContain(t, m.content, "https://example.com/equal-love/c")
	kit.MustContain(t, m.View(), "All 3")
	kit.MustContain(t, m.View(), "loaded 2024/01/05 09:30")
}

func TestSanitizesTerminalEscapes(t *testing.T) {
	m := loadedModel(t, sampleBoard(nil, domain.PolicySoft))
	kit.MustContain(t, m.content, "Charlie red")
	kit.MustNotContain(t, m.content, "\x1b[31m")
	if got := sanitize("a\x07b\x1b]0;title\x07c"); strings.ContainsAny(got, "\x07\x1b") {
		t.Fatalf("sanitize left control bytes: %q", got)
	}
}

func TestFilterCycling(t *testing.T) {
	m := loadedModel(t, sampleBoard(nil, domain.PolicySoft))

	m, _ = step(t, m, key("tab"))
	if m.Selected() != "equal-love" {
		t.Fatalf("after tab = %q", m.Selected())
	}
	kit.MustNotContain(t, m.content, "Bravo")
	kit.MustContain(t, m.content, "Alpha")

	m, _ = step(t, m, key("l"))
	if m.Selected() != "not-equal-me" {
		t.Fatalf("after l = %q", m.Selected())
	}
	kit.MustContain(t, m.content, "No events")

	m, _ = step(t, m, key("a"))
	if m.Selected() != board.All {
		t.Fatalf("after a = %q", m.Selected())
	}

	// wraps backwards from all to the last category
	m, _ = step(t, m, key("shift+tab"))
	if m.Selected() != "other" {
		t.Fatalf("after shift+tab = %q", m.Selected())
	}
	kit.MustContain(t, m.content, "Bravo")

	m, _ = step(t, m, key("3"))
	if m.Selected() != "nearly-equal-joy" {
		t.Fatalf("after 3 = %q", m.Selected())
	}
	m, _ = step(t, m, key("9"))
	if m.Selected() != "nearly-equal-joy" {
		t.Fatalf("out of range digit moved to %q", m.Selected())
	}
	m, _ = step(t, m, key("home"))
	if m.vp.YOffset != 0 {
		t.Fatalf("home should scroll to top, offset %d", m.vp.YOffset)
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := loadedModel(t, sampleBoard(nil, domain.PolicySoft))
		m, cmd := step(t, m, key(k))
		if cmd == nil {
			t.Fatalf("%s: no cmd", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: cmd is not quit", k)
		}
		if m.View() != "" {
			t.Fatalf("%s: view after quit = %q", k, m.View())
		}
	}
}

func TestFailurePolicies(t *testing.T) {
	soft := loadedModel(t, sampleBoard(perr.Unavailablef("down"), domain.PolicySoft))
	kit.MustContain(t, soft.content, "No events")
	kit.MustNotContain(t, soft.content, "Could not load")

	loud := loadedModel(t, sampleBoard(perr.Unavailablef("down"), domain.PolicySurface))
	kit.MustContain(t, loud.content, "Could not load events (unavailable)")
	kit.MustContain(t, loud.content, "No events")
	kit.MustNotContain(t, loud.content, "down")
}

func TestSetupError(t *testing.T) {
	m := New(nil, render.Options{}, nil)
	m, _ = step(t, m, BoardLoaded{Err: perr.InvalidArgf("firestore: project is required")})
	kit.MustContain(t, m.View(), "project is required")

	// keys are harmless without a board
	m, _ = step(t, m, key("tab"))
	if m.Selected() != board.All {
		t.Fatalf("selected = %q", m.Selected())
	}
}

func TestRendersAreCounted(t *testing.T) {
	mx := metrics.New(false)
	m := New(nil, render.Options{Location: time.UTC}, mx)
	m, _ = step(t, m, BoardLoaded{Board: sampleBoard(nil, domain.PolicySoft)})
	_, _ = step(t, m, key("tab"))

	body := scrape(t, mx)
	kit.MustContain(t, body, `eventboard_renders_total{category="all",surface="tui"} 1`)
	kit.MustContain(t, body, `eventboard_renders_total{category="equal-love",surface="tui"} 1`)
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))
	return rr.Body.String()
}
