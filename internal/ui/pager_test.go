package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/ideadice/internal/config"
)

func sizedPager(t *testing.T, m pagerModel, w, h int) pagerModel {
	t.Helper()
	sized, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return sized.(pagerModel)
}

func TestPagerViewFillsScreen(t *testing.T) {
	m := sizedPager(t, pagerModel{
		content: "Line 1\nLine 2\nLine 3",
		theme:   ResolveTheme(config.ThemeConfig{}),
	}, 80, 24)

	lines := strings.Split(stripANSI(m.View()), "\n")
	if len(lines) != 24 {
		t.Errorf("expected 24 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if len(line) < 80 {
			t.Errorf("line %d: expected min width 80, got %d", i, len(line))
		}
	}
}

func TestPagerRespectsMaxWidth(t *testing.T) {
	m := sizedPager(t, pagerModel{
		content:  "Some content to display in the pager",
		maxWidth: 60,
		theme:    ResolveTheme(config.ThemeConfig{Preset: "midnight"}),
	}, 100, 30)

	if m.viewport.Width != 60 {
		t.Errorf("expected viewport width 60, got %d", m.viewport.Width)
	}
	first := stripANSI(strings.Split(m.View(), "\n")[0])
	if !strings.HasPrefix(first, strings.Repeat(" ", 20)+"Some content") {
		t.Errorf("expected content centered, got %q", first)
	}
}

func TestPagerViewPreservesContent(t *testing.T) {
	m := sizedPager(t, pagerModel{
		content: "This is the pager content",
		theme:   ResolveTheme(config.ThemeConfig{}),
	}, 80, 24)

	stripped := stripANSI(m.View())
	if !strings.Contains(stripped, "pager content") {
		t.Error("expected pager content in output")
	}
	if !strings.Contains(stripped, "scroll") {
		t.Error("expected footer help text in output")
	}
}

func TestPagerQuitKeys(t *testing.T) {
	m := sizedPager(t, pagerModel{content: "x"}, 40, 10)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		if _, cmd := m.Update(key); cmd == nil {
			t.Errorf("%q: expected quit command", key.String())
		}
	}
}

func TestOutputOrPageWritesDirectly(t *testing.T) {
	var buf bytes.Buffer
	if err := OutputOrPage(&buf, "hello\n", false, 100, Theme{}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
