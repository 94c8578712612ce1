package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

func init() {
	registry.Register("recording", func() registry.Game { return &recordingGame{} })
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	if len(m.items) == 0 {
		t.Fatal("menu should list registered games")
	}

	if !strings.Contains(m.View(), "Recording") {
		t.Error("View() should list game titles")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0 at the top", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() == nil || cmd == nil {
		t.Fatal("enter should select and exit the menu")
	}
	if m.Selected().GameID != m.items[0].GameID {
		t.Errorf("Selected() = %q, expected %q", m.Selected().GameID, m.items[0].GameID)
	}
}

func TestMenuResizeAndQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 90 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %dx%d, expected 90x30", cfg.ScreenW, cfg.ScreenH)
	}

	next, _ = m.Update(runeKey('q'))
	m = next.(MenuModel)
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}
