package commands

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
)

// fakeKV is an in-memory KV store for tests.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCommandsScreen(t *testing.T) (*CommandsScreen, *progress.Service) {
	t.Helper()
	tracker := progress.New(t.Context(), newFakeKV())
	return New(catalog.TierBeginner, tracker, nil), tracker
}

func TestCommandsScreen_ListsTierCommands(t *testing.T) {
	s, _ := testCommandsScreen(t)

	want := catalog.Commands(catalog.TierBeginner)
	if len(s.filtered) != len(want) {
		t.Fatalf("listed %d commands, want %d", len(s.filtered), len(want))
	}
	if s.filtered[0] != want[0] {
		t.Errorf("first command = %q, want %q", s.filtered[0], want[0])
	}
}

func TestCommandsScreen_FilterNarrowsList(t *testing.T) {
	s, _ := testCommandsScreen(t)

	s.Update(keyPress('/'))
	if !s.filtering {
		t.Fatal("expected filter mode after /")
	}

	for _, r := range "pwd" {
		s.Update(keyPress(r))
	}

	if len(s.filtered) != 1 || s.filtered[0] != "pwd" {
		t.Fatalf("filtered = %v, want [pwd]", s.filtered)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.filtering {
		t.Error("enter should leave filter mode")
	}
}

func TestCommandsScreen_FilterNoMatches(t *testing.T) {
	s, _ := testCommandsScreen(t)

	s.Update(keyPress('/'))
	for _, r := range "zzzz" {
		s.Update(keyPress(r))
	}

	if len(s.filtered) != 0 {
		t.Fatalf("filtered = %v, want empty", s.filtered)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "No commands match") {
		t.Error("expected empty-state message")
	}
}

func TestCommandsScreen_EnterRecordsView(t *testing.T) {
	s, tracker := testCommandsScreen(t)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}

	lv, ok := tracker.LastViewed()
	if !ok {
		t.Fatal("expected a last-viewed record")
	}
	if lv.Tier != catalog.TierBeginner {
		t.Errorf("tier = %q, want %q", lv.Tier, catalog.TierBeginner)
	}
	if lv.Command != s.filtered[0] {
		t.Errorf("command = %q, want %q", lv.Command, s.filtered[0])
	}
}

func TestCommandsScreen_CompletionMark(t *testing.T) {
	s, tracker := testCommandsScreen(t)
	tracker.MarkComplete(t.Context(), s.filtered[0])

	row := s.renderRow(s.filtered[0], false, 80)
	if !strings.Contains(row, "✓") {
		t.Error("completed command should carry a checkmark")
	}
}
