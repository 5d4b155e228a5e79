package commands

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/router"
	"github.com/inkinquiry/cmdmaster/internal/screen"
	tutorialscreen "github.com/inkinquiry/cmdmaster/internal/screens/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/ui/components"
	"github.com/inkinquiry/cmdmaster/internal/ui/layout"
	"github.com/inkinquiry/cmdmaster/internal/ui/theme"
)

// CommandsScreen lists the commands of one tier with completion marks
// and a fuzzy-ish substring filter.
type CommandsScreen struct {
	tier      catalog.Tier
	tracker   *progress.Service
	tutorials *tutorial.Service

	all      []string
	filtered []string
	filter   components.TextInput

	filtering    bool
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*CommandsScreen)(nil)

// New creates a new CommandsScreen for the given tier.
func New(tier catalog.Tier, tracker *progress.Service, tutorials *tutorial.Service) *CommandsScreen {
	all := catalog.Commands(tier)
	return &CommandsScreen{
		tier:      tier,
		tracker:   tracker,
		tutorials: tutorials,
		all:       all,
		filtered:  all,
		filter:    components.NewTextInput("type to filter…", 0),
	}
}

func (s *CommandsScreen) Init() tea.Cmd {
	return nil
}

func (s *CommandsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filtering {
		switch kmsg.String() {
		case "enter":
			s.filtering = false
			s.filter.Model.Blur()
			return s, nil
		default:
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.applyFilter()
			return s, cmd
		}
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.filtered)-1 {
			s.cursor++
		}
	case "/":
		s.filtering = true
		return s, s.filter.Init()
	case "enter":
		return s, s.openCommand()
	case "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// applyFilter recomputes the visible command list from the filter text.
func (s *CommandsScreen) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(s.filter.Value()))
	if query == "" {
		s.filtered = s.all
	} else {
		var matched []string
		for _, cmd := range s.all {
			if strings.Contains(strings.ToLower(cmd), query) {
				matched = append(matched, cmd)
			}
		}
		s.filtered = matched
	}
	if s.cursor >= len(s.filtered) {
		s.cursor = len(s.filtered) - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
	s.scrollOffset = 0
}

// openCommand records the view and pushes the tutorial screen.
func (s *CommandsScreen) openCommand() tea.Cmd {
	if s.cursor < 0 || s.cursor >= len(s.filtered) {
		return nil
	}
	cmd := s.filtered[s.cursor]
	s.tracker.RecordView(context.Background(), s.tier, cmd)
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: tutorialscreen.New(s.tier, cmd, s.tracker, s.tutorials),
		}
	}
}

func (s *CommandsScreen) View(width, height int) string {
	var b strings.Builder

	filterLine := "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ ")
	if s.filtering || s.filter.Value() != "" {
		filterLine += s.filter.View()
	} else {
		filterLine += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("press / to filter")
	}
	b.WriteString(filterLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	listHeight := height - 3
	if listHeight < 1 {
		listHeight = 1
	}
	s.adjustScroll(listHeight)

	if len(s.filtered) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\nNo commands match."))
		return b.String()
	}

	for i := s.scrollOffset; i < len(s.filtered) && i < s.scrollOffset+listHeight; i++ {
		b.WriteString(s.renderRow(s.filtered[i], i == s.cursor, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *CommandsScreen) Title() string {
	return fmt.Sprintf("%s Commands", s.tier)
}

// KeyHints returns the key binding hints for the footer.
func (s *CommandsScreen) KeyHints() []layout.KeyHint {
	if s.filtering {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "/", Description: "Filter"},
		{Key: "Enter", Description: "Learn"},
		{Key: "Esc", Description: "Back"},
	}
}

// adjustScroll keeps the cursor inside the viewport.
func (s *CommandsScreen) adjustScroll(height int) {
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *CommandsScreen) renderRow(cmd string, selected bool, width int) string {
	mark := "  "
	markStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.tracker.IsComplete(cmd) {
		mark = "✓ "
		markStyle = lipgloss.NewStyle().Foreground(theme.Success)
	}

	cursor := "  "
	nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		cursor = "▸ "
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	var badge string
	if !catalog.HasTutorial(cmd) {
		badge = lipgloss.NewStyle().Foreground(theme.Secondary).Render("  AI")
	}

	return "  " + cursor + markStyle.Render(mark) + nameStyle.Render(cmd) + badge
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
