package tutorial

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/router"
	"github.com/inkinquiry/cmdmaster/internal/screen"
	gen "github.com/inkinquiry/cmdmaster/internal/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/ui/layout"
	"github.com/inkinquiry/cmdmaster/internal/ui/theme"
)

const pollInterval = 150 * time.Millisecond

// pollMsg asks the screen to check for a finished generation.
type pollMsg struct{}

// TutorialScreen displays the tutorial for a single command. Commands
// without a built-in tutorial are generated on the fly when an AI
// provider is configured.
type TutorialScreen struct {
	tier    catalog.Tier
	command string
	tracker *progress.Service
	service *gen.Service

	tut        catalog.Tutorial
	loaded     bool
	generating bool
	generated  bool
	loadErr    error

	scrollOffset int
}

var _ screen.Screen = (*TutorialScreen)(nil)

// New creates a TutorialScreen for the given command.
func New(tier catalog.Tier, command string, tracker *progress.Service, service *gen.Service) *TutorialScreen {
	s := &TutorialScreen{
		tier:    tier,
		command: command,
		tracker: tracker,
		service: service,
	}

	if tut, err := catalog.GetTutorial(command); err == nil {
		s.tut = tut
		s.loaded = true
	}
	return s
}

func (s *TutorialScreen) Init() tea.Cmd {
	if s.loaded {
		return nil
	}
	if s.service == nil {
		s.loadErr = fmt.Errorf("no built-in tutorial for %q and no AI provider is configured", s.command)
		return nil
	}
	s.generating = true
	s.service.Request(context.Background(), s.command)
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{}
	})
}

func (s *TutorialScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		if !s.generating {
			return s, nil
		}
		res, ok := s.service.Consume()
		if !ok {
			return s, pollTick()
		}
		if res.Command != s.command {
			// Stale result from an abandoned screen.
			return s, pollTick()
		}
		s.generating = false
		if res.Err != nil {
			s.loadErr = res.Err
			return s, nil
		}
		s.tut = res.Tutorial
		s.loaded = true
		s.generated = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			s.scrollOffset++
		case "m":
			if s.loaded {
				s.tracker.MarkComplete(context.Background(), s.command)
			}
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TutorialScreen) View(width, height int) string {
	if s.generating {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  Asking the AI tutor about `%s`...", s.command))
	}
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press Esc to go back.", s.loadErr))
	}

	body := s.renderTutorial(width)
	lines := strings.Split(body, "\n")
	if s.scrollOffset > len(lines)-1 {
		s.scrollOffset = len(lines) - 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	visible := lines[s.scrollOffset:]
	if len(visible) > height {
		visible = visible[:height]
	}
	return strings.Join(visible, "\n")
}

func (s *TutorialScreen) Title() string {
	return s.command
}

// KeyHints returns the key binding hints for the footer.
func (s *TutorialScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
	}
	if s.loaded && !s.tracker.IsComplete(s.command) {
		hints = append(hints, layout.KeyHint{Key: "m", Description: "Mark learned"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *TutorialScreen) renderTutorial(width int) string {
	textWidth := min(width-8, 78)
	if textWidth < 20 {
		textWidth = 20
	}

	var b strings.Builder

	name := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  $ " + s.tut.CommandName)
	tierTag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  " + string(s.tier))
	b.WriteString(name + tierTag)
	if s.generated {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render("  ✦ AI generated"))
	}
	if s.tracker.IsComplete(s.command) {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  ✓ learned"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", textWidth)))
	b.WriteString("\n\n")

	summary := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(textWidth).
		PaddingLeft(2).
		Render(s.tut.Summary)
	b.WriteString(summary)
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(textWidth).
		PaddingLeft(2).
		Render(s.tut.Description)
	b.WriteString(desc)
	b.WriteString("\n\n")

	if len(s.tut.Examples) > 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			PaddingLeft(2).
			Render("Examples"))
		b.WriteString("\n\n")
		for _, ex := range s.tut.Examples {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				PaddingLeft(4).
				Render("$ " + ex.Command))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(textWidth).
				PaddingLeft(4).
				Render(ex.Explanation))
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
