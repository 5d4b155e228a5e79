package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/router"
	"github.com/inkinquiry/cmdmaster/internal/screen"
	quizscreen "github.com/inkinquiry/cmdmaster/internal/screens/quiz"
	"github.com/inkinquiry/cmdmaster/internal/screens/tiers"
	tutorialscreen "github.com/inkinquiry/cmdmaster/internal/screens/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/ui/components"
	"github.com/inkinquiry/cmdmaster/internal/ui/layout"
	"github.com/inkinquiry/cmdmaster/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu     components.Menu
	tracker  *progress.Service
	resuming *progress.LastViewed
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tracker *progress.Service, tutorials *tutorial.Service) *HomeScreen {
	var resuming *progress.LastViewed
	if lv, ok := tracker.LastViewed(); ok {
		resuming = &lv
	}

	var items []components.MenuItem

	if resuming != nil {
		lv := *resuming
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("RESUME: %s (%s)", lv.Command, lv.Tier),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: tutorialscreen.New(lv.Tier, lv.Command, tracker, tutorials),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "BROWSE COMMANDS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: tiers.New(tracker, tutorials)}
			}
		}},
		components.MenuItem{Label: "QUIZ CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(tracker)}
			}
		}},
		components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:     components.NewMenu(items),
		tracker:  tracker,
		resuming: resuming,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderTitle(width))
	sections = append(sections, h.renderStats(width))
	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// KeyHints returns the key binding hints for the footer.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func renderTitle(width int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("C M D M A S T E R")
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Master the Linux command line, one command at a time")
	block := title + "\n" + sub
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (h *HomeScreen) renderStats(width int) string {
	overall := h.tracker.OverallProgress()
	streak := h.tracker.CurrentStreak()
	title := catalog.LearnerTitle(overall.Percentage)

	stats := []string{
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("%d/%d learned", overall.Completed, overall.Total)),
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("🔥 %d day streak", streak)),
		lipgloss.NewStyle().Foreground(theme.Primary).
			Render(title),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 3).
		Render(strings.Join(stats, lipgloss.NewStyle().Foreground(theme.Border).Render("  │  ")))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
