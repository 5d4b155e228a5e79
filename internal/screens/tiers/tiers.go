package tiers

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	"github.com/inkinquiry/cmdmaster/internal/router"
	"github.com/inkinquiry/cmdmaster/internal/screen"
	"github.com/inkinquiry/cmdmaster/internal/screens/commands"
	"github.com/inkinquiry/cmdmaster/internal/tutorial"
	"github.com/inkinquiry/cmdmaster/internal/ui/components"
	"github.com/inkinquiry/cmdmaster/internal/ui/layout"
	"github.com/inkinquiry/cmdmaster/internal/ui/theme"
)

// TiersScreen lists the four difficulty tiers with per-tier progress.
type TiersScreen struct {
	tracker   *progress.Service
	tutorials *tutorial.Service
	cursor    int
}

var _ screen.Screen = (*TiersScreen)(nil)

// New creates a new TiersScreen.
func New(tracker *progress.Service, tutorials *tutorial.Service) *TiersScreen {
	return &TiersScreen{
		tracker:   tracker,
		tutorials: tutorials,
	}
}

func (s *TiersScreen) Init() tea.Cmd {
	return nil
}

func (s *TiersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(catalog.AllTiers())-1 {
				s.cursor++
			}
		case "enter":
			tier := catalog.AllTiers()[s.cursor]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: commands.New(tier, s.tracker, s.tutorials),
				}
			}
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *TiersScreen) View(width, height int) string {
	var cards []string
	for i, tier := range catalog.AllTiers() {
		cards = append(cards, s.renderTierCard(tier, i == s.cursor, width))
	}
	content := strings.Join(cards, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *TiersScreen) Title() string {
	return "Tiers"
}

// KeyHints returns the key binding hints for the footer.
func (s *TiersScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TiersScreen) renderTierCard(tier catalog.Tier, selected bool, width int) string {
	done, total := s.tracker.TierCounts(tier)

	nameStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	borderColor := theme.Border
	if selected {
		nameStyle = nameStyle.Foreground(theme.Primary)
		borderColor = theme.Primary
	}

	cardWidth := min(width-8, 64)
	if cardWidth < 30 {
		cardWidth = 30
	}

	name := nameStyle.Render(string(tier))
	count := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d", done, total))

	gap := cardWidth - 4 - lipgloss.Width(name) - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	header := name + strings.Repeat(" ", gap) + count

	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(catalog.TierDescription(tier))

	var ratio float64
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	bar := components.NewProgressBar("", ratio, false, cardWidth-4).View()

	body := header + "\n" + desc + "\n" + bar

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(cardWidth).
		Render(body)
}
