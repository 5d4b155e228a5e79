package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/progress"
	qz "github.com/inkinquiry/cmdmaster/internal/quiz"
	"github.com/inkinquiry/cmdmaster/internal/router"
	"github.com/inkinquiry/cmdmaster/internal/screen"
	"github.com/inkinquiry/cmdmaster/internal/ui/components"
	"github.com/inkinquiry/cmdmaster/internal/ui/layout"
	"github.com/inkinquiry/cmdmaster/internal/ui/theme"
)

// question is one flattened quiz question with its owning command.
type question struct {
	command string
	index   int
	data    catalog.QuizQuestion
}

// QuizScreen runs a quiz round over a random draw of commands.
type QuizScreen struct {
	session *qz.Session
	tracker *progress.Service

	questions []question
	current   int
	choice    components.MultiChoice
	answered  bool
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a QuizScreen with a fresh idle session.
func New(tracker *progress.Service) *QuizScreen {
	return &QuizScreen{
		session: qz.NewSession(),
		tracker: tracker,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.session.State() {
	case qz.StateIdle:
		switch kmsg.String() {
		case "enter":
			s.start()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case qz.StateActive:
		if s.answered {
			// Feedback shown; any key advances.
			s.advance()
			return s, nil
		}
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			q := s.questions[s.current]
			_ = s.session.Answer(q.command, q.index, q.data.Options[s.choice.ChosenIndex])
			s.answered = true
		}
		return s, cmd

	case qz.StateFinished:
		switch kmsg.String() {
		case "r":
			s.session.Reset()
			s.start()
		case "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// start activates the session and flattens the draw into a question list.
func (s *QuizScreen) start() {
	if err := s.session.Start(); err != nil {
		return
	}
	s.questions = nil
	for _, ch := range s.session.Challenges() {
		for i, q := range ch.Questions {
			s.questions = append(s.questions, question{command: ch.Command, index: i, data: q})
		}
	}
	s.current = 0
	s.answered = false
	if len(s.questions) > 0 {
		s.loadChoice()
	} else {
		_ = s.session.Submit()
	}
}

// advance moves to the next question, or submits after the last one.
func (s *QuizScreen) advance() {
	s.answered = false
	s.current++
	if s.current >= len(s.questions) {
		_ = s.session.Submit()
		return
	}
	s.loadChoice()
}

func (s *QuizScreen) loadChoice() {
	q := s.questions[s.current]
	correct := 0
	for i, opt := range q.data.Options {
		if opt == q.data.Answer {
			correct = i
			break
		}
	}
	s.choice = components.NewMultiChoice(q.data.Question, q.data.Options, correct)
}

func (s *QuizScreen) View(width, height int) string {
	switch s.session.State() {
	case qz.StateIdle:
		return s.renderIdle(width, height)
	case qz.StateActive:
		return s.renderActive(width, height)
	default:
		return s.renderFinished(width, height)
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz Challenge"
}

// KeyHints returns the key binding hints for the footer.
func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.State() {
	case qz.StateIdle:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case qz.StateActive:
		if s.answered {
			return []layout.KeyHint{{Key: "Any key", Description: "Next"}}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
		}
	default:
		return []layout.KeyHint{
			{Key: "r", Description: "Try again"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *QuizScreen) renderIdle(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("QUIZ CHALLENGE")
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d random commands, three questions each.", qz.DrawSize))
	goal := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Score %d%% or better to prove mastery.", qz.MasteryThreshold))
	prompt := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render("Press Enter to begin")

	content := strings.Join([]string{title, "", body, goal, "", prompt}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderActive(width, height int) string {
	q := s.questions[s.current]

	var b strings.Builder

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Command: %s", q.command))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d", s.current+1, len(s.questions)))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render("  " + strings.Repeat("─", max(width-6, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.answered {
		b.WriteString("\n")
		if s.choice.IsCorrect() {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key to continue..."))
	}

	return b.String()
}

func (s *QuizScreen) renderFinished(width, height int) string {
	score := s.session.Score()
	total := s.session.TotalQuestions()
	pct := s.session.Percentage()

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ROUND COMPLETE")

	scoreLine := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Score: %d/%d (%d%%)", score, total, pct))

	var verdict string
	if s.session.Mastered() {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("🏆 Mastery achieved!")
	} else {
		verdict = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Keep practicing — %d%% unlocks mastery.", qz.MasteryThreshold))
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("r: try again   Enter: back home")

	content := strings.Join([]string{title, "", scoreLine, verdict, "", prompt}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
