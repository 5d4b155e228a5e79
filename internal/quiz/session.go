package quiz

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
)

// State is the quiz session lifecycle state.
type State int

const (
	StateIdle State = iota
	StateActive
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DrawSize is how many commands a quiz round covers.
const DrawSize = 5

// MasteryThreshold is the minimum percentage that counts as mastery.
const MasteryThreshold = 80

var (
	// ErrAlreadyStarted is returned by Start on a non-idle session.
	ErrAlreadyStarted = errors.New("quiz: session already started")

	// ErrNotActive is returned by Answer and Submit outside the active state.
	ErrNotActive = errors.New("quiz: session not active")

	// ErrAlreadyAnswered is returned when re-answering a question.
	// Answers are write-once.
	ErrAlreadyAnswered = errors.New("quiz: question already answered")
)

// Challenge is one drawn command with its full question bank.
type Challenge struct {
	Command   string
	Questions []catalog.QuizQuestion
}

// Session is a single quiz attempt over a random draw of commands.
// It is a pure state machine; nothing is persisted.
type Session struct {
	id         string
	rng        *rand.Rand
	state      State
	challenges []Challenge
	answers    map[string]string
}

// Option configures a Session.
type Option func(*Session)

// WithRand overrides the random source used for the draw.
// Used by tests to make draws deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// NewSession creates an idle session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		id:      uuid.NewString(),
		answers: make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start draws up to DrawSize quizzable commands uniformly without
// replacement and activates the session. Starting a non-idle session
// returns ErrAlreadyStarted and changes nothing.
func (s *Session) Start() error {
	if s.state != StateIdle {
		return ErrAlreadyStarted
	}

	pool := catalog.QuizzableCommands()
	n := DrawSize
	if n > len(pool) {
		n = len(pool)
	}

	for _, i := range s.perm(len(pool))[:n] {
		cmd := pool[i]
		s.challenges = append(s.challenges, Challenge{
			Command:   cmd,
			Questions: catalog.Questions(cmd),
		})
	}
	s.state = StateActive
	return nil
}

func (s *Session) perm(n int) []int {
	if s.rng != nil {
		return s.rng.Perm(n)
	}
	return rand.Perm(n)
}

// Challenges returns the drawn commands. Empty while idle.
func (s *Session) Challenges() []Challenge {
	return s.challenges
}

// Answer records a selection for one question. Answers are write-once:
// a second answer for the same question returns ErrAlreadyAnswered and
// keeps the first.
func (s *Session) Answer(cmd string, qIdx int, selection string) error {
	if s.state != StateActive {
		return ErrNotActive
	}

	ch, ok := s.challenge(cmd)
	if !ok {
		return fmt.Errorf("quiz: command %q is not part of this session", cmd)
	}
	if qIdx < 0 || qIdx >= len(ch.Questions) {
		return fmt.Errorf("quiz: question index %d out of range for %q", qIdx, cmd)
	}

	key := answerKey(cmd, qIdx)
	if _, done := s.answers[key]; done {
		return ErrAlreadyAnswered
	}
	s.answers[key] = selection
	return nil
}

// SelectedAnswer returns the recorded selection for a question.
// The second return value is false for unanswered questions.
func (s *Session) SelectedAnswer(cmd string, qIdx int) (string, bool) {
	sel, ok := s.answers[answerKey(cmd, qIdx)]
	return sel, ok
}

// AnsweredCount returns how many questions have been answered.
func (s *Session) AnsweredCount() int {
	return len(s.answers)
}

// Submit finishes the session. Unanswered questions score as incorrect.
func (s *Session) Submit() error {
	if s.state != StateActive {
		return ErrNotActive
	}
	s.state = StateFinished
	return nil
}

// Reset returns the session to idle from any state, discarding the
// draw and all answers. The session ID is unchanged.
func (s *Session) Reset() {
	s.state = StateIdle
	s.challenges = nil
	s.answers = make(map[string]string)
}

// Score counts correct answers across all drawn questions.
func (s *Session) Score() int {
	score := 0
	for _, ch := range s.challenges {
		for i, q := range ch.Questions {
			if s.answers[answerKey(ch.Command, i)] == q.Answer {
				score++
			}
		}
	}
	return score
}

// TotalQuestions counts every question in the draw.
func (s *Session) TotalQuestions() int {
	total := 0
	for _, ch := range s.challenges {
		total += len(ch.Questions)
	}
	return total
}

// Percentage returns the score as a whole percent, rounded half away
// from zero. An empty draw is 0.
func (s *Session) Percentage() int {
	total := s.TotalQuestions()
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Score()) / float64(total) * 100))
}

// Mastered reports whether the score meets MasteryThreshold.
func (s *Session) Mastered() bool {
	return s.Percentage() >= MasteryThreshold
}

func (s *Session) challenge(cmd string) (Challenge, bool) {
	for _, ch := range s.challenges {
		if ch.Command == cmd {
			return ch, true
		}
	}
	return Challenge{}, false
}

func answerKey(cmd string, qIdx int) string {
	return fmt.Sprintf("%s-%d", cmd, qIdx)
}
