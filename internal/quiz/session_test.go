package quiz

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
)

func newStartedSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession(WithRand(rand.New(rand.NewPCG(1, 2))))
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestNewSession_Idle(t *testing.T) {
	s := NewSession()
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if s.ID() == "" {
		t.Error("expected a session ID")
	}
	if len(s.Challenges()) != 0 {
		t.Error("idle session should have no challenges")
	}
}

func TestStart_DrawsFiveDistinctCommands(t *testing.T) {
	s := newStartedSession(t)

	if s.State() != StateActive {
		t.Fatalf("state = %v, want active", s.State())
	}
	chs := s.Challenges()
	if len(chs) != DrawSize {
		t.Fatalf("drew %d commands, want %d", len(chs), DrawSize)
	}

	seen := make(map[string]bool)
	for _, ch := range chs {
		if seen[ch.Command] {
			t.Errorf("command %q drawn twice", ch.Command)
		}
		seen[ch.Command] = true
		if len(ch.Questions) == 0 {
			t.Errorf("command %q drawn without questions", ch.Command)
		}
		if _, ok := catalog.TierOf(ch.Command); !ok {
			t.Errorf("drawn command %q is not in the catalog", ch.Command)
		}
	}
}

func TestStart_AlreadyStarted(t *testing.T) {
	s := newStartedSession(t)
	before := s.Challenges()

	err := s.Start()
	if !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("err = %v, want ErrAlreadyStarted", err)
	}
	after := s.Challenges()
	if len(after) != len(before) || after[0].Command != before[0].Command {
		t.Error("failed Start must not change the draw")
	}

	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("start after finish: err = %v, want ErrAlreadyStarted", err)
	}
}

func TestAnswer_WriteOnce(t *testing.T) {
	s := newStartedSession(t)
	cmd := s.Challenges()[0].Command
	q := s.Challenges()[0].Questions[0]

	if err := s.Answer(cmd, 0, q.Options[0]); err != nil {
		t.Fatalf("answer: %v", err)
	}
	err := s.Answer(cmd, 0, q.Options[1])
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("err = %v, want ErrAlreadyAnswered", err)
	}

	got, ok := s.SelectedAnswer(cmd, 0)
	if !ok || got != q.Options[0] {
		t.Errorf("selected = (%q, %v), want first answer kept", got, ok)
	}
}

func TestAnswer_Validation(t *testing.T) {
	s := newStartedSession(t)
	cmd := s.Challenges()[0].Command

	if err := s.Answer("not-drawn", 0, "x"); err == nil {
		t.Error("expected error for command outside the draw")
	}
	if err := s.Answer(cmd, 99, "x"); err == nil {
		t.Error("expected error for out-of-range question index")
	}
	if err := s.Answer(cmd, -1, "x"); err == nil {
		t.Error("expected error for negative question index")
	}
}

func TestAnswer_NotActive(t *testing.T) {
	s := NewSession()
	if err := s.Answer("ls", 0, "x"); !errors.Is(err, ErrNotActive) {
		t.Errorf("idle answer: err = %v, want ErrNotActive", err)
	}

	s = newStartedSession(t)
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	cmd := s.Challenges()[0].Command
	if err := s.Answer(cmd, 0, "x"); !errors.Is(err, ErrNotActive) {
		t.Errorf("finished answer: err = %v, want ErrNotActive", err)
	}
}

func TestSubmit_NotActive(t *testing.T) {
	s := NewSession()
	if err := s.Submit(); !errors.Is(err, ErrNotActive) {
		t.Errorf("idle submit: err = %v, want ErrNotActive", err)
	}
}

func TestScore_UnansweredCountsIncorrect(t *testing.T) {
	s := newStartedSession(t)

	// Answer the first 9 questions correctly, 7 truly correct and 2
	// deliberately wrong; leave the rest unanswered.
	answered, correct := 0, 0
	for _, ch := range s.Challenges() {
		for i, q := range ch.Questions {
			if answered == 9 {
				break
			}
			sel := q.Answer
			if answered >= 7 {
				sel = wrongOption(q)
			} else {
				correct++
			}
			if err := s.Answer(ch.Command, i, sel); err != nil {
				t.Fatalf("answer: %v", err)
			}
			answered++
		}
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if got := s.Score(); got != correct {
		t.Errorf("score = %d, want %d", got, correct)
	}
	if got := s.TotalQuestions(); got != 15 {
		t.Errorf("total = %d, want 15", got)
	}
	// 7/15 = 46.67%, rounded to 47.
	if got := s.Percentage(); got != 47 {
		t.Errorf("percentage = %d, want 47", got)
	}
	if s.Mastered() {
		t.Error("47%% must not count as mastery")
	}
}

func TestPercentage_Rounding(t *testing.T) {
	s := newStartedSession(t)

	for _, ch := range s.Challenges() {
		for i, q := range ch.Questions {
			if err := s.Answer(ch.Command, i, q.Answer); err != nil {
				t.Fatalf("answer: %v", err)
			}
		}
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if got := s.Percentage(); got != 100 {
		t.Errorf("percentage = %d, want 100", got)
	}
	if !s.Mastered() {
		t.Error("perfect score should be mastery")
	}
}

func TestPercentage_EmptyDraw(t *testing.T) {
	s := NewSession()
	if got := s.Percentage(); got != 0 {
		t.Errorf("percentage = %d, want 0", got)
	}
	if s.Mastered() {
		t.Error("empty session must not be mastered")
	}
}

func TestMastered_AtThreshold(t *testing.T) {
	s := newStartedSession(t)

	// 12/15 = 80% exactly.
	answered := 0
	for _, ch := range s.Challenges() {
		for i, q := range ch.Questions {
			sel := q.Answer
			if answered >= 12 {
				sel = wrongOption(q)
			}
			if err := s.Answer(ch.Command, i, sel); err != nil {
				t.Fatalf("answer: %v", err)
			}
			answered++
		}
	}
	if got := s.Percentage(); got != 80 {
		t.Fatalf("percentage = %d, want 80", got)
	}
	if !s.Mastered() {
		t.Error("exactly 80%% counts as mastery")
	}
}

func TestReset(t *testing.T) {
	s := newStartedSession(t)
	cmd := s.Challenges()[0].Command
	q := s.Challenges()[0].Questions[0]
	if err := s.Answer(cmd, 0, q.Answer); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	s.Reset()
	if s.State() != StateIdle {
		t.Errorf("state = %v, want idle", s.State())
	}
	if len(s.Challenges()) != 0 || s.AnsweredCount() != 0 || s.Score() != 0 {
		t.Error("reset should discard the draw and all answers")
	}

	// A reset session can start again.
	if err := s.Start(); err != nil {
		t.Errorf("restart after reset: %v", err)
	}
}

func TestDeterministicDraw(t *testing.T) {
	a := NewSession(WithRand(rand.New(rand.NewPCG(7, 7))))
	b := NewSession(WithRand(rand.New(rand.NewPCG(7, 7))))
	if err := a.Start(); err != nil {
		t.Fatalf("start a: %v", err)
	}
	if err := b.Start(); err != nil {
		t.Fatalf("start b: %v", err)
	}
	for i := range a.Challenges() {
		if a.Challenges()[i].Command != b.Challenges()[i].Command {
			t.Fatalf("same seed drew different commands at %d: %q vs %q",
				i, a.Challenges()[i].Command, b.Challenges()[i].Command)
		}
	}
}

// wrongOption returns an option that is not the answer.
func wrongOption(q catalog.QuizQuestion) string {
	for _, opt := range q.Options {
		if opt != q.Answer {
			return opt
		}
	}
	return ""
}
