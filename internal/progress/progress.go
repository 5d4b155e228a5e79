package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/store"
)

// LastViewed records the command most recently opened by the learner.
// JSON field names match the persisted blob format.
type LastViewed struct {
	Tier    catalog.Tier `json:"level"`
	Command string       `json:"command"`
}

// Overall summarizes completion across the whole catalog.
type Overall struct {
	Completed  int
	Total      int
	Percentage int
}

// streakState is the persisted daily-streak blob.
type streakState struct {
	Count    int    `json:"count"`
	LastDate string `json:"lastDate"` // YYYY-MM-DD, empty when never active
}

const dayFormat = "2006-01-02"

// Service tracks command completion, the daily streak, and the last
// viewed command. State is loaded once at construction and persisted
// through the KV repo on every mutation. Storage write failures are
// reported through the warn hook and never surfaced to callers.
type Service struct {
	kv   store.KVRepo
	now  func() time.Time
	warn func(format string, args ...any)

	mu         sync.Mutex
	completed  map[string]bool
	streak     streakState
	lastViewed *LastViewed
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source. Used by tests to pin the day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithWarnLog overrides the storage-failure log hook.
func WithWarnLog(warn func(format string, args ...any)) Option {
	return func(s *Service) { s.warn = warn }
}

// New loads persisted state and evaluates the daily streak. A corrupt
// or unreadable blob degrades to its empty default; the streak is
// advanced at most once per process lifetime, here.
func New(ctx context.Context, kv store.KVRepo, opts ...Option) *Service {
	s := &Service{
		kv:        kv,
		now:       time.Now,
		warn:      warnToStderr,
		completed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load(ctx)
	s.evaluateStreak(ctx)
	return s
}

func warnToStderr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// load reads all three blobs. Any read or decode failure leaves the
// corresponding state at its empty default.
func (s *Service) load(ctx context.Context) {
	if raw, ok := s.get(ctx, store.KeyProgress); ok {
		var m map[string]bool
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			s.warn("decode progress: %v", err)
		} else {
			s.completed = m
		}
	}
	if s.completed == nil {
		s.completed = make(map[string]bool)
	}

	if raw, ok := s.get(ctx, store.KeyStreak); ok {
		var st streakState
		if err := json.Unmarshal([]byte(raw), &st); err != nil {
			s.warn("decode streak: %v", err)
		} else {
			s.streak = st
		}
	}

	if raw, ok := s.get(ctx, store.KeyLastViewed); ok {
		var lv LastViewed
		if err := json.Unmarshal([]byte(raw), &lv); err != nil {
			s.warn("decode last viewed: %v", err)
		} else if lv.Command != "" {
			s.lastViewed = &lv
		}
	}
}

func (s *Service) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.warn("read %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

// evaluateStreak applies the calendar-day rules once:
// already active today is a no-op, yesterday extends the run by one,
// anything else (including never) starts a new run at 1.
func (s *Service) evaluateStreak(ctx context.Context) {
	today := s.now().Format(dayFormat)
	if s.streak.LastDate == today {
		return
	}

	yesterday := s.now().AddDate(0, 0, -1).Format(dayFormat)
	if s.streak.LastDate == yesterday {
		s.streak.Count++
	} else {
		s.streak.Count = 1
	}
	s.streak.LastDate = today
	s.persist(ctx, store.KeyStreak, s.streak)
}

// persist marshals value and writes it under key. Failures are logged
// through the warn hook only; in-memory state stays authoritative.
func (s *Service) persist(ctx context.Context, key string, value any) {
	b, err := json.Marshal(value)
	if err != nil {
		s.warn("encode %s: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		s.warn("save %s: %v", key, err)
	}
}

// MarkComplete flags a command as completed. Completion is monotonic:
// marking an already-complete command changes nothing.
func (s *Service) MarkComplete(ctx context.Context, cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed[cmd] {
		return
	}
	s.completed[cmd] = true
	s.persist(ctx, store.KeyProgress, s.completed)
}

// IsComplete reports whether a command has been completed.
func (s *Service) IsComplete(cmd string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[cmd]
}

// TierProgress returns the completion percentage for one tier,
// rounded half-up. A tier with no commands is 0.
func (s *Service) TierProgress(t catalog.Tier) int {
	cmds := catalog.Commands(t)
	if len(cmds) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	done := 0
	for _, cmd := range cmds {
		if s.completed[cmd] {
			done++
		}
	}
	return percentage(done, len(cmds))
}

// TierCounts returns completed and total command counts for one tier.
func (s *Service) TierCounts(t catalog.Tier) (done, total int) {
	cmds := catalog.Commands(t)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cmd := range cmds {
		if s.completed[cmd] {
			done++
		}
	}
	return done, len(cmds)
}

// OverallProgress returns completion across every tier.
func (s *Service) OverallProgress() Overall {
	all := catalog.AllCommands()
	if len(all) == 0 {
		return Overall{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	done := 0
	for _, cmd := range all {
		if s.completed[cmd] {
			done++
		}
	}
	return Overall{
		Completed:  done,
		Total:      len(all),
		Percentage: percentage(done, len(all)),
	}
}

// CurrentStreak returns the streak length as evaluated at construction.
func (s *Service) CurrentStreak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak.Count
}

// RecordView stores the command the learner just opened.
func (s *Service) RecordView(ctx context.Context, tier catalog.Tier, cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastViewed = &LastViewed{Tier: tier, Command: cmd}
	s.persist(ctx, store.KeyLastViewed, s.lastViewed)
}

// LastViewed returns the most recently viewed command. The second
// return value is false when nothing has been viewed yet.
func (s *Service) LastViewed() (LastViewed, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastViewed == nil {
		return LastViewed{}, false
	}
	return *s.lastViewed, true
}

// percentage rounds done/total to a whole percent, half away from zero.
// The rounding is applied once, on the final ratio.
func percentage(done, total int) int {
	return int(math.Round(float64(done) / float64(total) * 100))
}
