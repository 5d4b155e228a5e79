package progress

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inkinquiry/cmdmaster/internal/catalog"
	"github.com/inkinquiry/cmdmaster/internal/store"
)

// fakeKV is an in-memory store.KVRepo with failure injection.
type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var (
	day1 = time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
	day4 = day1.AddDate(0, 0, 3)
)

func quietWarn(string, ...any) {}

func newTestService(kv store.KVRepo, now time.Time) *Service {
	return New(context.Background(), kv,
		WithClock(fixedClock(now)),
		WithWarnLog(quietWarn))
}

func TestNew_EmptyStore(t *testing.T) {
	s := newTestService(newFakeKV(), day1)

	if s.IsComplete("ls") {
		t.Error("fresh store should have nothing complete")
	}
	overall := s.OverallProgress()
	if overall.Completed != 0 || overall.Percentage != 0 {
		t.Errorf("overall = %+v, want zero", overall)
	}
	if overall.Total != 136 {
		t.Errorf("total = %d, want 136", overall.Total)
	}
	if _, ok := s.LastViewed(); ok {
		t.Error("fresh store should have no last viewed command")
	}
	// First ever launch starts a streak of 1.
	if got := s.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestMarkComplete_Monotonic(t *testing.T) {
	kv := newFakeKV()
	s := newTestService(kv, day1)
	ctx := context.Background()

	s.MarkComplete(ctx, "ls")
	if !s.IsComplete("ls") {
		t.Fatal("ls should be complete")
	}
	writes := kv.sets

	// Re-marking is a no-op, including persistence.
	s.MarkComplete(ctx, "ls")
	if kv.sets != writes {
		t.Error("re-marking a complete command should not write")
	}
}

func TestMarkComplete_PersistsAcrossRestart(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()

	s := newTestService(kv, day1)
	s.MarkComplete(ctx, "ls")
	s.MarkComplete(ctx, "grep")

	s2 := newTestService(kv, day1)
	if !s2.IsComplete("ls") || !s2.IsComplete("grep") {
		t.Error("completion should survive a restart")
	}
	if s2.IsComplete("pwd") {
		t.Error("pwd was never completed")
	}
}

func TestTierProgress_Rounding(t *testing.T) {
	kv := newFakeKV()
	s := newTestService(kv, day1)
	ctx := context.Background()

	// 9 of 30 beginner commands is exactly 30%.
	for _, cmd := range catalog.Commands(catalog.TierBeginner)[:9] {
		s.MarkComplete(ctx, cmd)
	}
	if got := s.TierProgress(catalog.TierBeginner); got != 30 {
		t.Errorf("beginner progress = %d, want 30", got)
	}

	// 13 of 29 intermediate commands is 44.83%, rounded to 45.
	for _, cmd := range catalog.Commands(catalog.TierIntermediate)[:13] {
		s.MarkComplete(ctx, cmd)
	}
	if got := s.TierProgress(catalog.TierIntermediate); got != 45 {
		t.Errorf("intermediate progress = %d, want 45", got)
	}

	if got := s.TierProgress(catalog.TierExpert); got != 0 {
		t.Errorf("expert progress = %d, want 0", got)
	}
}

func TestOverallProgress(t *testing.T) {
	kv := newFakeKV()
	s := newTestService(kv, day1)
	ctx := context.Background()

	for _, cmd := range catalog.Commands(catalog.TierBeginner) {
		s.MarkComplete(ctx, cmd)
	}
	got := s.OverallProgress()
	if got.Completed != 30 || got.Total != 136 {
		t.Fatalf("overall = %+v", got)
	}
	// 30/136 = 22.06%, rounded to 22.
	if got.Percentage != 22 {
		t.Errorf("percentage = %d, want 22", got.Percentage)
	}
}

func TestStreak_SameDayIsNoOp(t *testing.T) {
	kv := newFakeKV()
	kv.data[store.KeyStreak] = `{"count":3,"lastDate":"2024-03-10"}`

	s := newTestService(kv, day1)
	if got := s.CurrentStreak(); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
	if kv.sets != 0 {
		t.Error("already-active day should not rewrite the streak")
	}
}

func TestStreak_YesterdayExtends(t *testing.T) {
	kv := newFakeKV()
	kv.data[store.KeyStreak] = `{"count":3,"lastDate":"2024-03-10"}`

	s := newTestService(kv, day2)
	if got := s.CurrentStreak(); got != 4 {
		t.Errorf("streak = %d, want 4", got)
	}
	if kv.data[store.KeyStreak] != `{"count":4,"lastDate":"2024-03-11"}` {
		t.Errorf("persisted streak = %s", kv.data[store.KeyStreak])
	}
}

func TestStreak_GapResets(t *testing.T) {
	kv := newFakeKV()
	kv.data[store.KeyStreak] = `{"count":5,"lastDate":"2024-03-10"}`

	s := newTestService(kv, day4)
	if got := s.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestStreak_EvaluatedOncePerProcess(t *testing.T) {
	kv := newFakeKV()
	s := newTestService(kv, day1)

	before := s.CurrentStreak()
	// Nothing between construction and later reads may change it.
	s.MarkComplete(context.Background(), "ls")
	if got := s.CurrentStreak(); got != before {
		t.Errorf("streak changed mid-process: %d -> %d", before, got)
	}
}

func TestLastViewed_RoundTrip(t *testing.T) {
	kv := newFakeKV()
	ctx := context.Background()

	s := newTestService(kv, day1)
	s.RecordView(ctx, catalog.TierBeginner, "ls")

	lv, ok := s.LastViewed()
	if !ok {
		t.Fatal("expected a last viewed command")
	}
	if lv.Tier != catalog.TierBeginner || lv.Command != "ls" {
		t.Errorf("last viewed = %+v", lv)
	}

	s2 := newTestService(kv, day1)
	lv2, ok := s2.LastViewed()
	if !ok || lv2 != lv {
		t.Errorf("restart: got (%+v, %v), want (%+v, true)", lv2, ok, lv)
	}
}

func TestLoad_CorruptBlobsDegradeToDefaults(t *testing.T) {
	kv := newFakeKV()
	kv.data[store.KeyProgress] = `{not json`
	kv.data[store.KeyStreak] = `]]`
	kv.data[store.KeyLastViewed] = `42`

	var warnings int
	s := New(context.Background(), kv,
		WithClock(fixedClock(day1)),
		WithWarnLog(func(string, ...any) { warnings++ }))

	if s.IsComplete("ls") {
		t.Error("corrupt progress should read as empty")
	}
	if got := s.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want fresh streak of 1", got)
	}
	if _, ok := s.LastViewed(); ok {
		t.Error("corrupt last viewed should read as absent")
	}
	if warnings == 0 {
		t.Error("corrupt blobs should be reported")
	}
}

func TestLoad_ReadFailureDegradesToDefaults(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("disk on fire")

	s := newTestService(kv, day1)
	if s.OverallProgress().Completed != 0 {
		t.Error("unreadable store should read as empty")
	}
	if got := s.CurrentStreak(); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestWriteFailure_LoggedNotFatal(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("disk full")

	var logged []string
	s := New(context.Background(), kv,
		WithClock(fixedClock(day1)),
		WithWarnLog(func(format string, args ...any) {
			logged = append(logged, fmt.Sprintf(format, args...))
		}))

	s.MarkComplete(context.Background(), "ls")

	// In-memory state stays authoritative.
	if !s.IsComplete("ls") {
		t.Error("completion should stick despite the write failure")
	}
	if len(logged) == 0 {
		t.Error("write failures should be logged")
	}
}
