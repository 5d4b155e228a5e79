package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVGetAbsent(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, KeyProgress)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected absent key")
	}
}

func TestKVSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyProgress, `{"ls":true}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := kv.Get(ctx, KeyProgress)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if got != `{"ls":true}` {
		t.Errorf("got %q", got)
	}
}

func TestKVSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyStreak, "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, KeyStreak, "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, err := kv.Get(ctx, KeyStreak)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "2" {
		t.Errorf("got %q, want %q", got, "2")
	}
}

func TestKVDelete(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if err := kv.Set(ctx, KeyLastViewed, "ls"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Delete(ctx, KeyLastViewed); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, ok, err := kv.Get(ctx, KeyLastViewed)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected key to be gone")
	}

	// Deleting an absent key is fine.
	if err := kv.Delete(ctx, "nonexistent"); err != nil {
		t.Errorf("delete absent: %v", err)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	events, err := repo.Query(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query (empty): %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty log, got %d events", len(events))
	}

	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, LLMEventData{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "tutorial",
			InputTokens:  100 + i,
			OutputTokens: 200,
			LatencyMs:    50,
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err = repo.Query(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].ID <= events[1].ID {
		t.Error("expected newest-first ordering")
	}
	if events[0].InputTokens != 102 {
		t.Errorf("newest event input tokens = %d, want 102", events[0].InputTokens)
	}
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	err := repo.Append(ctx, LLMEventData{
		Provider: "anthropic", Model: "m", Purpose: "tutorial",
		Success: false, ErrorMessage: "rate limited",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", e.ErrorMessage)
	}

	missing, err := repo.Get(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}
}

func TestLLMEventUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.LLMEvents()
	ctx := context.Background()

	seed := []LLMEventData{
		{Provider: "gemini", Model: "m", Purpose: "tutorial", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "tutorial", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: false, ErrorMessage: "boom"},
		{Provider: "gemini", Model: "m", Purpose: "other", InputTokens: 1, OutputTokens: 2, LatencyMs: 10, Success: true},
	}
	for i, d := range seed {
		if err := repo.Append(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purposes, want 2", len(usage))
	}
	// Sorted by purpose: "other" then "tutorial".
	tut := usage[1]
	if tut.Purpose != "tutorial" {
		t.Fatalf("purpose = %q, want tutorial", tut.Purpose)
	}
	if tut.Requests != 2 || tut.Failures != 1 {
		t.Errorf("requests/failures = %d/%d, want 2/1", tut.Requests, tut.Failures)
	}
	if tut.InputTokens != 40 || tut.OutputTokens != 60 {
		t.Errorf("tokens = %d/%d, want 40/60", tut.InputTokens, tut.OutputTokens)
	}
	if tut.AvgLatencyMs != 200 {
		t.Errorf("avg latency = %d, want 200", tut.AvgLatencyMs)
	}
}
