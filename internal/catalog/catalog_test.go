package catalog

import (
	"testing"
)

func TestCommands_TierSizes(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierBeginner, 30},
		{TierIntermediate, 29},
		{TierAdvanced, 30},
		{TierExpert, 47},
	}
	for _, tt := range tests {
		cmds := Commands(tt.tier)
		if len(cmds) != tt.want {
			t.Errorf("Commands(%q): got %d commands, want %d", tt.tier, len(cmds), tt.want)
		}
	}
}

func TestAllCommands_TierOrder(t *testing.T) {
	all := AllCommands()
	if len(all) != 136 {
		t.Fatalf("got %d commands, want 136", len(all))
	}
	if all[0] != "pwd" {
		t.Errorf("first command: got %q, want %q", all[0], "pwd")
	}
	if all[len(all)-1] != "fsck" {
		t.Errorf("last command: got %q, want %q", all[len(all)-1], "fsck")
	}
}

func TestTierOf(t *testing.T) {
	tests := []struct {
		cmd  string
		want Tier
	}{
		{"pwd", TierBeginner},
		{"grep", TierIntermediate},
		{"systemctl", TierAdvanced},
		{"tmux", TierExpert},
	}
	for _, tt := range tests {
		got, ok := TierOf(tt.cmd)
		if !ok {
			t.Errorf("TierOf(%q): not found", tt.cmd)
			continue
		}
		if got != tt.want {
			t.Errorf("TierOf(%q): got %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestTierOf_Unknown(t *testing.T) {
	if _, ok := TierOf("frobnicate"); ok {
		t.Error("expected unknown command to be absent")
	}
}

func TestGetTutorial(t *testing.T) {
	tut, err := GetTutorial("ls")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tut.CommandName != "ls" {
		t.Errorf("got CommandName %q, want %q", tut.CommandName, "ls")
	}
	if len(tut.Examples) == 0 {
		t.Error("expected at least one example")
	}
}

func TestGetTutorial_Missing(t *testing.T) {
	// Stale IDs (e.g. from an old last-viewed record) have no content.
	if _, err := GetTutorial("frobnicate"); err == nil {
		t.Fatal("expected error for unknown command, got nil")
	}
	if HasTutorial("frobnicate") {
		t.Error("HasTutorial should be false for an unknown command")
	}
}

func TestEveryCommandHasTutorial(t *testing.T) {
	for _, cmd := range AllCommands() {
		if !HasTutorial(cmd) {
			t.Errorf("%q has no static tutorial", cmd)
		}
	}
}

func TestQuizzableCommands(t *testing.T) {
	quizzable := QuizzableCommands()
	if len(quizzable) != 10 {
		t.Fatalf("got %d quizzable commands, want 10", len(quizzable))
	}
	for i := 1; i < len(quizzable); i++ {
		if quizzable[i] < quizzable[i-1] {
			t.Errorf("quizzable commands not sorted: %q after %q", quizzable[i], quizzable[i-1])
		}
	}
	for _, cmd := range quizzable {
		if len(Questions(cmd)) != 3 {
			t.Errorf("Questions(%q): got %d questions, want 3", cmd, len(Questions(cmd)))
		}
	}
}

func TestQuestions_Unquizzable(t *testing.T) {
	if qs := Questions("echo"); qs != nil {
		t.Errorf("expected nil questions for echo, got %d", len(qs))
	}
}

func TestCommands_ReturnsCopy(t *testing.T) {
	a := Commands(TierBeginner)
	a[0] = "mutated"
	b := Commands(TierBeginner)
	if b[0] == "mutated" {
		t.Error("Commands must return a copy, not the backing slice")
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range AllTiers() {
		got, ok := ParseTier(string(tier))
		if !ok || got != tier {
			t.Errorf("ParseTier(%q): got (%q, %v)", tier, got, ok)
		}
	}
	if _, ok := ParseTier("Legendary"); ok {
		t.Error("expected unknown tier name to fail")
	}
}

func TestLearnerTitle(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, "Linux Novice"},
		{9, "Linux Novice"},
		{10, "Shell Apprentice"},
		{29, "Shell Apprentice"},
		{30, "Command-Line Adept"},
		{59, "Command-Line Adept"},
		{60, "System Sorcerer"},
		{89, "System Sorcerer"},
		{90, "Kernel Wizard"},
		{100, "Kernel Wizard"},
	}
	for _, tt := range tests {
		if got := LearnerTitle(tt.pct); got != tt.want {
			t.Errorf("LearnerTitle(%d): got %q, want %q", tt.pct, got, tt.want)
		}
	}
}
