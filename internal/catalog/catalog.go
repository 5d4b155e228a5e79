package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Example is a single runnable example inside a tutorial.
type Example struct {
	Command     string
	Explanation string
}

// Tutorial is the learning content for one command.
type Tutorial struct {
	CommandName string
	Summary     string
	Description string
	Examples    []Example
}

// QuizQuestion is one multiple-choice question about a command.
// Answer is always one of Options.
type QuizQuestion struct {
	Question string
	Options  []string
	Answer   string
}

// index holds the catalog with precomputed lookups.
type index struct {
	byTier    map[Tier][]string
	tierOf    map[string]Tier
	all       []string
	quizzable []string
}

// idx is the package-level index singleton, built by init().
var idx *index

func init() {
	idx = buildIndex(tierCommands)
}

// buildIndex constructs lookup tables from the per-tier command lists.
// Tier order and within-tier order are preserved; the quizzable set is
// sorted for deterministic sampling.
func buildIndex(byTier map[Tier][]string) *index {
	ix := &index{
		byTier: byTier,
		tierOf: make(map[string]Tier),
	}

	for _, tier := range AllTiers() {
		for _, cmd := range byTier[tier] {
			ix.tierOf[cmd] = tier
			ix.all = append(ix.all, cmd)
		}
	}

	for cmd := range quizQuestions {
		ix.quizzable = append(ix.quizzable, cmd)
	}
	sort.Strings(ix.quizzable)

	return ix
}

// Commands returns the ordered command list for a tier.
func Commands(t Tier) []string {
	return slices.Clone(idx.byTier[t])
}

// AllCommands returns every command in tier order.
func AllCommands() []string {
	return slices.Clone(idx.all)
}

// TierOf returns the tier a command belongs to.
func TierOf(cmd string) (Tier, bool) {
	t, ok := idx.tierOf[cmd]
	return t, ok
}

// GetTutorial returns the static tutorial for a command, or an error if
// none exists. Callers fall back to AI generation on error.
func GetTutorial(cmd string) (Tutorial, error) {
	tut, ok := tutorials[cmd]
	if !ok {
		return Tutorial{}, fmt.Errorf("no tutorial for command: %q", cmd)
	}
	return tut, nil
}

// HasTutorial reports whether a static tutorial exists for a command.
func HasTutorial(cmd string) bool {
	_, ok := tutorials[cmd]
	return ok
}

// Questions returns the quiz question bank for a command.
// Commands without questions return nil.
func Questions(cmd string) []QuizQuestion {
	return slices.Clone(quizQuestions[cmd])
}

// QuizzableCommands returns all commands that have at least one quiz
// question, in sorted order.
func QuizzableCommands() []string {
	return slices.Clone(idx.quizzable)
}
