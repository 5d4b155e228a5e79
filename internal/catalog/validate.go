package catalog

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the catalog data.
// Returns a combined error describing all problems found, or nil if valid.
func Validate() error {
	return validateCatalog(tierCommands, tutorials, quizQuestions)
}

func validateCatalog(byTier map[Tier][]string, tuts map[string]Tutorial, questions map[string][]QuizQuestion) error {
	var errs []string

	seen := make(map[string]Tier)

	for _, tier := range AllTiers() {
		cmds := byTier[tier]
		if len(cmds) == 0 {
			errs = append(errs, fmt.Sprintf("tier %q has no commands", tier))
		}
		for _, cmd := range cmds {
			if cmd == "" {
				errs = append(errs, fmt.Sprintf("tier %q contains an empty command name", tier))
				continue
			}
			if prev, dup := seen[cmd]; dup {
				errs = append(errs, fmt.Sprintf("command %q appears in both %q and %q", cmd, prev, tier))
				continue
			}
			seen[cmd] = tier
		}
	}

	for tier := range byTier {
		if _, ok := ParseTier(string(tier)); !ok {
			errs = append(errs, fmt.Sprintf("unknown tier %q in command lists", tier))
		}
	}

	for cmd, tut := range tuts {
		if _, ok := seen[cmd]; !ok {
			errs = append(errs, fmt.Sprintf("tutorial for unknown command %q", cmd))
		}
		if tut.CommandName != cmd {
			errs = append(errs, fmt.Sprintf("tutorial for %q has mismatched CommandName %q", cmd, tut.CommandName))
		}
		if tut.Summary == "" || tut.Description == "" {
			errs = append(errs, fmt.Sprintf("tutorial for %q is missing summary or description", cmd))
		}
		if len(tut.Examples) == 0 {
			errs = append(errs, fmt.Sprintf("tutorial for %q has no examples", cmd))
		}
	}

	for cmd, qs := range questions {
		if _, ok := seen[cmd]; !ok {
			errs = append(errs, fmt.Sprintf("quiz questions for unknown command %q", cmd))
		}
		if len(qs) == 0 {
			errs = append(errs, fmt.Sprintf("command %q has an empty question list", cmd))
		}
		for i, q := range qs {
			prefix := fmt.Sprintf("command %q question %d", cmd, i)
			if q.Question == "" {
				errs = append(errs, prefix+": empty question text")
			}
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}
			optSet := make(map[string]bool, len(q.Options))
			for _, opt := range q.Options {
				if optSet[opt] {
					errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
				}
				optSet[opt] = true
			}
			if !optSet[q.Answer] {
				errs = append(errs, fmt.Sprintf("%s: answer %q is not among the options", prefix, q.Answer))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
