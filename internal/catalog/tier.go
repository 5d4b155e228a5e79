package catalog

// Tier represents a difficulty level grouping commands.
type Tier string

const (
	TierBeginner     Tier = "Beginner"
	TierIntermediate Tier = "Intermediate"
	TierAdvanced     Tier = "Advanced"
	TierExpert       Tier = "Expert"
)

// AllTiers returns all tiers in display order.
func AllTiers() []Tier {
	return []Tier{
		TierBeginner,
		TierIntermediate,
		TierAdvanced,
		TierExpert,
	}
}

// ParseTier maps a stored tier name back to a Tier. The second return
// value is false for names that no longer exist in the catalog.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case TierBeginner, TierIntermediate, TierAdvanced, TierExpert:
		return Tier(s), true
	}
	return "", false
}

// TierDescription returns a one-line description for a tier.
func TierDescription(t Tier) string {
	switch t {
	case TierBeginner:
		return "Basics: navigation, files, and simple operations."
	case TierIntermediate:
		return "Search, permissions, processes, and network commands."
	case TierAdvanced:
		return "Networking, monitoring, scripting, and system control."
	case TierExpert:
		return "Pro Hacker's Toolkit: fun, automation, and deep debugging tools."
	default:
		return ""
	}
}

// learnerTitles maps overall completion percentage bands to titles.
// Bands are checked in order; the first threshold the percentage is
// below wins.
var learnerTitles = []struct {
	below int
	title string
}{
	{10, "Linux Novice"},
	{30, "Shell Apprentice"},
	{60, "Command-Line Adept"},
	{90, "System Sorcerer"},
}

// LearnerTitle returns the rank title for an overall completion percentage.
func LearnerTitle(percentage int) string {
	for _, band := range learnerTitles {
		if percentage < band.below {
			return band.title
		}
	}
	return "Kernel Wizard"
}
