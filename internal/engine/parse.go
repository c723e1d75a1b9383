package engine

import "strings"

// ParsePriority parses user input to a PriorityLevel.
// Supported: 1, 2, 3, low, medium, high (and l, m, med, h).
// If input is empty or unrecognized, returns DefaultPriority.
func ParsePriority(input string) PriorityLevel {
	switch normalizeWord(input) {
	case "1", "l", "low":
		return PriorityLow
	case "2", "m", "med", "medium":
		return PriorityMedium
	case "3", "h", "high":
		return PriorityHigh
	default:
		return DefaultPriority
	}
}

// PriorityFromOrdinal maps a stored ordinal back to a level, falling back to
// DefaultPriority the same way the priority slider does.
func PriorityFromOrdinal(n int) PriorityLevel {
	p := PriorityLevel(n)
	if !p.IsValid() {
		return DefaultPriority
	}
	return p
}

func normalizeWord(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
