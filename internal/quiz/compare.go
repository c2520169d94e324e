package quiz

import "strings"

// normalizeText trims surrounding whitespace and folds case.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// displayText substitutes the placeholder for an empty answer.
func displayText(s string) string {
	if s == "" {
		return NoAnswer
	}
	return s
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[s] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
