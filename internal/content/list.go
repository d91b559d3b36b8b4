package content

import "strings"

// ParseList turns comma separated input into an ordered list of trimmed,
// non-empty tokens. Duplicates are kept.
func ParseList(raw string) []string {
	result := []string{}
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
