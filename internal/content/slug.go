package content

import "strings"

// Slugify derives the URL identifier of a game from its title: lowercase,
// every run of characters outside [a-z0-9] becomes a single '-', and leading
// or trailing '-' are trimmed.
func Slugify(title string) (string, error) {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	if b.Len() == 0 {
		return "", invalid("title", "must contain at least one letter or digit")
	}
	return b.String(), nil
}
